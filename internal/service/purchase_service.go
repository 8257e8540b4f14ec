package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/shopspring/decimal"
)

type PurchaseService struct {
	uow      uow.UOW
	notifier Notifier
}

func NewPurchaseService(u uow.UOW, notifier Notifier) *PurchaseService {
	return &PurchaseService{
		uow:      u,
		notifier: notifier,
	}
}

type PurchaseArgs struct {
	UserID    int64
	ProductID int64
	PlayerID  string
}

// PurchaseResult результат успешной покупки: заказ, выданный код и остаток баланса.
type PurchaseResult struct {
	Order   *domain.Order
	Product *domain.Product
	Code    string
	Balance decimal.Decimal
}

// Purchase покупает код продукта для юзера.
//
// Все проверки и изменения выполняются в одной транзакции:
//  1. Продукт существует и активен, иначе domain.ErrProductNotFound.
//  2. Строка юзера блокируется. Юзер не заблокирован (domain.ErrUserBanned), покупки ему разрешены
//     (domain.ErrPurchaseDisabled), баланса хватает (domain.ErrNotEnoughBalance).
//  3. Выбирается и блокируется свободный код, иначе domain.ErrOutOfStock.
//  4. Списание баланса, создание заказа, пометка кода использованным.
//
// Любая ошибка откатывает транзакцию целиком. Уведомление о заказе создается после фиксации.
func (p *PurchaseService) Purchase(ctx context.Context, args PurchaseArgs) (*PurchaseResult, error) {
	playerID := strings.TrimSpace(args.PlayerID)
	if playerID == "" {
		return nil, domain.ErrPlayerIDRequired
	}

	var result PurchaseResult
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		product, user, prepErr := p.checkPreconditions(c, tx, args.UserID, args.ProductID)
		if prepErr != nil {
			return prepErr
		}

		codeRepo, codeRepoErr := txRepo[CodeRepository](tx, repoargs.CodeRepoName)
		if codeRepoErr != nil {
			return codeRepoErr
		}
		code, codeErr := codeRepo.FindUnused(c, product.ID)
		if codeErr != nil {
			if errors.Is(codeErr, domain.ErrRecordNotFound) {
				return domain.ErrOutOfStock
			}
			return codeErr //nolint:wrapcheck
		}

		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		balance, debitErr := userRepo.AdjustBalance(c, user.ID, product.Price.Neg())
		if debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		orderRepo, orderRepoErr := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
		if orderRepoErr != nil {
			return orderRepoErr
		}
		order, orderErr := orderRepo.Create(c, repoargs.CreateOrder{
			UserID:    user.ID,
			ProductID: product.ID,
			CodeID:    code.ID,
			PlayerID:  playerID,
			Amount:    product.Price,
		})
		if orderErr != nil {
			if errors.Is(orderErr, domain.ErrDuplicateKey) {
				// код уже привязан к другому заказу.
				return domain.ErrOutOfStock
			}
			return orderErr //nolint:wrapcheck
		}

		if markErr := codeRepo.MarkUsed(c, code.ID, order.ID); markErr != nil {
			if errors.Is(markErr, domain.ErrCodeAlreadyUsed) {
				return domain.ErrOutOfStock
			}
			return markErr //nolint:wrapcheck
		}

		result = PurchaseResult{
			Order:   order,
			Product: product,
			Code:    code.Code,
			Balance: balance,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("purchasing product %d: %w", args.ProductID, txErr)
	}

	p.notifier.Emit(ctx, args.UserID, domain.NotificationTypeOrder,
		"Order Completed",
		fmt.Sprintf("Your order for %s has been completed. Code: %s", result.Product.Name, result.Code),
	)
	return &result, nil
}

// checkPreconditions проверяет продукт и юзера до любых изменений. Строка юзера остается заблокированной
// до конца транзакции.
func (p *PurchaseService) checkPreconditions(
	ctx context.Context,
	tx uow.TX,
	userID, productID int64,
) (*domain.Product, *domain.User, error) {
	productRepo, productRepoErr := txRepo[ProductRepository](tx, repoargs.ProductRepoName)
	if productRepoErr != nil {
		return nil, nil, productRepoErr
	}
	product, productErr := productRepo.FindActive(ctx, productID)
	if productErr != nil {
		if errors.Is(productErr, domain.ErrRecordNotFound) {
			return nil, nil, domain.ErrProductNotFound
		}
		return nil, nil, productErr //nolint:wrapcheck
	}

	userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, nil, userRepoErr
	}
	user, userErr := userRepo.GetByIDForUpdate(ctx, userID)
	if userErr != nil {
		return nil, nil, userErr //nolint:wrapcheck
	}

	switch {
	case user.IsBanned:
		return nil, nil, domain.ErrUserBanned
	case !user.CanPurchase:
		return nil, nil, domain.ErrPurchaseDisabled
	case user.Balance.LessThan(product.Price):
		return nil, nil, domain.ErrNotEnoughBalance
	}
	return product, user, nil
}
