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

type DepositService struct {
	uow         uow.UOW
	depositRepo DepositRepository
	notifier    Notifier
}

func NewDepositService(u uow.UOW, notifier Notifier) (*DepositService, error) {
	depositRepo, err := poolRepo[DepositRepository](u, repoargs.DepositRepoName)
	if err != nil {
		return nil, err
	}
	return &DepositService{
		uow:         u,
		depositRepo: depositRepo,
		notifier:    notifier,
	}, nil
}

type SubmitDepositArgs struct {
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
}

// Submit создает депозит в статусе pending. Сумма должна быть положительной и не точнее центов
// (domain.ErrInvalidAmount), ссылка на транзакцию не пустой (domain.ErrEmptyTransactionRef).
func (d *DepositService) Submit(ctx context.Context, args SubmitDepositArgs) (*domain.Deposit, error) {
	if !args.Amount.IsPositive() || !args.Amount.Equal(args.Amount.Round(2)) { //nolint:mnd
		return nil, domain.ErrInvalidAmount
	}
	txRef := strings.TrimSpace(args.TransactionID)
	if txRef == "" {
		return nil, domain.ErrEmptyTransactionRef
	}

	deposit, err := d.depositRepo.Create(ctx, repoargs.CreateDeposit{
		UserID:        args.UserID,
		Amount:        args.Amount,
		TransactionID: txRef,
	})
	if err != nil {
		return nil, fmt.Errorf("submitting deposit: %w", err)
	}

	d.notifier.Emit(ctx, deposit.UserID, domain.NotificationTypeDeposit,
		"Deposit Pending",
		fmt.Sprintf("Your deposit of $%s is pending approval.", money(deposit.Amount)),
	)
	return deposit, nil
}

// Approve подтверждает депозит и зачисляет сумму на баланс владельца. Повторное подтверждение и
// подтверждение отклоненного депозита возвращают domain.ErrInvalidDepositState и ничего не меняют.
func (d *DepositService) Approve(ctx context.Context, id int64) (*domain.Deposit, error) {
	deposit, err := d.approve(ctx, id)
	if err != nil {
		return nil, err
	}
	d.notifier.Emit(ctx, deposit.UserID, domain.NotificationTypeDeposit,
		"Deposit Approved",
		fmt.Sprintf("Your deposit of $%s has been approved.", money(deposit.Amount)),
	)
	return deposit, nil
}

// ApproveVerified подтверждение депозита, найденного в истории платежного провайдера. Отличается от
// Approve только текстом уведомления.
func (d *DepositService) ApproveVerified(ctx context.Context, id int64) (*domain.Deposit, error) {
	deposit, err := d.approve(ctx, id)
	if err != nil {
		return nil, err
	}
	d.notifier.Emit(ctx, deposit.UserID, domain.NotificationTypeDeposit,
		"Deposit Auto-Approved",
		fmt.Sprintf("Your deposit of $%s has been automatically verified and approved.", money(deposit.Amount)),
	)
	return deposit, nil
}

// Reject отклоняет депозит без изменения баланса.
func (d *DepositService) Reject(ctx context.Context, id int64) (*domain.Deposit, error) {
	var deposit *domain.Deposit
	txErr := d.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		deposit, err = d.transition(c, tx, id, domain.DepositStatusRejected)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("rejecting deposit %d: %w", id, txErr)
	}
	d.notifier.Emit(ctx, deposit.UserID, domain.NotificationTypeDeposit,
		"Deposit Rejected",
		fmt.Sprintf("Your deposit of $%s has been rejected.", money(deposit.Amount)),
	)
	return deposit, nil
}

func (d *DepositService) approve(ctx context.Context, id int64) (*domain.Deposit, error) {
	var deposit *domain.Deposit
	txErr := d.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		deposit, err = d.transition(c, tx, id, domain.DepositStatusApproved)
		if err != nil {
			return err
		}

		userRepo, userRepoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if userRepoErr != nil {
			return userRepoErr
		}
		if _, creditErr := userRepo.AdjustBalance(c, deposit.UserID, deposit.Amount); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("approving deposit %d: %w", id, txErr)
	}
	return deposit, nil
}

// transition переводит pending депозит в статус to. Если условный UPDATE не затронул строк, перечитывает
// депозит, чтобы отличить отсутствующий депозит (domain.ErrRecordNotFound) от уже обработанного
// (domain.ErrInvalidDepositState).
func (d *DepositService) transition(
	ctx context.Context,
	tx uow.TX,
	id int64,
	to domain.DepositStatusType,
) (*domain.Deposit, error) {
	repo, repoErr := txRepo[DepositRepository](tx, repoargs.DepositRepoName)
	if repoErr != nil {
		return nil, repoErr
	}

	deposit, err := repo.TransitionStatus(ctx, id, domain.DepositStatusPending, to)
	if err == nil {
		return deposit, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err //nolint:wrapcheck
	}

	if _, getErr := repo.GetByID(ctx, id); getErr != nil {
		return nil, getErr //nolint:wrapcheck
	}
	return nil, domain.ErrInvalidDepositState
}

// Pending депозиты, ожидающие подтверждения, старые первыми.
func (d *DepositService) Pending(ctx context.Context) ([]domain.DepositDetails, error) {
	deposits, err := d.depositRepo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending deposits: %w", err)
	}
	return deposits, nil
}

func (d *DepositService) All(ctx context.Context) ([]domain.DepositDetails, error) {
	deposits, err := d.depositRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing deposits: %w", err)
	}
	return deposits, nil
}

func (d *DepositService) UserDeposits(ctx context.Context, userID int64) ([]domain.Deposit, error) {
	deposits, err := d.depositRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing deposits of user %d: %w", userID, err)
	}
	return deposits, nil
}
