package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	ledger          *memLedger
	purchaseService *PurchaseService
}

func TestPurchaseServiceSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (s *PurchaseServiceTestSuite) SetupTest() {
	s.ledger = newMemLedger()
	notifier, err := NewNotificationService(s.ledger, newSilentLogger())
	s.Require().NoError(err)
	s.purchaseService = NewPurchaseService(s.ledger, notifier)
}

func (s *PurchaseServiceTestSuite) TestHappyPath() {
	user := s.ledger.seedUser("5.00")
	product := s.ledger.seedProduct("60 Pack", "0.99", true, "ABC123")

	res, err := s.purchaseService.Purchase(s.T().Context(), PurchaseArgs{
		UserID:    user.ID,
		ProductID: product.ID,
		PlayerID:  "5123456789",
	})
	s.Require().NoError(err)
	s.Equal("ABC123", res.Code)
	s.True(decimal.RequireFromString("4.01").Equal(res.Balance))
	s.Equal(domain.OrderStatusCompleted, res.Order.Status)
	s.True(product.Price.Equal(res.Order.Amount))
	s.Equal("5123456789", res.Order.PlayerID)

	state := s.ledger.snapshot()
	s.True(decimal.RequireFromString("4.01").Equal(state.users[user.ID].Balance))
	s.Len(state.orders, 1)

	code := state.codes[res.Order.CodeID]
	s.True(code.IsUsed)
	s.Require().NotNil(code.OrderID)
	s.Equal(res.Order.ID, *code.OrderID)

	s.Require().Len(state.notifications, 1)
	n := state.notifications[0]
	s.Equal(user.ID, n.UserID)
	s.Equal(domain.NotificationTypeOrder, n.Type)
	s.Equal("Order Completed", n.Title)
	s.Equal("Your order for 60 Pack has been completed. Code: ABC123", n.Message)
}

func (s *PurchaseServiceTestSuite) TestFirstInsertedCodeIsIssued() {
	user := s.ledger.seedUser("10.00")
	product := s.ledger.seedProduct("60 Pack", "1.00", true, "FIRST", "SECOND")

	res, err := s.purchaseService.Purchase(s.T().Context(), PurchaseArgs{
		UserID: user.ID, ProductID: product.ID, PlayerID: "p1",
	})
	s.Require().NoError(err)
	s.Equal("FIRST", res.Code)
}

func (s *PurchaseServiceTestSuite) TestRejections() {
	ctx := s.T().Context()

	rich := s.ledger.seedUser("100.00")
	poor := s.ledger.seedUser("0.50")
	banned := s.ledger.seedUser("100.00")
	s.ledger.updateUser(banned.ID, func(u *domain.User) { u.IsBanned = true })
	restricted := s.ledger.seedUser("100.00")
	s.ledger.updateUser(restricted.ID, func(u *domain.User) { u.CanPurchase = false })

	inStock := s.ledger.seedProduct("60 Pack", "0.99", true, "C1")
	inactive := s.ledger.seedProduct("Old Pack", "0.99", false, "C2")
	empty := s.ledger.seedProduct("325 Pack", "4.99", true)

	cases := []struct {
		name    string
		args    PurchaseArgs
		wantErr error
	}{
		{
			name:    "product does not exist",
			args:    PurchaseArgs{UserID: rich.ID, ProductID: 9999, PlayerID: "p"},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name:    "inactive product",
			args:    PurchaseArgs{UserID: rich.ID, ProductID: inactive.ID, PlayerID: "p"},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name:    "user does not exist",
			args:    PurchaseArgs{UserID: 9999, ProductID: inStock.ID, PlayerID: "p"},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "banned user",
			args:    PurchaseArgs{UserID: banned.ID, ProductID: inStock.ID, PlayerID: "p"},
			wantErr: domain.ErrUserBanned,
		},
		{
			name:    "purchases disabled",
			args:    PurchaseArgs{UserID: restricted.ID, ProductID: inStock.ID, PlayerID: "p"},
			wantErr: domain.ErrPurchaseDisabled,
		},
		{
			name:    "insufficient balance",
			args:    PurchaseArgs{UserID: poor.ID, ProductID: inStock.ID, PlayerID: "p"},
			wantErr: domain.ErrNotEnoughBalance,
		},
		{
			name:    "out of stock",
			args:    PurchaseArgs{UserID: rich.ID, ProductID: empty.ID, PlayerID: "p"},
			wantErr: domain.ErrOutOfStock,
		},
		{
			name:    "blank player id",
			args:    PurchaseArgs{UserID: rich.ID, ProductID: inStock.ID, PlayerID: "   "},
			wantErr: domain.ErrPlayerIDRequired,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			before := s.ledger.snapshot()

			res, err := s.purchaseService.Purchase(ctx, t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(res)

			after := s.ledger.snapshot()
			s.Equal(before.users, after.users)
			s.Equal(before.codes, after.codes)
			s.Empty(after.orders)
			s.Empty(after.notifications)
		})
	}
}

func (s *PurchaseServiceTestSuite) TestRollbackOnOrderFailure() {
	user := s.ledger.seedUser("5.00")
	product := s.ledger.seedProduct("60 Pack", "0.99", true, "ABC123")
	s.ledger.failOrderCreate = true

	_, err := s.purchaseService.Purchase(s.T().Context(), PurchaseArgs{
		UserID: user.ID, ProductID: product.ID, PlayerID: "p",
	})
	s.Require().ErrorIs(err, errInjected)

	state := s.ledger.snapshot()
	s.True(decimal.RequireFromString("5.00").Equal(state.users[user.ID].Balance))
	for _, c := range state.codes {
		s.False(c.IsUsed)
	}
	s.Empty(state.notifications)
}

func (s *PurchaseServiceTestSuite) TestNotificationFailureKeepsOrder() {
	user := s.ledger.seedUser("5.00")
	product := s.ledger.seedProduct("60 Pack", "0.99", true, "ABC123")
	s.ledger.failNotification = true

	res, err := s.purchaseService.Purchase(s.T().Context(), PurchaseArgs{
		UserID: user.ID, ProductID: product.ID, PlayerID: "p",
	})
	s.Require().NoError(err)
	s.Equal("ABC123", res.Code)

	state := s.ledger.snapshot()
	s.Len(state.orders, 1)
	s.Empty(state.notifications)
}

// Покупателей больше, чем кодов: каждый код выдается ровно один раз, остальные получают domain.ErrOutOfStock.
// Транзакции ledger в памяти идут последовательно, так что здесь проверяется учет исходов; конкурентные
// транзакции на postgres проверяет pgrepo.RepositoryTestSuite.
func (s *PurchaseServiceTestSuite) TestMoreBuyersThanCodes() {
	const buyers = 20
	const stock = 5

	codes := make([]string, stock)
	for i := range codes {
		codes[i] = fmt.Sprintf("CODE-%d", i)
	}
	product := s.ledger.seedProduct("60 Pack", "1.00", true, codes...)

	users := make([]domain.User, buyers)
	for i := range users {
		users[i] = s.ledger.seedUser("3.00")
	}

	var succeeded, outOfStock atomic.Int64
	issued := make(chan string, buyers)

	g, ctx := errgroup.WithContext(context.Background())
	for _, u := range users {
		g.Go(func() error {
			res, err := s.purchaseService.Purchase(ctx, PurchaseArgs{
				UserID: u.ID, ProductID: product.ID, PlayerID: "p",
			})
			switch {
			case err == nil:
				succeeded.Add(1)
				issued <- res.Code
				return nil
			case errors.Is(err, domain.ErrOutOfStock):
				outOfStock.Add(1)
				return nil
			default:
				return err
			}
		})
	}
	s.Require().NoError(g.Wait())
	close(issued)

	s.Equal(int64(stock), succeeded.Load())
	s.Equal(int64(buyers-stock), outOfStock.Load())

	seen := make(map[string]struct{})
	for code := range issued {
		_, dup := seen[code]
		s.False(dup, "code %s issued twice", code)
		seen[code] = struct{}{}
	}

	state := s.ledger.snapshot()
	s.Len(state.orders, stock)
	for _, c := range state.codes {
		s.True(c.IsUsed)
	}
}

// Сумма балансов плюс выручка по заказам не меняется при любом исходе покупок.
func (s *PurchaseServiceTestSuite) TestBalanceConservation() {
	product := s.ledger.seedProduct("60 Pack", "0.99", true, "A", "B", "C")
	cheap := s.ledger.seedProduct("Mini", "0.10", true, "D")
	users := []domain.User{
		s.ledger.seedUser("1.00"),
		s.ledger.seedUser("0.50"),
		s.ledger.seedUser("2.00"),
	}

	total := func(state *memState) decimal.Decimal {
		sum := decimal.Zero
		for _, u := range state.users {
			sum = sum.Add(u.Balance)
		}
		for _, o := range state.orders {
			sum = sum.Add(o.Amount)
		}
		return sum
	}
	before := total(s.ledger.snapshot())

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 12; i++ {
		u := users[i%len(users)]
		productID := product.ID
		if i%4 == 0 {
			productID = cheap.ID
		}
		g.Go(func() error {
			_, err := s.purchaseService.Purchase(ctx, PurchaseArgs{UserID: u.ID, ProductID: productID, PlayerID: "p"})
			if err != nil && !errors.Is(err, domain.ErrOutOfStock) && !errors.Is(err, domain.ErrNotEnoughBalance) {
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	after := s.ledger.snapshot()
	s.True(before.Equal(total(after)), "before %s after %s", before, total(after))
	for _, u := range after.users {
		s.False(u.Balance.IsNegative())
	}
}
