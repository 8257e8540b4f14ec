package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *RouterTestSuite) TestProducts() {
	s.mockProductService.EXPECT().Storefront(gomock.Any()).Return([]domain.ProductStock{
		{
			Product: domain.Product{
				ID: 1, Name: "60 Pack", UCAmount: 60, Price: decimal.RequireFromString("0.99"), IsActive: true,
			},
			Available: 4,
			Total:     10,
		},
	}, nil)

	// витрина доступна без авторизации.
	res := s.request(http.MethodGet, RouteGroup+ProductsRoute, nil, "")
	s.Require().Equal(http.StatusOK, res.status)

	var products []ProductResponse
	res.decode(s, &products)
	s.Require().Len(products, 1)
	s.Equal("60 Pack", products[0].Name)
	s.InDelta(0.99, products[0].Price, 0.0001)
	s.Equal(int64(4), products[0].Available)
	s.Nil(products[0].Total)
}

func (s *RouterTestSuite) TestPurchase() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockPurchaseService.EXPECT().
		Purchase(gomock.Any(), service.PurchaseArgs{UserID: user.ID, ProductID: 1, PlayerID: "5123456789"}).
		Return(&service.PurchaseResult{
			Order: &domain.Order{
				ID:        10,
				UserID:    user.ID,
				ProductID: 1,
				PlayerID:  "5123456789",
				Amount:    decimal.RequireFromString("0.99"),
				Status:    domain.OrderStatusCompleted,
			},
			Product: &domain.Product{ID: 1, Name: "60 Pack", UCAmount: 60},
			Code:    "ABC123",
			Balance: decimal.RequireFromString("4.01"),
		}, nil)

	res := s.request(http.MethodPost, RouteGroup+PurchaseRoute,
		PurchaseParams{ProductID: 1, PlayerID: "5123456789"}, token)
	s.Require().Equal(http.StatusOK, res.status, string(res.body))

	var body PurchaseResponse
	res.decode(s, &body)
	s.Equal("ABC123", body.Code)
	s.InDelta(4.01, body.Balance, 0.0001)
	s.Equal(int64(10), body.Order.ID)
	s.Equal("60 Pack", body.Order.ProductName)
	s.Equal(domain.OrderStatusCompleted, body.Order.Status)
}

func (s *RouterTestSuite) TestPurchaseErrors() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "out of stock",
			serviceErr: domain.ErrOutOfStock,
			wantStatus: http.StatusBadRequest,
			wantError:  "no codes available",
		}, {
			name:       "insufficient balance",
			serviceErr: domain.ErrNotEnoughBalance,
			wantStatus: http.StatusBadRequest,
			wantError:  "insufficient balance",
		}, {
			name:       "product not found",
			serviceErr: domain.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "product not found",
		}, {
			name:       "purchases disabled",
			serviceErr: domain.ErrPurchaseDisabled,
			wantStatus: http.StatusForbidden,
			wantError:  "purchases disabled for your account",
		}, {
			name:       "wrapped error keeps mapping",
			serviceErr: errors.Join(errors.New("purchase"), domain.ErrOutOfStock),
			wantStatus: http.StatusBadRequest,
			wantError:  "no codes available",
		}, {
			name:       "internal error is hidden",
			serviceErr: errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockPurchaseService.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, t.serviceErr)

			res := s.request(http.MethodPost, RouteGroup+PurchaseRoute,
				PurchaseParams{ProductID: 1, PlayerID: "p"}, token)
			s.Equal(t.wantStatus, res.status)
			s.Equal(t.wantError, res.errorText(s))
		})
	}
}

func (s *RouterTestSuite) TestPurchaseValidation() {
	token := s.signIn(newTestUser(1, domain.RoleUser))
	s.mockPurchaseService.EXPECT().Purchase(gomock.Any(), gomock.Any()).Times(0)

	for _, payload := range []any{
		PurchaseParams{ProductID: 0, PlayerID: "p"},
		PurchaseParams{ProductID: 1},
		`{"productId": "one"}`,
		`not json`,
	} {
		res := s.request(http.MethodPost, RouteGroup+PurchaseRoute, payload, token)
		s.Equal(http.StatusBadRequest, res.status, string(res.body))
	}
}

func (s *RouterTestSuite) TestOrders() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockOrderService.EXPECT().UserOrders(gomock.Any(), user.ID).Return([]domain.OrderDetails{
		{
			Order:       domain.Order{ID: 2, UserID: user.ID, Amount: decimal.RequireFromString("0.99")},
			ProductName: "60 Pack",
			UCAmount:    60,
			Code:        "ABC123",
		},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+OrdersRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var orders []OrderResponse
	res.decode(s, &orders)
	s.Require().Len(orders, 1)
	s.Equal("ABC123", orders[0].Code)
	s.Equal(int64(60), orders[0].UCAmount)
}
