package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *RouterTestSuite) adminToken() string {
	return s.signIn(newTestUser(100, domain.RoleAdmin))
}

func (s *RouterTestSuite) TestApproveDeposit() {
	token := s.adminToken()

	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(1)).
		Return(&domain.Deposit{ID: 1, Status: domain.DepositStatusApproved, Amount: decimal.NewFromInt(10)}, nil)
	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(2)).
		Return(nil, fmt.Errorf("approving deposit 2: %w", domain.ErrInvalidDepositState))
	s.mockDepositService.EXPECT().Approve(gomock.Any(), int64(3)).
		Return(nil, fmt.Errorf("approving deposit 3: %w", domain.ErrRecordNotFound))
	s.mockDepositService.EXPECT().Reject(gomock.Any(), int64(2)).
		Return(nil, domain.ErrInvalidDepositState)

	cases := []struct {
		name       string
		url        string
		wantStatus int
		wantError  string
	}{
		{name: "approved", url: "/admin/deposits/1/approve", wantStatus: http.StatusOK},
		{
			name:       "already processed",
			url:        "/admin/deposits/2/approve",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid deposit state",
		},
		{
			name:       "reject processed",
			url:        "/admin/deposits/2/reject",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid deposit state",
		},
		{name: "unknown", url: "/admin/deposits/3/approve", wantStatus: http.StatusNotFound},
		{name: "bad id", url: "/admin/deposits/0/approve", wantStatus: http.StatusBadRequest, wantError: "invalid id"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPut, RouteGroup+t.url, nil, token)
			s.Equal(t.wantStatus, res.status, string(res.body))
			if t.wantError != "" {
				s.Equal(t.wantError, res.errorText(s))
			}
		})
	}
}

func (s *RouterTestSuite) TestPendingDeposits() {
	token := s.adminToken()

	s.mockDepositService.EXPECT().Pending(gomock.Any()).Return([]domain.DepositDetails{
		{
			Deposit:   domain.Deposit{ID: 1, Amount: decimal.NewFromInt(10), Status: domain.DepositStatusPending},
			UserEmail: "user@example.com",
		},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+AdminRouteGroup+AdminPendingDepositsRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var deposits []DepositResponse
	res.decode(s, &deposits)
	s.Require().Len(deposits, 1)
	s.Equal("user@example.com", deposits[0].UserEmail)
}

func (s *RouterTestSuite) TestAdminUsers() {
	token := s.adminToken()
	target := newTestUser(5, domain.RoleUser)

	s.mockUserService.EXPECT().SetBalance(gomock.Any(), target.ID, decimal.RequireFromString("12.5")).
		Return(target, nil)
	s.mockUserService.EXPECT().SetBanned(gomock.Any(), target.ID, true, "fraud").Return(target, nil)
	s.mockUserService.EXPECT().SetCanPurchase(gomock.Any(), target.ID, false).Return(target, nil)
	s.mockUserService.EXPECT().ResetBalance(gomock.Any(), target.ID).Return(target, nil)
	s.mockUserService.EXPECT().ResetBalance(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	res := s.request(http.MethodPut, RouteGroup+"/admin/users/5/balance", `{"balance": 12.5}`, token)
	s.Equal(http.StatusOK, res.status, string(res.body))

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/balance", `{}`, token)
	s.Equal(http.StatusBadRequest, res.status)
	s.Equal("balance is required", res.errorText(s))

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/balance", `{"balance": -1}`, token)
	s.Equal(http.StatusBadRequest, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/ban", `{"banned": true, "reason": "fraud"}`, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/ban", `{"reason": "fraud"}`, token)
	s.Equal(http.StatusBadRequest, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/purchase", `{"canPurchase": false}`, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/5/reset-balance", nil, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPut, RouteGroup+"/admin/users/404/reset-balance", nil, token)
	s.Equal(http.StatusNotFound, res.status)
}

func (s *RouterTestSuite) TestUserActivity() {
	token := s.adminToken()
	target := newTestUser(5, domain.RoleUser)

	s.mockUserService.EXPECT().Activity(gomock.Any(), target.ID).Return(&service.UserActivity{
		User: target,
		Orders: []domain.OrderDetails{
			{Order: domain.Order{ID: 1, Amount: decimal.RequireFromString("0.99")}, ProductName: "60 Pack"},
		},
		Deposits: []domain.Deposit{{ID: 1, Amount: decimal.NewFromInt(10), Status: domain.DepositStatusPending}},
		Stats: service.UserActivityStats{
			TotalOrders:     1,
			TotalSpent:      decimal.RequireFromString("0.99"),
			TotalDeposits:   decimal.Zero,
			PendingDeposits: 1,
		},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+"/admin/users/5/activity", nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var activity ActivityResponse
	res.decode(s, &activity)
	s.Equal(target.ID, activity.User.ID)
	s.Len(activity.Orders, 1)
	s.Equal(1, activity.Stats.PendingDeposits)
	s.InDelta(0.99, activity.Stats.TotalSpent, 0.0001)
	s.NotNil(activity.Notifications)
}

func (s *RouterTestSuite) TestAdminProducts() {
	token := s.adminToken()

	s.mockProductService.EXPECT().
		Create(gomock.Any(), repoargs.CreateProduct{
			Name:     "60 Pack",
			UCAmount: 60,
			Price:    decimal.RequireFromString("0.99"),
		}).
		Return(&domain.Product{ID: 1, Name: "60 Pack", UCAmount: 60, Price: decimal.RequireFromString("0.99")}, nil)
	s.mockProductService.EXPECT().Deactivate(gomock.Any(), int64(1)).Return(&domain.Product{ID: 1}, nil)
	s.mockProductService.EXPECT().ListAll(gomock.Any()).Return([]domain.ProductStock{
		{Product: domain.Product{ID: 1, Name: "60 Pack"}, Available: 2, Total: 5},
	}, nil)

	res := s.request(http.MethodPost, RouteGroup+AdminRouteGroup+AdminProductsRoute,
		`{"name": "60 Pack", "uc_amount": 60, "price": "0.99"}`, token)
	s.Require().Equal(http.StatusOK, res.status, string(res.body))

	res = s.request(http.MethodPost, RouteGroup+AdminRouteGroup+AdminProductsRoute,
		`{"name": "Free", "uc_amount": 60, "price": 0}`, token)
	s.Equal(http.StatusBadRequest, res.status)

	res = s.request(http.MethodDelete, RouteGroup+"/admin/products/1", nil, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodGet, RouteGroup+AdminRouteGroup+AdminProductsRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)
	var products []ProductResponse
	res.decode(s, &products)
	s.Require().Len(products, 1)
	s.Require().NotNil(products[0].Total)
	s.Equal(int64(5), *products[0].Total)
}

func (s *RouterTestSuite) TestUpdateProductPartial() {
	token := s.adminToken()

	s.mockProductService.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, args repoargs.UpdateProduct) (*domain.Product, error) {
			s.Nil(args.Name)
			s.Nil(args.Price)
			s.Require().NotNil(args.IsActive)
			s.False(*args.IsActive)
			return &domain.Product{ID: 1}, nil
		})

	res := s.request(http.MethodPut, RouteGroup+"/admin/products/1", `{"is_active": false}`, token)
	s.Equal(http.StatusOK, res.status, string(res.body))

	res = s.request(http.MethodPut, RouteGroup+"/admin/products/1", `{"price": -3}`, token)
	s.Equal(http.StatusBadRequest, res.status)
}

func (s *RouterTestSuite) TestAddCodes() {
	token := s.adminToken()

	s.mockProductService.EXPECT().
		AddCodes(gomock.Any(), int64(1), []string{"AAA", "BBB", "", "CCC"}).
		Return(&service.AddCodesResult{Added: 3, Duplicates: 0}, nil)
	s.mockProductService.EXPECT().AddCodes(gomock.Any(), int64(2), gomock.Any()).
		Return(nil, domain.ErrProductNotFound)

	res := s.request(http.MethodPost, RouteGroup+"/admin/products/1/codes",
		map[string]any{"codes": []string{"AAA\nBBB\n", "CCC"}}, token)
	s.Require().Equal(http.StatusOK, res.status, string(res.body))

	var body AddCodesResponse
	res.decode(s, &body)
	s.Equal(AddCodesResponse{Added: 3}, body)

	res = s.request(http.MethodPost, RouteGroup+"/admin/products/2/codes",
		map[string]any{"codes": []string{"AAA"}}, token)
	s.Equal(http.StatusNotFound, res.status)
}

func (s *RouterTestSuite) TestBinanceSettings() {
	token := s.adminToken()
	creds := domain.BinanceCredentials{APIKey: "key", APISecret: "secret"}

	s.mockSettingsService.EXPECT().ConfigureBinance(gomock.Any(), creds).Return(nil)
	s.mockSettingsService.EXPECT().
		ConfigureBinance(gomock.Any(), domain.BinanceCredentials{APIKey: "key", APISecret: "bad"}).
		Return(fmt.Errorf("configure: %w", errors.Join(domain.ErrInvalidCredentials, errors.New("401"))))
	s.mockSettingsService.EXPECT().ToggleBinance(gomock.Any(), true).Return(domain.ErrCredentialsMissing)
	s.mockSettingsService.EXPECT().DeleteBinance(gomock.Any()).Return(nil)
	s.mockSettingsService.EXPECT().BinanceStatus(gomock.Any()).
		Return(&service.BinanceStatus{Enabled: true, HasKeys: true, Connected: false}, nil)

	url := RouteGroup + AdminRouteGroup + AdminBinanceRoute

	res := s.request(http.MethodPost, url, ConfigureBinanceParams{APIKey: "key", APISecret: "secret"}, token)
	s.Equal(http.StatusOK, res.status)

	res = s.request(http.MethodPost, url, ConfigureBinanceParams{APIKey: "key", APISecret: "bad"}, token)
	s.Equal(http.StatusBadRequest, res.status)
	s.Equal("invalid API credentials", res.errorText(s))

	res = s.request(http.MethodPost, url, ConfigureBinanceParams{APIKey: "key"}, token)
	s.Equal(http.StatusBadRequest, res.status)

	res = s.request(http.MethodPut, RouteGroup+AdminRouteGroup+AdminBinanceToggleRoute, `{"enabled": true}`, token)
	s.Equal(http.StatusBadRequest, res.status)
	s.Equal("configure API keys first", res.errorText(s))

	res = s.request(http.MethodGet, url, nil, token)
	s.Require().Equal(http.StatusOK, res.status)
	var status BinanceStatusResponse
	res.decode(s, &status)
	s.Equal(BinanceStatusResponse{Enabled: true, HasKeys: true}, status)

	res = s.request(http.MethodDelete, url, nil, token)
	s.Equal(http.StatusOK, res.status)
}

func (s *RouterTestSuite) TestChart() {
	token := s.adminToken()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	s.mockStatsService.EXPECT().Chart(gomock.Any()).Return([]domain.DailyStats{
		{Day: day, Orders: 2, Revenue: decimal.RequireFromString("1.98"), Deposits: 1, Users: 3},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+AdminRouteGroup+AdminStatsChartRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var days []ChartDayResponse
	res.decode(s, &days)
	s.Equal([]ChartDayResponse{
		{Name: "Mon", Date: "2025-03-03", Orders: 2, Revenue: 1.98, Deposits: 1, Users: 3},
	}, days)
}

func (s *RouterTestSuite) TestStatsAndOrders() {
	token := s.adminToken()

	s.mockStatsService.EXPECT().Totals(gomock.Any()).Return(&domain.Stats{
		Users: 3, Orders: 2, Revenue: decimal.RequireFromString("1.98"), PendingDeposits: 1,
	}, nil)
	s.mockOrderService.EXPECT().All(gomock.Any()).Return([]domain.OrderDetails{
		{
			Order:       domain.Order{ID: 7, Amount: decimal.RequireFromString("0.99"), Status: domain.OrderStatusCompleted},
			ProductName: "60 Pack",
			UserEmail:   "buyer@example.com",
		},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+AdminRouteGroup+AdminStatsRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)
	var stats StatsResponse
	res.decode(s, &stats)
	s.Equal(StatsResponse{Users: 3, Orders: 2, Revenue: 1.98, PendingDeposits: 1}, stats)

	res = s.request(http.MethodGet, RouteGroup+AdminRouteGroup+AdminOrdersRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)
	var orders []OrderResponse
	res.decode(s, &orders)
	s.Require().Len(orders, 1)
	s.Equal("buyer@example.com", orders[0].UserEmail)
}
