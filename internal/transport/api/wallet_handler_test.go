package api

import (
	"net/http"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *RouterTestSuite) TestDeposit() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockDepositService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.SubmitDepositArgs) (*domain.Deposit, error) {
			s.Equal(user.ID, args.UserID)
			s.True(decimal.RequireFromString("10.00").Equal(args.Amount))
			return &domain.Deposit{
				ID:            1,
				UserID:        args.UserID,
				Amount:        args.Amount,
				TransactionID: args.TransactionID,
				Status:        domain.DepositStatusPending,
			}, nil
		}).Times(2)

	// сумма принимается и числом, и строкой.
	for _, payload := range []string{
		`{"amount": 10.00, "transactionId": "TX1"}`,
		`{"amount": "10.00", "transactionId": "TX1"}`,
	} {
		res := s.request(http.MethodPost, RouteGroup+DepositRoute, payload, token)
		s.Require().Equal(http.StatusOK, res.status, string(res.body))

		var deposit DepositResponse
		res.decode(s, &deposit)
		s.Equal(domain.DepositStatusPending, deposit.Status)
		s.Equal("TX1", deposit.TransactionID)
	}
}

func (s *RouterTestSuite) TestDepositValidation() {
	token := s.signIn(newTestUser(1, domain.RoleUser))

	cases := []struct {
		name      string
		payload   string
		wantError string
	}{
		{name: "zero amount", payload: `{"amount": 0, "transactionId": "TX"}`, wantError: "amount must be greater than 0"},
		{name: "negative amount", payload: `{"amount": -1, "transactionId": "TX"}`, wantError: "amount must be greater than 0"},
		{name: "no amount", payload: `{"transactionId": "TX"}`, wantError: "amount must be greater than 0"},
		{name: "no transaction", payload: `{"amount": 5}`, wantError: "transactionId is required"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockDepositService.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

			res := s.request(http.MethodPost, RouteGroup+DepositRoute, t.payload, token)
			s.Equal(http.StatusBadRequest, res.status)
			s.Equal(t.wantError, res.errorText(s))
		})
	}

	s.Run("service rejects precision", func() {
		s.mockDepositService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidAmount)

		res := s.request(http.MethodPost, RouteGroup+DepositRoute, `{"amount": 1.001, "transactionId": "TX"}`, token)
		s.Equal(http.StatusBadRequest, res.status)
		s.Equal(domain.ErrInvalidAmount.Error(), res.errorText(s))
	})
}

func (s *RouterTestSuite) TestWalletDeposits() {
	user := newTestUser(1, domain.RoleUser)
	token := s.signIn(user)

	s.mockDepositService.EXPECT().UserDeposits(gomock.Any(), user.ID).Return([]domain.Deposit{
		{ID: 1, UserID: user.ID, Amount: decimal.NewFromInt(10), TransactionID: "TX1", Status: domain.DepositStatusApproved},
	}, nil)

	res := s.request(http.MethodGet, RouteGroup+DepositsRoute, nil, token)
	s.Require().Equal(http.StatusOK, res.status)

	var deposits []DepositResponse
	res.decode(s, &deposits)
	s.Require().Len(deposits, 1)
	s.Equal(domain.DepositStatusApproved, deposits[0].Status)
}
