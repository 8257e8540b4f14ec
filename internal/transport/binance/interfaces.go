package binance

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
)

type Client interface {
	DepositHistory(ctx context.Context, creds domain.BinanceCredentials) ([]domain.ProviderDeposit, error)
}

type Depositor interface {
	Pending(ctx context.Context) ([]domain.DepositDetails, error)
	ApproveVerified(ctx context.Context, id int64) (*domain.Deposit, error)
}

type CredentialsProvider interface {
	Credentials(ctx context.Context) (domain.BinanceCredentials, error)
}
