package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/internal/service"
	"github.com/shopspring/decimal"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error
	List(ctx context.Context) ([]domain.User, error)
	SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.User, error)
	ResetBalance(ctx context.Context, id int64) (*domain.User, error)
	SetBanned(ctx context.Context, id int64, banned bool, reason string) (*domain.User, error)
	SetCanPurchase(ctx context.Context, id int64, canPurchase bool) (*domain.User, error)
	Activity(ctx context.Context, id int64) (*service.UserActivity, error)
}

type ProductServicer interface {
	Storefront(ctx context.Context) ([]domain.ProductStock, error)
	ListAll(ctx context.Context) ([]domain.ProductStock, error)
	Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateProduct) (*domain.Product, error)
	Deactivate(ctx context.Context, id int64) (*domain.Product, error)
	Codes(ctx context.Context, productID int64) ([]domain.Code, error)
	AddCodes(ctx context.Context, productID int64, raw []string) (*service.AddCodesResult, error)
}

type PurchaseServicer interface {
	Purchase(ctx context.Context, args service.PurchaseArgs) (*service.PurchaseResult, error)
}

type OrderServicer interface {
	UserOrders(ctx context.Context, userID int64) ([]domain.OrderDetails, error)
	All(ctx context.Context) ([]domain.OrderDetails, error)
}

type DepositServicer interface {
	Submit(ctx context.Context, args service.SubmitDepositArgs) (*domain.Deposit, error)
	Approve(ctx context.Context, id int64) (*domain.Deposit, error)
	Reject(ctx context.Context, id int64) (*domain.Deposit, error)
	Pending(ctx context.Context) ([]domain.DepositDetails, error)
	All(ctx context.Context) ([]domain.DepositDetails, error)
	UserDeposits(ctx context.Context, userID int64) ([]domain.Deposit, error)
}

type NotificationServicer interface {
	List(ctx context.Context, userID int64) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type SettingsServicer interface {
	ConfigureBinance(ctx context.Context, creds domain.BinanceCredentials) error
	ToggleBinance(ctx context.Context, enabled bool) error
	DeleteBinance(ctx context.Context) error
	BinanceStatus(ctx context.Context) (*service.BinanceStatus, error)
}

type StatsServicer interface {
	Totals(ctx context.Context) (*domain.Stats, error)
	Chart(ctx context.Context) ([]domain.DailyStats, error)
}
