package service

import (
	"context"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// CredentialSealer шифрует учетные данные провайдера перед сохранением в настройки.
type CredentialSealer interface {
	SealCredential(plain string) (string, error)
	OpenCredential(sealed string) (string, error)
}

// BinanceProber проверяет, что ключи принимаются провайдером.
type BinanceProber interface {
	Ping(ctx context.Context, creds domain.BinanceCredentials) error
}

// VerificationScheduler фоновая автоматическая проверка депозитов.
type VerificationScheduler interface {
	Start(ctx context.Context)
	Stop()
	IsRunning() bool
}

// Notifier добавляет юзеру уведомление. Ошибки не возвращаются.
type Notifier interface {
	Emit(ctx context.Context, userID int64, t domain.NotificationType, title, message string)
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error)
	SetBalance(ctx context.Context, id int64, balance decimal.Decimal) (*domain.User, error)
	SetBanned(ctx context.Context, id int64, banned bool, reason *string) (*domain.User, error)
	SetCanPurchase(ctx context.Context, id int64, canPurchase bool) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, encryptedPassword string) error
	FindAll(ctx context.Context) ([]domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateProduct) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	FindActive(ctx context.Context, id int64) (*domain.Product, error)
	ListActiveWithStock(ctx context.Context) ([]domain.ProductStock, error)
	ListAllWithStock(ctx context.Context) ([]domain.ProductStock, error)
}

type CodeRepository interface {
	FindUnused(ctx context.Context, productID int64) (*domain.Code, error)
	MarkUsed(ctx context.Context, codeID, orderID int64) error
	BatchCreate(ctx context.Context, productID int64, codes []string, fn repoargs.BatchExecQueryRow) error
	GetByProductID(ctx context.Context, productID int64) ([]domain.Code, error)
	CountAvailable(ctx context.Context, productID int64) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.OrderDetails, error)
	FindAll(ctx context.Context) ([]domain.OrderDetails, error)
}

type DepositRepository interface {
	Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error)
	GetByID(ctx context.Context, id int64) (*domain.Deposit, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.DepositStatusType) (*domain.Deposit, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Deposit, error)
	FindAll(ctx context.Context) ([]domain.DepositDetails, error)
	FindPending(ctx context.Context) ([]domain.DepositDetails, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID int64, limit uint) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type StatsRepository interface {
	Totals(ctx context.Context) (*domain.Stats, error)
	Daily(ctx context.Context, days uint) ([]domain.DailyStats, error)
}
