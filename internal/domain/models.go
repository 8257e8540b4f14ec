package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Email             string
	Name              string
	EncryptedPassword string
	Balance           decimal.Decimal
	Role              RoleType
	IsBanned          bool
	BanReason         *string
	CanPurchase       bool
}

// IsAdmin сообщает, обладает ли юзер правами администратора.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Product struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	UCAmount  int64
	Price     decimal.Decimal
	Image     *string
	IsActive  bool
}

// ProductStock продукт с количеством кодов в наличии.
type ProductStock struct {
	Product
	Available int64
	Total     int64
}

type Code struct {
	ID        int64
	CreatedAt time.Time
	ProductID int64
	Code      string
	IsUsed    bool
	OrderID   *int64
}

type Order struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	ProductID int64
	CodeID    int64
	PlayerID  string
	Amount    decimal.Decimal
	Status    OrderStatusType
}

// OrderDetails заказ вместе с данными продукта, кода и покупателя для вывода в списках.
type OrderDetails struct {
	Order
	ProductName string
	UCAmount    int64
	Code        string
	UserName    string
	UserEmail   string
}

type Deposit struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
	Status        DepositStatusType
}

// DepositDetails депозит с данными владельца для админки.
type DepositDetails struct {
	Deposit
	UserName  string
	UserEmail string
}

type Notification struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type Stats struct {
	Users           int64
	Orders          int64
	Revenue         decimal.Decimal
	PendingDeposits int64
}

type DailyStats struct {
	Day      time.Time
	Orders   int64
	Revenue  decimal.Decimal
	Deposits int64
	Users    int64
}

// BinanceCredentials открытые ключи доступа к API Binance.
type BinanceCredentials struct {
	APIKey    string
	APISecret string
}

// IsEmpty сообщает, что хотя бы один из ключей не задан.
func (c BinanceCredentials) IsEmpty() bool {
	return c.APIKey == "" || c.APISecret == ""
}

// ProviderDeposit запись истории депозитов платежного провайдера.
type ProviderDeposit struct {
	TxID   string
	Amount decimal.Decimal
	Coin   string
	Status int
}
