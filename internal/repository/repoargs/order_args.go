package repoargs

import "github.com/shopspring/decimal"

type CreateOrder struct {
	UserID    int64
	ProductID int64
	CodeID    int64
	PlayerID  string
	Amount    decimal.Decimal
}
