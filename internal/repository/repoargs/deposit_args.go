package repoargs

import "github.com/shopspring/decimal"

type CreateDeposit struct {
	UserID        int64
	Amount        decimal.Decimal
	TransactionID string
}
