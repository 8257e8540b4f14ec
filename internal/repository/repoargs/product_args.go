package repoargs

import "github.com/shopspring/decimal"

type CreateProduct struct {
	Name     string
	UCAmount int64
	Price    decimal.Decimal
	Image    *string
}

// UpdateProduct частичное обновление продукта: nil поля не меняются.
type UpdateProduct struct {
	Name     *string
	UCAmount *int64
	Price    *decimal.Decimal
	Image    *string
	IsActive *bool
}
