package request

import "github.com/shopspring/decimal"

type PackageRequest struct {
	ID                 string           `json:"id" validate:"required,max=64"`
	Name               string           `json:"name" validate:"required,min=1,max=200"`
	TestCount          int              `json:"test_count" validate:"required,min=1"`
	Price              decimal.Decimal  `json:"price" validate:"gt=0"`
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}
