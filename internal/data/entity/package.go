package entity

import (
	"github.com/shopspring/decimal"
)

// Package is a purchasable bundle of diagnostic tests.
// Price is always the charged amount; OriginalPrice and DiscountPercentage
// are display hints and may be absent.
type Package struct {
	ID                 string           `db:"id"`
	Name               string           `db:"name"`
	TestCount          int              `db:"test_count"`
	Price              decimal.Decimal  `db:"price"`
	OriginalPrice      *decimal.Decimal `db:"original_price"`
	DiscountPercentage *decimal.Decimal `db:"discount_percentage"`
	IsActive           bool             `db:"is_active"`
	Timestamps
}
