package response

import (
	"lab-booking/internal/data/entity"
	"lab-booking/internal/pricing"

	"github.com/shopspring/decimal"
)

type PackageResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	TestCount          int              `json:"test_count"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty"`
	ReferencePrice     decimal.Decimal  `json:"reference_price"`
	Savings            decimal.Decimal  `json:"savings"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	IsDiscounted       bool             `json:"is_discounted"`
	IsActive           bool             `json:"is_active"`
}

// PackageToResponse prices a package for display.
func PackageToResponse(pkg *entity.Package) PackageResponse {
	resp := PackageResponse{
		ID:             pkg.ID,
		Name:           pkg.Name,
		TestCount:      pkg.TestCount,
		Price:          pricing.EffectivePrice(pkg),
		OriginalPrice:  pkg.OriginalPrice,
		ReferencePrice: pricing.ReferencePrice(pkg),
		Savings:        pricing.LineSavings(pkg, 1),
		IsDiscounted:   pricing.IsDiscounted(pkg),
		IsActive:       pkg.IsActive,
	}

	if resp.IsDiscounted {
		if pct, ok := pricing.DiscountPercent(pkg); ok {
			resp.DiscountPercentage = &pct
		}
	}

	return resp
}
