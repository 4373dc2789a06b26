package response

import (
	"lab-booking/internal/cart"
	"lab-booking/internal/pricing"

	"github.com/shopspring/decimal"
)

type CartItemResponse struct {
	PackageID          string           `json:"package_id"`
	Name               string           `json:"name"`
	TestCount          int              `json:"test_count"`
	Quantity           int              `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unit_price"`
	ReferencePrice     decimal.Decimal  `json:"reference_price"`
	LineTotal          decimal.Decimal  `json:"line_total"`
	LineSavings        decimal.Decimal  `json:"line_savings"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
}

type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	ItemCount     int                `json:"item_count"`
	Total         decimal.Decimal    `json:"total"`
	OriginalTotal decimal.Decimal    `json:"original_total"`
	Savings       decimal.Decimal    `json:"savings"`
}

func CartItemsToResponse(items []cart.Item) []CartItemResponse {
	out := make([]CartItemResponse, len(items))
	for i := range items {
		item := &items[i]
		out[i] = CartItemResponse{
			PackageID:      item.Package.ID,
			Name:           item.Package.Name,
			TestCount:      item.Package.TestCount,
			Quantity:       item.Quantity,
			UnitPrice:      pricing.EffectivePrice(&item.Package),
			ReferencePrice: pricing.ReferencePrice(&item.Package),
			LineTotal:      pricing.LineTotal(&item.Package, item.Quantity),
			LineSavings:    pricing.LineSavings(&item.Package, item.Quantity),
		}
		if pricing.IsDiscounted(&item.Package) {
			if pct, ok := pricing.DiscountPercent(&item.Package); ok {
				out[i].DiscountPercentage = &pct
			}
		}
	}
	return out
}

func CartToResponse(s cart.Summary) CartResponse {
	return CartResponse{
		Items:         CartItemsToResponse(s.Items),
		ItemCount:     s.ItemCount,
		Total:         s.Total,
		OriginalTotal: s.OriginalTotal,
		Savings:       s.Savings,
	}
}
