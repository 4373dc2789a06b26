// Package pricing derives displayed prices, savings and discount
// percentages for catalog packages. All functions are pure.
package pricing

import (
	"lab-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice is the amount actually charged for one unit.
func EffectivePrice(pkg *entity.Package) decimal.Decimal {
	return pkg.Price
}

// ReferencePrice is the pre-discount price used for savings display.
// An original price that is absent or not above the charged price is ignored.
func ReferencePrice(pkg *entity.Package) decimal.Decimal {
	if pkg.OriginalPrice != nil && pkg.OriginalPrice.GreaterThan(pkg.Price) {
		return *pkg.OriginalPrice
	}
	return pkg.Price
}

// IsDiscounted reports whether the package has a usable reference price.
func IsDiscounted(pkg *entity.Package) bool {
	return ReferencePrice(pkg).GreaterThan(EffectivePrice(pkg))
}

// LineSavings returns (reference - effective) * quantity. Never negative.
func LineSavings(pkg *entity.Package, quantity int) decimal.Decimal {
	diff := ReferencePrice(pkg).Sub(EffectivePrice(pkg))
	return diff.Mul(decimal.NewFromInt(int64(quantity)))
}

// LineTotal returns effective price * quantity.
func LineTotal(pkg *entity.Package, quantity int) decimal.Decimal {
	return EffectivePrice(pkg).Mul(decimal.NewFromInt(int64(quantity)))
}

// LineReferenceTotal returns reference price * quantity.
func LineReferenceTotal(pkg *entity.Package, quantity int) decimal.Decimal {
	return ReferencePrice(pkg).Mul(decimal.NewFromInt(int64(quantity)))
}

// DiscountPercent returns the stored discount percentage when present,
// otherwise the percentage implied by reference and effective price
// rounded to two places. ok is false when no percentage can be derived.
func DiscountPercent(pkg *entity.Package) (pct decimal.Decimal, ok bool) {
	if pkg.DiscountPercentage != nil {
		return *pkg.DiscountPercentage, true
	}

	ref := ReferencePrice(pkg)
	if !ref.IsPositive() {
		return decimal.Zero, false
	}

	pct = ref.Sub(EffectivePrice(pkg)).Div(ref).Mul(hundred).Round(2)
	return pct, true
}

// ShouldBePrice is original * (1 - discount/100) when both hints are
// present. It is only used for display; the charged price stays Price.
func ShouldBePrice(pkg *entity.Package) (decimal.Decimal, bool) {
	if pkg.OriginalPrice == nil || pkg.DiscountPercentage == nil {
		return decimal.Zero, false
	}
	factor := hundred.Sub(*pkg.DiscountPercentage).Div(hundred)
	return pkg.OriginalPrice.Mul(factor).Round(2), true
}
