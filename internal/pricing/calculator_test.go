package pricing

import (
	"testing"

	"lab-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func pkg(price string, original, discount *decimal.Decimal) *entity.Package {
	return &entity.Package{
		ID:                 "P1",
		Name:               "Full Body Checkup",
		Price:              decimal.RequireFromString(price),
		OriginalPrice:      original,
		DiscountPercentage: discount,
		IsActive:           true,
	}
}

func TestReferencePrice(t *testing.T) {
	tests := []struct {
		name string
		pkg  *entity.Package
		want string
	}{
		{"no original price", pkg("899", nil, nil), "899"},
		{"original above price", pkg("899", dec("1299"), nil), "1299"},
		{"original equal to price", pkg("899", dec("899"), nil), "899"},
		{"original below price", pkg("899", dec("500"), nil), "899"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(ReferencePrice(tt.pkg)))
			assert.True(t, tt.pkg.Price.Equal(EffectivePrice(tt.pkg)))
		})
	}
}

func TestLineSavings_Discounted(t *testing.T) {
	p := pkg("899", dec("1299"), nil)

	for q := 1; q <= 10; q++ {
		want := decimal.NewFromInt(int64(400 * q))
		assert.True(t, want.Equal(LineSavings(p, q)), "quantity %d", q)
	}
	assert.True(t, IsDiscounted(p))
}

func TestLineSavings_NotDiscounted(t *testing.T) {
	for _, p := range []*entity.Package{
		pkg("2499", nil, nil),
		pkg("2499", dec("2499"), nil),
		pkg("2499", dec("1999"), nil),
	} {
		for q := 1; q <= 10; q++ {
			assert.True(t, LineSavings(p, q).IsZero())
		}
		assert.False(t, IsDiscounted(p))
	}
}

func TestLineTotals(t *testing.T) {
	p := pkg("899", dec("1299"), nil)

	assert.Equal(t, "1798", LineTotal(p, 2).String())
	assert.Equal(t, "2598", LineReferenceTotal(p, 2).String())
}

func TestDiscountPercent(t *testing.T) {
	t.Run("stored value wins", func(t *testing.T) {
		pct, ok := DiscountPercent(pkg("899", dec("1299"), dec("30")))
		assert.True(t, ok)
		assert.Equal(t, "30", pct.String())
	})

	t.Run("computed and rounded", func(t *testing.T) {
		pct, ok := DiscountPercent(pkg("899", dec("1299"), nil))
		assert.True(t, ok)
		assert.Equal(t, "30.79", pct.String())
	})

	t.Run("not discounted", func(t *testing.T) {
		pct, ok := DiscountPercent(pkg("899", nil, nil))
		assert.True(t, ok)
		assert.True(t, pct.IsZero())
	})

	t.Run("free package", func(t *testing.T) {
		_, ok := DiscountPercent(pkg("0", nil, nil))
		assert.False(t, ok)
	})
}

func TestShouldBePrice(t *testing.T) {
	price, ok := ShouldBePrice(pkg("899", dec("1299"), dec("30")))
	assert.True(t, ok)
	assert.Equal(t, "909.3", price.String())

	_, ok = ShouldBePrice(pkg("899", dec("1299"), nil))
	assert.False(t, ok)
}
