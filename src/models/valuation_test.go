package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func holding(quantity, buyPrice, currentPrice string) *Asset {
	buy := dec(buyPrice)
	return &Asset{
		AssetType:    AssetTypeStock,
		Quantity:     dec(quantity),
		BuyPrice:     &buy,
		CurrentPrice: dec(currentPrice),
	}
}

func TestHoldingValuation(t *testing.T) {
	a := holding("2", "10", "15")

	assert.True(t, InvestedValue(a).Equal(dec("20")))
	assert.True(t, CurrentValue(a).Equal(dec("30")))
	assert.True(t, AbsoluteReturn(a).Equal(dec("10")))
	assert.True(t, PercentageReturn(a).Equal(dec("50")))
}

func TestWishlistAssetHasNoInvestedValue(t *testing.T) {
	a := &Asset{
		AssetType:    AssetTypeETF,
		Quantity:     dec("3"),
		BuyPrice:     nil,
		CurrentPrice: dec("40000"),
		Wishlist:     true,
	}

	assert.True(t, InvestedValue(a).IsZero())
	assert.True(t, CurrentValue(a).Equal(dec("120000")))
	assert.True(t, AbsoluteReturn(a).Equal(dec("120000")))
	assert.True(t, PercentageReturn(a).IsZero(), "no percentage without an invested base")
}

func TestPercentageReturnRounding(t *testing.T) {
	// 10/3 invested, 20/3 current: return is exactly 100% after the
	// intermediate ratio is rounded to four decimal places.
	a := holding("1", "3", "6")
	assert.True(t, PercentageReturn(a).Equal(dec("100")))

	// 7 -> 9 on a single unit: 2/7 = 0.285714..., rounded to 0.2857
	b := holding("1", "7", "9")
	assert.True(t, PercentageReturn(b).Equal(dec("28.57")),
		"got %s", PercentageReturn(b))
}

func TestPercentageOf(t *testing.T) {
	assert.True(t, PercentageOf(dec("30"), dec("120")).Equal(dec("25")))
	assert.True(t, PercentageOf(dec("1"), dec("3")).Equal(dec("33.33")))
	assert.True(t, PercentageOf(dec("2"), dec("3")).Equal(dec("66.67")))
}

func TestCombinedPortfolioFigures(t *testing.T) {
	a := holding("2", "10", "15")
	b := holding("1", "100", "120")

	invested := InvestedValue(a).Add(InvestedValue(b))
	current := CurrentValue(a).Add(CurrentValue(b))

	assert.True(t, invested.Equal(dec("120")))
	assert.True(t, current.Equal(dec("150")))
	assert.True(t, current.Sub(invested).Equal(dec("30")))
	assert.True(t, PercentageOf(current.Sub(invested), invested).Equal(dec("25")))
}
