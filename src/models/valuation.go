package models

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// InvestedValue is quantity * buy price, zero for wishlist assets (nil buy price).
func InvestedValue(a *Asset) decimal.Decimal {
	if a.BuyPrice == nil {
		return decimal.Zero
	}
	return a.Quantity.Mul(*a.BuyPrice)
}

// CurrentValue is quantity * current price. It is computed for wishlist assets
// too; callers summing financial totals must filter those out themselves.
func CurrentValue(a *Asset) decimal.Decimal {
	return a.Quantity.Mul(a.CurrentPrice)
}

func AbsoluteReturn(a *Asset) decimal.Decimal {
	return CurrentValue(a).Sub(InvestedValue(a))
}

// PercentageReturn is absolute return over invested value, as a percentage.
// Zero when nothing is invested, so wishlist assets never divide by zero.
func PercentageReturn(a *Asset) decimal.Decimal {
	invested := InvestedValue(a)
	if invested.IsZero() {
		return decimal.Zero
	}
	return PercentageOf(AbsoluteReturn(a), invested)
}

// PercentageOf computes part/whole * 100 with the division done at 4 decimal
// places, round half up. The result is not rounded again after the multiply.
func PercentageOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.DivRound(whole, 4).Mul(hundred)
}
