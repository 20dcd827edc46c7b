package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round rounds a currency amount to two decimal places using bankers
// rounding. Intermediate arithmetic keeps full precision; only presented
// values go through here.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(2)
}

// Truncate cuts a currency amount to two decimal places toward zero. Used by
// the allocator so residual cents can be absorbed deterministically.
func Truncate(amount decimal.Decimal) decimal.Decimal {
	return amount.Truncate(2)
}

// Percent applies a percentage (e.g. 8 for 8%) to a base amount.
func Percent(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(hundred)
}

// Fraction converts a percentage to its decimal fraction (8 -> 0.08).
func Fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// Sum adds a slice of amounts.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
