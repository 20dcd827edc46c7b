package enums

import (
	"fmt"
	"strings"
)

// FeeTermKind describes how a fee term is charged against a sale.
type FeeTermKind string

const (
	// FeeTermPercentOfPrice charges a percentage of the sale price.
	FeeTermPercentOfPrice FeeTermKind = "percent_of_price"
	// FeeTermPercentOfCost charges a percentage of the product base cost.
	FeeTermPercentOfCost FeeTermKind = "percent_of_cost"
	// FeeTermFixed charges a flat amount per sale.
	FeeTermFixed FeeTermKind = "fixed"
	// FeeTermCostValue passes a configured cost through unchanged.
	FeeTermCostValue FeeTermKind = "cost_value"
)

var validFeeTermKinds = []FeeTermKind{
	FeeTermPercentOfPrice,
	FeeTermPercentOfCost,
	FeeTermFixed,
	FeeTermCostValue,
}

// String implements fmt.Stringer.
func (k FeeTermKind) String() string {
	return string(k)
}

// IsValid reports whether the kind is known.
func (k FeeTermKind) IsValid() bool {
	for _, candidate := range validFeeTermKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseFeeTermKind converts raw input into a FeeTermKind.
func ParseFeeTermKind(value string) (FeeTermKind, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validFeeTermKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fee term kind %q", value)
}

// FeeField names the channel configuration field a fee term reads its
// percentage or amount from.
type FeeField string

const (
	FeeFieldCommissionPercent    FeeField = "commission_percent"
	FeeFieldFixedFee             FeeField = "fixed_fee"
	FeeFieldOtherPercent         FeeField = "other_percent"
	FeeFieldOtherValue           FeeField = "other_value"
	FeeFieldAdsPercent           FeeField = "ads_percent"
	FeeFieldShippingCost         FeeField = "shipping_cost"
	FeeFieldPackagingCost        FeeField = "packaging_cost"
	FeeFieldFinancialCostPercent FeeField = "financial_cost_percent"
	FeeFieldMarketingCostPercent FeeField = "marketing_cost_percent"
)

// String implements fmt.Stringer.
func (f FeeField) String() string {
	return string(f)
}
