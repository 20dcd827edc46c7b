package enums

import (
	"fmt"
	"strings"
)

// TaxChargeBase names the declared base an import tax is charged against.
type TaxChargeBase string

const (
	// TaxBaseCFR charges a percentage of the CFR value in local currency.
	TaxBaseCFR TaxChargeBase = "cfr"
	// TaxBaseFOB charges a percentage of the FOB value in local currency.
	TaxBaseFOB TaxChargeBase = "fob"
	// TaxBaseFixed charges a flat local-currency amount.
	TaxBaseFixed TaxChargeBase = "fixed"
)

var validTaxChargeBases = []TaxChargeBase{
	TaxBaseCFR,
	TaxBaseFOB,
	TaxBaseFixed,
}

// String implements fmt.Stringer.
func (b TaxChargeBase) String() string {
	return string(b)
}

// IsValid reports whether the base is known.
func (b TaxChargeBase) IsValid() bool {
	for _, candidate := range validTaxChargeBases {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseTaxChargeBase converts raw input into a TaxChargeBase.
func ParseTaxChargeBase(value string) (TaxChargeBase, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validTaxChargeBases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tax charge base %q", value)
}
