package enums

import (
	"fmt"
	"strings"
)

// AllocationBasis selects the weighting used to split shipment-level costs
// across product lines.
type AllocationBasis string

const (
	AllocationBasisByValue    AllocationBasis = "by_value"
	AllocationBasisByWeight   AllocationBasis = "by_weight"
	AllocationBasisByQuantity AllocationBasis = "by_quantity"
)

var validAllocationBases = []AllocationBasis{
	AllocationBasisByValue,
	AllocationBasisByWeight,
	AllocationBasisByQuantity,
}

// String implements fmt.Stringer.
func (a AllocationBasis) String() string {
	return string(a)
}

// IsValid reports whether the basis is known.
func (a AllocationBasis) IsValid() bool {
	for _, candidate := range validAllocationBases {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAllocationBasis converts raw input into an AllocationBasis.
func ParseAllocationBasis(value string) (AllocationBasis, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validAllocationBases {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid allocation basis %q", value)
}
