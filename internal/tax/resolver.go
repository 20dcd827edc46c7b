package tax

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
)

var (
	substitutionThreshold = decimal.NewFromInt(360000)
	reductionBelow        = dec("0.34")
	reductionAtOrAbove    = dec("0.335")
)

// Tier is the outcome of resolving a turnover against the schedule.
// EffectiveRate is the de-aliased average rate implied by the progressive
// schedule: (turnover*baseRate - deduction) / turnover.
type Tier struct {
	Bracket               Bracket
	EffectiveRate         decimal.Decimal
	SubstitutionReduction decimal.Decimal
}

// Resolver maps annual turnover onto the progressive schedule.
type Resolver struct {
	table Table
}

// NewResolver builds a resolver over an already-validated table.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve selects the bracket covering the turnover and derives the
// effective rate. Turnover above the regime ceiling is an error, never an
// extrapolation.
func (r *Resolver) Resolve(turnover decimal.Decimal) (Tier, error) {
	if turnover.Sign() <= 0 {
		return Tier{}, pkgerrors.New(pkgerrors.CodeInvalidInput, "turnover must be positive").
			WithDetails(map[string]string{"turnover": turnover.String()})
	}

	for _, bracket := range r.table.brackets {
		if turnover.GreaterThanOrEqual(bracket.RangeStart) && turnover.LessThanOrEqual(bracket.RangeEnd) {
			effective := turnover.Mul(bracket.BaseRate).Sub(bracket.Deduction).Div(turnover)
			return Tier{
				Bracket:               bracket,
				EffectiveRate:         effective,
				SubstitutionReduction: SubstitutionReduction(turnover),
			}, nil
		}
	}

	return Tier{}, pkgerrors.New(pkgerrors.CodeOutOfRange, "turnover above regime ceiling").
		WithDetails(map[string]string{
			"turnover": turnover.String(),
			"ceiling":  r.table.Ceiling().String(),
		})
}

// SubstitutionReduction returns the reduction factor applied to the portion
// of turnover under tax substitution. A step function: 34% below the
// threshold, 33.5% at or above it.
func SubstitutionReduction(turnover decimal.Decimal) decimal.Decimal {
	if turnover.LessThan(substitutionThreshold) {
		return reductionBelow
	}
	return reductionAtOrAbove
}
