package tax

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
)

// smallestUnit is one cent; bracket n+1 starts exactly one cent after
// bracket n ends.
var smallestUnit = decimal.New(1, -2)

// Bracket is one turnover range of the progressive schedule. BaseRate is a
// fraction (0.04 for 4%); Deduction is the amount subtracted before the
// effective rate is derived, which smooths the rate across the boundary.
type Bracket struct {
	RangeStart decimal.Decimal `json:"range_start"`
	RangeEnd   decimal.Decimal `json:"range_end"`
	BaseRate   decimal.Decimal `json:"base_rate"`
	Deduction  decimal.Decimal `json:"deduction"`
}

// Table is a validated, immutable bracket schedule.
type Table struct {
	brackets []Bracket
}

// DefaultTable returns the built-in Simples Nacional comercio schedule up to
// the regime ceiling.
func DefaultTable() Table {
	return Table{brackets: []Bracket{
		{RangeStart: dec("0"), RangeEnd: dec("180000"), BaseRate: dec("0.04"), Deduction: dec("0")},
		{RangeStart: dec("180000.01"), RangeEnd: dec("360000"), BaseRate: dec("0.073"), Deduction: dec("5940")},
		{RangeStart: dec("360000.01"), RangeEnd: dec("720000"), BaseRate: dec("0.095"), Deduction: dec("13860")},
		{RangeStart: dec("720000.01"), RangeEnd: dec("1800000"), BaseRate: dec("0.107"), Deduction: dec("22500")},
		{RangeStart: dec("1800000.01"), RangeEnd: dec("3600000"), BaseRate: dec("0.143"), Deduction: dec("87300")},
	}}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// LoadTable builds a table from an optional JSON override. An empty payload
// yields the default schedule. The table is validated once here, at process
// start, so resolution never revalidates.
func LoadTable(raw string) (Table, error) {
	if raw == "" {
		return DefaultTable(), nil
	}
	var brackets []Bracket
	if err := json.Unmarshal([]byte(raw), &brackets); err != nil {
		return Table{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "parse bracket table")
	}
	table := Table{brackets: brackets}
	if err := table.validate(); err != nil {
		return Table{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid bracket table")
	}
	return table, nil
}

// Brackets returns a copy of the schedule in ascending order.
func (t Table) Brackets() []Bracket {
	out := make([]Bracket, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// Ceiling returns the highest turnover the schedule covers.
func (t Table) Ceiling() decimal.Decimal {
	if len(t.brackets) == 0 {
		return decimal.Zero
	}
	return t.brackets[len(t.brackets)-1].RangeEnd
}

// validate checks contiguity, non-overlap and rate monotonicity, reporting
// every violation at once.
func (t Table) validate() error {
	var err error
	if len(t.brackets) == 0 {
		return fmt.Errorf("bracket table is empty")
	}

	first := t.brackets[0]
	if first.RangeStart.Sign() < 0 {
		err = multierr.Append(err, fmt.Errorf("bracket 0: range start %s is negative", first.RangeStart))
	}

	for i, bracket := range t.brackets {
		if bracket.RangeEnd.LessThanOrEqual(bracket.RangeStart) {
			err = multierr.Append(err, fmt.Errorf("bracket %d: range end %s not above start %s", i, bracket.RangeEnd, bracket.RangeStart))
		}
		if bracket.BaseRate.Sign() <= 0 {
			err = multierr.Append(err, fmt.Errorf("bracket %d: base rate %s must be positive", i, bracket.BaseRate))
		}
		if bracket.Deduction.Sign() < 0 {
			err = multierr.Append(err, fmt.Errorf("bracket %d: deduction %s is negative", i, bracket.Deduction))
		}
		if i == 0 {
			continue
		}
		prev := t.brackets[i-1]
		if !bracket.RangeStart.Equal(prev.RangeEnd.Add(smallestUnit)) {
			err = multierr.Append(err, fmt.Errorf("bracket %d: range start %s does not continue %s", i, bracket.RangeStart, prev.RangeEnd))
		}
		if bracket.BaseRate.LessThan(prev.BaseRate) {
			err = multierr.Append(err, fmt.Errorf("bracket %d: base rate %s below previous %s", i, bracket.BaseRate, prev.BaseRate))
		}
	}
	return err
}
