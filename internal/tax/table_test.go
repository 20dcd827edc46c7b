package tax

import (
	"testing"

	"go.uber.org/multierr"
)

func TestDefaultTableShape(t *testing.T) {
	table := DefaultTable()
	brackets := table.Brackets()
	if len(brackets) != 5 {
		t.Fatalf("expected 5 brackets, got %d", len(brackets))
	}
	if !table.Ceiling().Equal(dec("3600000")) {
		t.Fatalf("expected ceiling 3600000, got %s", table.Ceiling())
	}
	if err := table.validate(); err != nil {
		t.Fatalf("default table should validate: %v", err)
	}
}

func TestLoadTableEmptyUsesDefault(t *testing.T) {
	table, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable(\"\") returned error: %v", err)
	}
	if !table.Ceiling().Equal(DefaultTable().Ceiling()) {
		t.Fatalf("expected default ceiling, got %s", table.Ceiling())
	}
}

func TestLoadTableOverride(t *testing.T) {
	raw := `[
		{"range_start":"0","range_end":"100000","base_rate":"0.05","deduction":"0"},
		{"range_start":"100000.01","range_end":"200000","base_rate":"0.08","deduction":"3000"}
	]`
	table, err := LoadTable(raw)
	if err != nil {
		t.Fatalf("LoadTable returned error: %v", err)
	}
	if got := len(table.Brackets()); got != 2 {
		t.Fatalf("expected 2 brackets, got %d", got)
	}
	if !table.Ceiling().Equal(dec("200000")) {
		t.Fatalf("expected ceiling 200000, got %s", table.Ceiling())
	}
}

func TestLoadTableRejectsMalformedJSON(t *testing.T) {
	if _, err := LoadTable("{not json"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadTableReportsAllViolations(t *testing.T) {
	// Gap between brackets, rate regression and negative deduction at once.
	raw := `[
		{"range_start":"0","range_end":"100000","base_rate":"0.05","deduction":"0"},
		{"range_start":"150000","range_end":"200000","base_rate":"0.04","deduction":"-10"}
	]`
	_, err := LoadTable(raw)
	if err == nil {
		t.Fatal("expected validation error")
	}

	table := Table{}
	raw2 := []Bracket{
		{RangeStart: dec("0"), RangeEnd: dec("100000"), BaseRate: dec("0.05")},
		{RangeStart: dec("150000"), RangeEnd: dec("200000"), BaseRate: dec("0.04"), Deduction: dec("-10")},
	}
	table.brackets = raw2
	verr := table.validate()
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got := len(multierr.Errors(verr)); got < 3 {
		t.Fatalf("expected at least 3 accumulated violations, got %d: %v", got, verr)
	}
}

func TestValidateRejectsEmptyTable(t *testing.T) {
	if err := (Table{}).validate(); err == nil {
		t.Fatal("expected error for empty table")
	}
}
