package validate

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/types"
)

func TestStructAcceptsValidSimulation(t *testing.T) {
	sim := types.ImportSimulation{
		FxRate:           decimal.RequireFromString("5.20"),
		FreightForeign:   decimal.RequireFromString("300"),
		DeclaredTurnover: decimal.RequireFromString("150000"),
		ProductLines: []types.ProductLine{
			{SKU: "A", UnitPriceForeign: decimal.RequireFromString("10"), Quantity: 5},
		},
	}
	if err := Struct(sim); err != nil {
		t.Fatalf("valid simulation rejected: %v", err)
	}
}

func TestStructRejectsNegativeFreight(t *testing.T) {
	sim := types.ImportSimulation{
		FxRate:           decimal.RequireFromString("5.20"),
		FreightForeign:   decimal.RequireFromString("-300"),
		DeclaredTurnover: decimal.RequireFromString("150000"),
	}
	err := Struct(sim)
	if err == nil {
		t.Fatal("expected validation error for negative freight")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeValidation, err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if _, found := details["freight_foreign"]; !found {
		t.Fatalf("expected freight_foreign detail, got %v", details)
	}
}

func TestStructRejectsNegativeDecimal(t *testing.T) {
	cfg := types.ChannelConfig{
		ChannelType: enums.ChannelMercadoLivre,
		SalePrice:   decimal.RequireFromString("-1"),
	}
	if err := Struct(cfg); err == nil {
		t.Fatal("expected validation error for negative sale price")
	}
}

func TestStructRejectsZeroQuantity(t *testing.T) {
	line := types.ProductLine{
		UnitPriceForeign: decimal.RequireFromString("10"),
		Quantity:         0,
	}
	if err := Struct(line); err == nil {
		t.Fatal("expected validation error for zero quantity")
	}
}
