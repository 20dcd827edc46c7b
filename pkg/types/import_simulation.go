package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
)

// TaxCharge is a declared import tax. Percentage charges resolve RatePercent
// against the named base; fixed charges use Amount as-is in local currency.
type TaxCharge struct {
	Name        string              `json:"name" validate:"required"`
	Base        enums.TaxChargeBase `json:"base" validate:"required"`
	RatePercent decimal.Decimal     `json:"rate_percent" validate:"gte=0"`
	Amount      decimal.Decimal     `json:"amount" validate:"gte=0"`
}

// AdditionalExpense is a named shipment expense already in local currency.
type AdditionalExpense struct {
	Name   string          `json:"name" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}

// ProductLine is one SKU inside a simulation. Lines are owned by their
// simulation and never shared across simulations.
type ProductLine struct {
	SKU              string          `json:"sku"`
	UnitPriceForeign decimal.Decimal `json:"unit_price_foreign" validate:"gte=0"`
	Quantity         int             `json:"quantity" validate:"min=1"`
	WeightKg         decimal.Decimal `json:"weight_kg" validate:"gte=0"`
}

// ImportSimulation is the full input for one landed-cost calculation.
// FxRate is local currency per unit of foreign currency. DeclaredTurnover is
// the annual-turnover context used for the tax tier lookup; it is supplied by
// the caller, not derived from the shipment. Rate, turnover and line
// positivity produce their own typed errors downstream, so only structural
// rules live in the tags here.
type ImportSimulation struct {
	ID                 uuid.UUID             `json:"id"`
	FxRate             decimal.Decimal       `json:"fx_rate"`
	FreightForeign     decimal.Decimal       `json:"freight_foreign" validate:"gte=0"`
	DeclaredTurnover   decimal.Decimal       `json:"declared_turnover"`
	AllocationBasis    enums.AllocationBasis `json:"allocation_basis,omitempty"`
	Taxes              []TaxCharge           `json:"taxes" validate:"dive"`
	AdditionalExpenses []AdditionalExpense   `json:"additional_expenses" validate:"dive"`
	ProductLines       []ProductLine         `json:"product_lines" validate:"dive"`
}
