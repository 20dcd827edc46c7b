package types

import (
	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
)

// ChannelProfitabilityResult is the per-channel outcome for one product.
// Margin is gross ((price - cost) / price) and deliberately not derived from
// NetProfit; the back office shows them as two separate signals. A disabled
// or unpriced channel yields the zero value. BreakEvenPrice is zero when the
// configuration is infeasible; use Calculator.BreakEven for the typed error.
type ChannelProfitabilityResult struct {
	ChannelType    enums.ChannelType `json:"channel_type"`
	Margin         decimal.Decimal   `json:"margin"`
	NetProfit      decimal.Decimal   `json:"net_profit"`
	BreakEvenPrice decimal.Decimal   `json:"break_even_price"`
}

// LineCost is the landed cost allocated to one product line, in input order.
type LineCost struct {
	SKU           string          `json:"sku"`
	AllocatedCost decimal.Decimal `json:"allocated_cost"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// ImportCalculationResult is the complete output of one landed-cost
// simulation. Currency amounts are presented at two decimal places; the line
// cost vector sums exactly to TotalLandedCost.
type ImportCalculationResult struct {
	FobForeign            decimal.Decimal `json:"fob_foreign"`
	FobLocal              decimal.Decimal `json:"fob_local"`
	FreightForeign        decimal.Decimal `json:"freight_foreign"`
	FreightLocal          decimal.Decimal `json:"freight_local"`
	CfrForeign            decimal.Decimal `json:"cfr_foreign"`
	CfrLocal              decimal.Decimal `json:"cfr_local"`
	TotalTaxes            decimal.Decimal `json:"total_taxes"`
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	TotalLandedCost       decimal.Decimal `json:"total_landed_cost"`
	EffectiveTaxRate      decimal.Decimal `json:"effective_tax_rate"`
	SubstitutionReduction decimal.Decimal `json:"substitution_reduction"`
	LineCosts             []LineCost      `json:"line_costs"`
}
