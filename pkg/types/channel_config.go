package types

import (
	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
)

// ChannelConfig is the per-channel listing configuration for one product.
// Percent fields are whole percentages (8 means 8%). The channel-specific
// listing identifier is opaque to the calculation core.
type ChannelConfig struct {
	ChannelType          enums.ChannelType `json:"channel_type" validate:"required"`
	Enabled              bool              `json:"enabled"`
	SalePrice            decimal.Decimal   `json:"sale_price" validate:"gte=0"`
	CommissionPercent    decimal.Decimal   `json:"commission_percent" validate:"gte=0"`
	FixedFee             decimal.Decimal   `json:"fixed_fee" validate:"gte=0"`
	OtherPercent         decimal.Decimal   `json:"other_percent" validate:"gte=0"`
	OtherValue           decimal.Decimal   `json:"other_value" validate:"gte=0"`
	AdsPercent           decimal.Decimal   `json:"ads_percent" validate:"gte=0"`
	ShippingCost         decimal.Decimal   `json:"shipping_cost" validate:"gte=0"`
	PackagingCost        decimal.Decimal   `json:"packaging_cost" validate:"gte=0"`
	FinancialCostPercent decimal.Decimal   `json:"financial_cost_percent" validate:"gte=0"`
	MarketingCostPercent decimal.Decimal   `json:"marketing_cost_percent" validate:"gte=0"`
	ChannelProductID     *string           `json:"channel_product_id,omitempty"`
}

// FieldValue returns the configured amount or percentage behind a fee field.
func (c ChannelConfig) FieldValue(field enums.FeeField) decimal.Decimal {
	switch field {
	case enums.FeeFieldCommissionPercent:
		return c.CommissionPercent
	case enums.FeeFieldFixedFee:
		return c.FixedFee
	case enums.FeeFieldOtherPercent:
		return c.OtherPercent
	case enums.FeeFieldOtherValue:
		return c.OtherValue
	case enums.FeeFieldAdsPercent:
		return c.AdsPercent
	case enums.FeeFieldShippingCost:
		return c.ShippingCost
	case enums.FeeFieldPackagingCost:
		return c.PackagingCost
	case enums.FeeFieldFinancialCostPercent:
		return c.FinancialCostPercent
	case enums.FeeFieldMarketingCostPercent:
		return c.MarketingCostPercent
	}
	return decimal.Zero
}
