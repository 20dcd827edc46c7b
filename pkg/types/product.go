package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dimensions carries package dimensions in centimeters.
type Dimensions struct {
	LengthCm decimal.Decimal `json:"length_cm" validate:"gte=0"`
	WidthCm  decimal.Decimal `json:"width_cm" validate:"gte=0"`
	HeightCm decimal.Decimal `json:"height_cm" validate:"gte=0"`
}

// Product is the read-only catalog snapshot the calculation core receives.
// The catalog layer owns the record; the core never writes it back.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	BaseCost   decimal.Decimal `json:"base_cost" validate:"gte=0"`
	WeightKg   decimal.Decimal `json:"weight_kg" validate:"gte=0"`
	Dimensions Dimensions      `json:"dimensions"`
	TaxPercent decimal.Decimal `json:"tax_percent" validate:"gte=0"`
}
