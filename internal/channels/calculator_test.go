package channels

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCalculator() *Calculator {
	return NewCalculator(CalculatorParams{})
}

func baseProduct(cost string) types.Product {
	return types.Product{SKU: "SKU-1", Name: "Filtro de ar", BaseCost: dec(cost)}
}

func TestEvaluateMercadoLivreScenario(t *testing.T) {
	product := baseProduct("450.00")
	cfg := types.ChannelConfig{
		ChannelType:   enums.ChannelMercadoLivre,
		Enabled:       true,
		SalePrice:     dec("699.90"),
		PackagingCost: dec("15"),
		OtherPercent:  dec("3"),
		AdsPercent:    dec("5"),
	}

	result, err := newCalculator().Evaluate(context.Background(), product, cfg)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}

	// otherCosts = 15 + 699.90*0.08 = 70.992; netProfit = 699.90-450-70.992
	if !result.NetProfit.Equal(dec("178.91")) {
		t.Fatalf("expected net profit 178.91, got %s", result.NetProfit)
	}
	if !result.Margin.Round(3).Equal(dec("0.357")) {
		t.Fatalf("expected margin ~0.357, got %s", result.Margin)
	}
	// breakEven = (450+15)/(1-0.08)
	if !result.BreakEvenPrice.Equal(dec("505.43")) {
		t.Fatalf("expected break-even 505.43, got %s", result.BreakEvenPrice)
	}
}

func TestEvaluateDisabledChannelReturnsSentinel(t *testing.T) {
	cfg := types.ChannelConfig{
		ChannelType: enums.ChannelShopee,
		Enabled:     false,
		SalePrice:   dec("100"),
	}
	result, err := newCalculator().Evaluate(context.Background(), baseProduct("50"), cfg)
	if err != nil {
		t.Fatalf("disabled channel should not error: %v", err)
	}
	if !result.Margin.IsZero() || !result.NetProfit.IsZero() || !result.BreakEvenPrice.IsZero() {
		t.Fatalf("expected zero sentinel, got %+v", result)
	}
}

func TestEvaluateUnpricedChannelReturnsSentinel(t *testing.T) {
	cfg := types.ChannelConfig{
		ChannelType: enums.ChannelAmazon,
		Enabled:     true,
	}
	result, err := newCalculator().Evaluate(context.Background(), baseProduct("50"), cfg)
	if err != nil {
		t.Fatalf("unpriced channel should not error: %v", err)
	}
	if !result.NetProfit.IsZero() {
		t.Fatalf("expected zero sentinel, got %+v", result)
	}
}

func TestEvaluateUnknownChannel(t *testing.T) {
	cfg := types.ChannelConfig{
		ChannelType: enums.ChannelType("feira_livre"),
		Enabled:     true,
		SalePrice:   dec("100"),
	}
	_, err := newCalculator().Evaluate(context.Background(), baseProduct("50"), cfg)
	if err == nil {
		t.Fatal("expected unsupported channel error")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeUnsupportedChannel) {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeUnsupportedChannel, err)
	}
}

func TestEvaluateRejectsNegativeBaseCost(t *testing.T) {
	cfg := types.ChannelConfig{
		ChannelType: enums.ChannelMagalu,
		Enabled:     true,
		SalePrice:   dec("100"),
	}
	_, err := newCalculator().Evaluate(context.Background(), baseProduct("-10"), cfg)
	if err == nil {
		t.Fatal("expected validation error for negative base cost")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeValidation, err)
	}
}

func TestEvaluateMarginStaysInOpenUnitInterval(t *testing.T) {
	calculator := newCalculator()
	cases := []struct {
		cost  string
		price string
	}{
		{"0.01", "10"},
		{"0.01", "0.02"},
		{"450", "699.90"},
		{"999.99", "1000"},
	}
	for _, tc := range cases {
		cfg := types.ChannelConfig{
			ChannelType: enums.ChannelOwnSite,
			Enabled:     true,
			SalePrice:   dec(tc.price),
		}
		result, err := calculator.Evaluate(context.Background(), baseProduct(tc.cost), cfg)
		if err != nil {
			t.Fatalf("Evaluate(%s, %s) returned error: %v", tc.cost, tc.price, err)
		}
		if result.Margin.Sign() <= 0 || result.Margin.GreaterThanOrEqual(dec("1")) {
			t.Fatalf("margin %s out of (0,1) for cost=%s price=%s", result.Margin, tc.cost, tc.price)
		}
	}
}

func TestInfeasibleChannelBreakEven(t *testing.T) {
	product := baseProduct("50")
	cfg := types.ChannelConfig{
		ChannelType:       enums.ChannelMercadoLivre,
		Enabled:           true,
		SalePrice:         dec("100"),
		CommissionPercent: dec("60"),
		AdsPercent:        dec("45"),
	}
	calculator := newCalculator()

	// Evaluate still reports the loss at the current price.
	result, err := calculator.Evaluate(context.Background(), product, cfg)
	if err != nil {
		t.Fatalf("Evaluate should not fail on an infeasible schedule: %v", err)
	}
	// netProfit = 100 - 50 - 105 = -55
	if !result.NetProfit.Equal(dec("-55")) {
		t.Fatalf("expected net profit -55, got %s", result.NetProfit)
	}
	if !result.BreakEvenPrice.IsZero() {
		t.Fatalf("expected zero break-even for infeasible channel, got %s", result.BreakEvenPrice)
	}

	_, err = calculator.BreakEven(context.Background(), product, cfg)
	if err == nil {
		t.Fatal("expected infeasible channel error")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeInfeasibleChannel) {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeInfeasibleChannel, err)
	}
}

func TestOwnSiteIgnoresCommissionDeclaratively(t *testing.T) {
	product := baseProduct("40")
	withCommission := types.ChannelConfig{
		ChannelType:       enums.ChannelOwnSite,
		Enabled:           true,
		SalePrice:         dec("100"),
		CommissionPercent: dec("12"),
	}
	withoutCommission := withCommission
	withoutCommission.CommissionPercent = decimal.Zero

	calculator := newCalculator()
	first, err := calculator.Evaluate(context.Background(), product, withCommission)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	second, err := calculator.Evaluate(context.Background(), product, withoutCommission)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !first.NetProfit.Equal(second.NetProfit) {
		t.Fatalf("own site must not charge commission: %s vs %s", first.NetProfit, second.NetProfit)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	product := baseProduct("450.00")
	cfg := types.ChannelConfig{
		ChannelType:       enums.ChannelShopee,
		Enabled:           true,
		SalePrice:         dec("699.90"),
		CommissionPercent: dec("14"),
		FixedFee:          dec("4"),
		PackagingCost:     dec("15"),
		AdsPercent:        dec("5"),
	}
	calculator := newCalculator()
	first, err := calculator.Evaluate(context.Background(), product, cfg)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	second, err := calculator.Evaluate(context.Background(), product, cfg)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if first.NetProfit.String() != second.NetProfit.String() ||
		first.Margin.String() != second.Margin.String() ||
		first.BreakEvenPrice.String() != second.BreakEvenPrice.String() {
		t.Fatalf("identical inputs diverged: %+v vs %+v", first, second)
	}
}

func TestEvaluateAllSkipsDisabledChannels(t *testing.T) {
	product := baseProduct("50")
	cfgs := []types.ChannelConfig{
		{ChannelType: enums.ChannelOwnSite, Enabled: true, SalePrice: dec("100")},
		{ChannelType: enums.ChannelShopee, Enabled: false, SalePrice: dec("120")},
		{ChannelType: enums.ChannelAmazon, Enabled: true, SalePrice: dec("110")},
	}

	results, err := newCalculator().EvaluateAll(context.Background(), product, cfgs)
	if err != nil {
		t.Fatalf("EvaluateAll returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ChannelType != enums.ChannelOwnSite || results[1].ChannelType != enums.ChannelAmazon {
		t.Fatalf("unexpected channel order: %+v", results)
	}
}
