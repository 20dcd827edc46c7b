package channels

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/logger"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/metrics"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/money"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/types"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/validate"
)

const operationName = "channel_profitability"

var one = decimal.NewFromInt(1)

// CalculatorParams configure the profitability calculator. Logger and
// metrics are optional.
type CalculatorParams struct {
	Logger  *logger.Logger
	Metrics *metrics.CalculationMetrics
}

// Calculator derives margin, net profit and break-even price for a product
// on one channel. It holds no state across calls.
type Calculator struct {
	logg    *logger.Logger
	metrics *metrics.CalculationMetrics
}

// NewCalculator builds a profitability calculator.
func NewCalculator(params CalculatorParams) *Calculator {
	return &Calculator{
		logg:    params.Logger,
		metrics: params.Metrics,
	}
}

// Evaluate computes the profitability of product on the configured channel.
// A disabled or unpriced channel returns the zero-value sentinel, not an
// error: both are routine states in catalog data. The break-even price is
// left at zero when the fee schedule makes break-even undefined; BreakEven
// reports that case as a typed error.
func (c *Calculator) Evaluate(ctx context.Context, product types.Product, cfg types.ChannelConfig) (types.ChannelProfitabilityResult, error) {
	start := time.Now()
	result, err := c.evaluate(product, cfg)
	c.observe(ctx, start, err)
	return result, err
}

func (c *Calculator) evaluate(product types.Product, cfg types.ChannelConfig) (types.ChannelProfitabilityResult, error) {
	if err := validate.Struct(product); err != nil {
		return types.ChannelProfitabilityResult{}, err
	}
	if err := validate.Struct(cfg); err != nil {
		return types.ChannelProfitabilityResult{}, err
	}

	if !cfg.Enabled || cfg.SalePrice.Sign() <= 0 {
		return types.ChannelProfitabilityResult{ChannelType: cfg.ChannelType}, nil
	}

	schedule, err := ScheduleFor(cfg.ChannelType)
	if err != nil {
		return types.ChannelProfitabilityResult{}, err
	}

	percentSum, flatSum := splitTerms(schedule, product, cfg)

	price := cfg.SalePrice
	netProfit := price.
		Sub(product.BaseCost).
		Sub(money.Percent(price, percentSum)).
		Sub(flatSum)
	margin := price.Sub(product.BaseCost).Div(price)

	breakEven := decimal.Zero
	if be, beErr := breakEvenPrice(schedule, product, cfg); beErr == nil {
		breakEven = be
	} else if !pkgerrors.HasCode(beErr, pkgerrors.CodeInfeasibleChannel) {
		return types.ChannelProfitabilityResult{}, beErr
	}

	return types.ChannelProfitabilityResult{
		ChannelType:    cfg.ChannelType,
		Margin:         margin,
		NetProfit:      money.Round(netProfit),
		BreakEvenPrice: breakEven,
	}, nil
}

// BreakEven returns the sale price at which net profit is zero. Fee
// percentages at or above 100% of price make the configuration unsellable,
// which is reported as an infeasible-channel error.
func (c *Calculator) BreakEven(ctx context.Context, product types.Product, cfg types.ChannelConfig) (decimal.Decimal, error) {
	schedule, err := ScheduleFor(cfg.ChannelType)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return breakEvenPrice(schedule, product, cfg)
}

// EvaluateAll runs Evaluate over every enabled channel configuration,
// preserving input order. Disabled channels are excluded from the aggregate
// view entirely.
func (c *Calculator) EvaluateAll(ctx context.Context, product types.Product, cfgs []types.ChannelConfig) ([]types.ChannelProfitabilityResult, error) {
	results := make([]types.ChannelProfitabilityResult, 0, len(cfgs))
	for _, cfg := range cfgs {
		if !cfg.Enabled {
			continue
		}
		result, err := c.Evaluate(ctx, product, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// splitTerms folds the schedule into the percent-of-price total and the
// price-independent flat total.
func splitTerms(schedule FeeSchedule, product types.Product, cfg types.ChannelConfig) (percentSum, flatSum decimal.Decimal) {
	percentSum = decimal.Zero
	flatSum = decimal.Zero
	for _, term := range schedule.Terms {
		value := cfg.FieldValue(term.Field)
		switch term.Kind {
		case enums.FeeTermPercentOfPrice:
			percentSum = percentSum.Add(value)
		case enums.FeeTermPercentOfCost:
			flatSum = flatSum.Add(money.Percent(product.BaseCost, value))
		case enums.FeeTermFixed, enums.FeeTermCostValue:
			flatSum = flatSum.Add(value)
		}
	}
	return percentSum, flatSum
}

func breakEvenPrice(schedule FeeSchedule, product types.Product, cfg types.ChannelConfig) (decimal.Decimal, error) {
	percentSum, flatSum := splitTerms(schedule, product, cfg)
	denominator := one.Sub(money.Fraction(percentSum))
	if denominator.Sign() <= 0 {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeInfeasibleChannel, "fee percentages consume the whole sale price").
			WithDetails(map[string]string{
				"channel_type":      cfg.ChannelType.String(),
				"fee_percent_total": percentSum.String(),
			})
	}
	breakEven := product.BaseCost.Add(flatSum).Div(denominator)
	return money.Round(breakEven), nil
}

func (c *Calculator) observe(ctx context.Context, start time.Time, err error) {
	c.metrics.ObserveDuration(operationName, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(operationName, string(pkgerrors.As(err).Code()))
		if c.logg != nil {
			c.logg.Error(ctx, "channel profitability evaluation failed", err)
		}
		return
	}
	c.metrics.IncSuccess(operationName)
}
