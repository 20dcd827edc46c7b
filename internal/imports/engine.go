package imports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/internal/fx"
	"github.com/ricardoalmeida/vendaflow-backend/internal/tax"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/logger"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/metrics"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/money"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/types"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/validate"
)

const operationName = "import_simulation"

// EngineParams configure the simulation engine. The tax resolver is
// required; logger and metrics are optional.
type EngineParams struct {
	TaxResolver  *tax.Resolver
	DefaultBasis enums.AllocationBasis
	Logger       *logger.Logger
	Metrics      *metrics.CalculationMetrics
}

// Engine orchestrates currency conversion, tax tier resolution and landed
// cost allocation over a full shipment. It holds no state across calls;
// every Calculate either returns a complete result or the first typed error
// unchanged.
type Engine struct {
	resolver     *tax.Resolver
	defaultBasis enums.AllocationBasis
	logg         *logger.Logger
	metrics      *metrics.CalculationMetrics
}

// NewEngine builds a simulation engine.
func NewEngine(params EngineParams) (*Engine, error) {
	if params.TaxResolver == nil {
		return nil, fmt.Errorf("tax resolver required")
	}
	basis := params.DefaultBasis
	if basis == "" {
		basis = enums.AllocationBasisByValue
	}
	if !basis.IsValid() {
		return nil, fmt.Errorf("invalid default allocation basis %q", basis)
	}
	return &Engine{
		resolver:     params.TaxResolver,
		defaultBasis: basis,
		logg:         params.Logger,
		metrics:      params.Metrics,
	}, nil
}

// Calculate runs the full landed-cost simulation.
func (e *Engine) Calculate(ctx context.Context, sim types.ImportSimulation) (*types.ImportCalculationResult, error) {
	start := time.Now()
	result, err := e.calculate(sim)
	e.observe(ctx, start, err)
	return result, err
}

func (e *Engine) calculate(sim types.ImportSimulation) (*types.ImportCalculationResult, error) {
	if err := validate.Struct(sim); err != nil {
		return nil, err
	}

	fobForeign := decimal.Zero
	for _, line := range sim.ProductLines {
		fobForeign = fobForeign.Add(line.UnitPriceForeign.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	fobLocal, err := fx.Convert(fobForeign, sim.FxRate)
	if err != nil {
		return nil, err
	}
	freightLocal, err := fx.Convert(sim.FreightForeign, sim.FxRate)
	if err != nil {
		return nil, err
	}

	cfrForeign := fobForeign.Add(sim.FreightForeign)
	cfrLocal := fobLocal.Add(freightLocal)

	tier, err := e.resolver.Resolve(sim.DeclaredTurnover)
	if err != nil {
		return nil, err
	}

	totalTaxes, err := sumTaxes(sim.Taxes, cfrLocal, fobLocal)
	if err != nil {
		return nil, err
	}

	totalExpenses := decimal.Zero
	for _, expense := range sim.AdditionalExpenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
	}

	totalLandedCost := money.Round(cfrLocal.Add(totalTaxes).Add(totalExpenses))

	basis, err := e.allocationBasis(sim)
	if err != nil {
		return nil, err
	}
	allocations, err := Allocate(totalLandedCost, sim.ProductLines, basis)
	if err != nil {
		return nil, err
	}

	lineCosts := make([]types.LineCost, len(sim.ProductLines))
	for i, line := range sim.ProductLines {
		unitCost := allocations[i].Div(decimal.NewFromInt(int64(line.Quantity)))
		lineCosts[i] = types.LineCost{
			SKU:           line.SKU,
			AllocatedCost: allocations[i],
			UnitCost:      money.Round(unitCost),
		}
	}

	return &types.ImportCalculationResult{
		FobForeign:            money.Round(fobForeign),
		FobLocal:              money.Round(fobLocal),
		FreightForeign:        money.Round(sim.FreightForeign),
		FreightLocal:          money.Round(freightLocal),
		CfrForeign:            money.Round(cfrForeign),
		CfrLocal:              money.Round(cfrLocal),
		TotalTaxes:            money.Round(totalTaxes),
		TotalExpenses:         money.Round(totalExpenses),
		TotalLandedCost:       totalLandedCost,
		EffectiveTaxRate:      tier.EffectiveRate,
		SubstitutionReduction: tier.SubstitutionReduction,
		LineCosts:             lineCosts,
	}, nil
}

func sumTaxes(taxes []types.TaxCharge, cfrLocal, fobLocal decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, charge := range taxes {
		switch charge.Base {
		case enums.TaxBaseCFR:
			total = total.Add(money.Percent(cfrLocal, charge.RatePercent))
		case enums.TaxBaseFOB:
			total = total.Add(money.Percent(fobLocal, charge.RatePercent))
		case enums.TaxBaseFixed:
			total = total.Add(charge.Amount)
		default:
			return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeInvalidInput, "unknown tax charge base").
				WithDetails(map[string]string{"name": charge.Name, "base": charge.Base.String()})
		}
	}
	return total, nil
}

func (e *Engine) allocationBasis(sim types.ImportSimulation) (enums.AllocationBasis, error) {
	if sim.AllocationBasis == "" {
		return e.defaultBasis, nil
	}
	if !sim.AllocationBasis.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeInvalidInput, "unknown allocation basis").
			WithDetails(map[string]string{"basis": sim.AllocationBasis.String()})
	}
	return sim.AllocationBasis, nil
}

func (e *Engine) observe(ctx context.Context, start time.Time, err error) {
	e.metrics.ObserveDuration(operationName, time.Since(start))
	if err != nil {
		e.metrics.IncFailure(operationName, string(pkgerrors.As(err).Code()))
		if e.logg != nil {
			e.logg.Error(ctx, "import simulation failed", err)
		}
		return
	}
	e.metrics.IncSuccess(operationName)
}
