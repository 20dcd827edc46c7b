package imports

import (
	"github.com/shopspring/decimal"

	"github.com/ricardoalmeida/vendaflow-backend/pkg/enums"
	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/money"
	"github.com/ricardoalmeida/vendaflow-backend/pkg/types"
)

// Allocate distributes a shipment-level cost across product lines in
// proportion to the chosen basis. Every allocation except the last is
// truncated to cents; the last line in input order absorbs the residual, so
// the vector sums back to totalCost exactly. Input order is therefore part
// of the contract.
func Allocate(totalCost decimal.Decimal, lines []types.ProductLine, basis enums.AllocationBasis) ([]decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyShipment, "no product lines to allocate against")
	}

	weights := make([]decimal.Decimal, len(lines))
	totalWeight := decimal.Zero
	for i, line := range lines {
		weight, err := lineWeight(line, basis)
		if err != nil {
			return nil, err
		}
		weights[i] = weight
		totalWeight = totalWeight.Add(weight)
	}
	if totalWeight.Sign() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyShipment, "allocation basis weighs zero across all lines").
			WithDetails(map[string]string{"basis": basis.String()})
	}

	allocations := make([]decimal.Decimal, len(lines))
	allocated := decimal.Zero
	for i := range lines {
		if i == len(lines)-1 {
			allocations[i] = totalCost.Sub(allocated)
			break
		}
		share := money.Truncate(totalCost.Mul(weights[i]).Div(totalWeight))
		allocations[i] = share
		allocated = allocated.Add(share)
	}
	return allocations, nil
}

func lineWeight(line types.ProductLine, basis enums.AllocationBasis) (decimal.Decimal, error) {
	quantity := decimal.NewFromInt(int64(line.Quantity))
	switch basis {
	case enums.AllocationBasisByValue:
		return line.UnitPriceForeign.Mul(quantity), nil
	case enums.AllocationBasisByWeight:
		return line.WeightKg.Mul(quantity), nil
	case enums.AllocationBasisByQuantity:
		return quantity, nil
	}
	return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeInvalidInput, "unknown allocation basis").
		WithDetails(map[string]string{"basis": basis.String()})
}
