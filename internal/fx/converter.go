package fx

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/ricardoalmeida/vendaflow-backend/pkg/errors"
)

// Convert turns a foreign-currency amount into local currency at the
// simulation-fixed rate. Full precision is retained; rounding is the
// caller's concern.
func Convert(amountForeign, fxRate decimal.Decimal) (decimal.Decimal, error) {
	if fxRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeInvalidInput, "fx rate must be positive").
			WithDetails(map[string]string{"fx_rate": fxRate.String()})
	}
	return amountForeign.Mul(fxRate), nil
}
