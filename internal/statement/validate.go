package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// ValidationError describes a single driver violation.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateInputs checks the driver set before evaluation.
func ValidateInputs(in model.FinancialInputs) []ValidationError {
	var errs []ValidationError

	if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, ValidationError{
			Field:       "tax_rate",
			Description: fmt.Sprintf("must be a fraction in [0, 1], got %s", in.TaxRate),
		})
	}
	if !in.TaxPolicy.Valid() {
		errs = append(errs, ValidationError{
			Field:       "tax_policy",
			Description: fmt.Sprintf("unknown policy %q (want %q or %q)", in.TaxPolicy, model.TaxSymmetric, model.TaxFloor),
		})
	}

	return errs
}

// UnbalancedError reports a failed balance identity check. It means the
// driver and opening set is incoherent: a flow moved with no matching
// position move. The sheet is reported as derived, never adjusted to
// compensate.
type UnbalancedError struct {
	Assets     decimal.Decimal
	LiabEquity decimal.Decimal
	Tolerance  decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("balance sheet out of balance: assets %s vs liabilities+equity %s (difference %s, tolerance %s)",
		e.Assets.StringFixed(2), e.LiabEquity.StringFixed(2),
		e.Assets.Sub(e.LiabEquity).StringFixed(2), e.Tolerance.String())
}

// CheckIdentity verifies that total assets equal total liabilities plus
// equity within tolerance.
func CheckIdentity(sheet model.BalanceSheet, tolerance decimal.Decimal) error {
	diff := sheet.TotalAssets.Sub(sheet.TotalLiabEquity)
	if diff.Abs().GreaterThan(tolerance) {
		return &UnbalancedError{
			Assets:     sheet.TotalAssets,
			LiabEquity: sheet.TotalLiabEquity,
			Tolerance:  tolerance,
		}
	}
	return nil
}
