package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// DefaultTolerance bounds the identity check when none is configured.
var DefaultTolerance = decimal.NewFromFloat(0.01)

// Evaluation is one full derivation of statements from a driver set.
type Evaluation struct {
	Inputs  model.FinancialInputs
	Opening model.OpeningBalances
	Income  model.IncomeStatement
	Sheet   model.BalanceSheet

	// Imbalance is total assets minus total liabilities and equity.
	Imbalance decimal.Decimal
	Balanced  bool
}

// Evaluator derives statements and enforces the balance identity.
type Evaluator struct {
	tolerance decimal.Decimal
}

// NewEvaluator creates an Evaluator with the given identity tolerance.
func NewEvaluator(tolerance decimal.Decimal) *Evaluator {
	return &Evaluator{tolerance: tolerance}
}

// Evaluate derives the income statement and the closing balance sheet
// for one driver set. When the identity check fails the returned
// Evaluation is still fully populated, so callers can show the derived
// statements next to the error.
func (e *Evaluator) Evaluate(in model.FinancialInputs, opening model.OpeningBalances) (Evaluation, error) {
	if verrs := ValidateInputs(in); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return Evaluation{}, fmt.Errorf("invalid inputs: %s", strings.Join(msgs, "; "))
	}

	is := Compute(in)
	bs := Build(in, is, opening)

	ev := Evaluation{
		Inputs:    in,
		Opening:   opening,
		Income:    is,
		Sheet:     bs,
		Imbalance: bs.TotalAssets.Sub(bs.TotalLiabEquity),
	}
	if err := CheckIdentity(bs, e.tolerance); err != nil {
		return ev, err
	}
	ev.Balanced = true
	return ev, nil
}

// Comparison holds before and after evaluations over one shared set of
// opening balances, plus their line-by-line diff.
type Comparison struct {
	Before Evaluation
	After  Evaluation
	Diff   DiffReport
}

// Compare evaluates two driver sets against the same opening balances.
// The diff is populated whenever both statements could be derived, even
// if an identity check failed; the error then reports the first
// failure so callers can render the comparison and still fail loudly.
func (e *Evaluator) Compare(before, after model.FinancialInputs, opening model.OpeningBalances, thresholds Thresholds) (Comparison, error) {
	bev, berr := e.Evaluate(before, opening)
	aev, aerr := e.Evaluate(after, opening)

	cmp := Comparison{Before: bev, After: aev}
	if derived(berr) && derived(aerr) {
		cmp.Diff = Diff(bev, aev, thresholds)
	}

	if berr != nil {
		return cmp, fmt.Errorf("before scenario: %w", berr)
	}
	if aerr != nil {
		return cmp, fmt.Errorf("after scenario: %w", aerr)
	}
	return cmp, nil
}

// derived reports whether an Evaluate error still left usable
// statements behind. Identity failures do; input validation does not.
func derived(err error) bool {
	if err == nil {
		return true
	}
	var ub *UnbalancedError
	return errors.As(err, &ub)
}
