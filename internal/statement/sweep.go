package statement

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// ErrUnknownDriver reports a sweep or override against a driver key
// that does not exist.
var ErrUnknownDriver = errors.New("unknown driver")

// Step is one sweep evaluation at a single driver value.
type Step struct {
	Value  decimal.Decimal
	Result Evaluation
}

// Sweep evaluates the driver set once per value of the named driver,
// from "from" to "to" inclusive in increments of "step", all against
// the same opening balances. On an identity failure it returns the
// steps completed so far together with the error, so callers can
// report how far the sweep got before the driver set went incoherent.
func (e *Evaluator) Sweep(in model.FinancialInputs, opening model.OpeningBalances, key model.DriverKey, from, to, step decimal.Decimal) ([]Step, error) {
	if _, ok := in.Driver(key); !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, key)
	}
	if step.Sign() <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %s", step)
	}
	if from.GreaterThan(to) {
		return nil, fmt.Errorf("sweep range is empty: from %s > to %s", from, to)
	}

	var steps []Step
	for v := from; !v.GreaterThan(to); v = v.Add(step) {
		stepIn := in
		stepIn.Set(key, v)
		ev, err := e.Evaluate(stepIn, opening)
		if err != nil {
			return steps, fmt.Errorf("%s = %s: %w", key, v, err)
		}
		steps = append(steps, Step{Value: v, Result: ev})
	}
	return steps, nil
}
