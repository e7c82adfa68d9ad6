package statement

import (
	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// LineDelta is one row of a before/after comparison.
type LineDelta struct {
	Key     model.LineKey
	Label   string
	Section model.Section
	Before  decimal.Decimal
	After   decimal.Decimal
	Delta   decimal.Decimal
	Changed bool
	Flagged bool
}

// Thresholds flags deltas that exceed an absolute amount or a percent
// of the before value. Nil bounds are not applied. Unchanged rows are
// never flagged.
type Thresholds struct {
	Amount  *decimal.Decimal
	Percent *decimal.Decimal
}

// DiffReport is the structural comparison of two evaluations of the
// same shape, line by line in statement order.
type DiffReport struct {
	Income  []LineDelta
	Balance []LineDelta
}

// Diff compares two evaluations. Rows are keyed so a presentation
// layer can highlight movement without matching on display labels.
func Diff(before, after Evaluation, t Thresholds) DiffReport {
	var rep DiffReport
	for _, line := range model.IncomeLines() {
		b, _ := before.Income.Value(line.Key)
		a, _ := after.Income.Value(line.Key)
		rep.Income = append(rep.Income, newDelta(line, b, a, t))
	}
	for _, line := range model.BalanceLines() {
		b, _ := before.Sheet.Value(line.Key)
		a, _ := after.Sheet.Value(line.Key)
		rep.Balance = append(rep.Balance, newDelta(line, b, a, t))
	}
	return rep
}

// Changed returns the rows whose values moved, across both statements.
func (r DiffReport) Changed() []LineDelta {
	var rows []LineDelta
	for _, d := range r.Income {
		if d.Changed {
			rows = append(rows, d)
		}
	}
	for _, d := range r.Balance {
		if d.Changed {
			rows = append(rows, d)
		}
	}
	return rows
}

// Flagged returns the rows whose movement exceeds a threshold.
func (r DiffReport) Flagged() []LineDelta {
	var rows []LineDelta
	for _, d := range append(r.Income, r.Balance...) {
		if d.Flagged {
			rows = append(rows, d)
		}
	}
	return rows
}

func newDelta(line model.Line, before, after decimal.Decimal, t Thresholds) LineDelta {
	delta := after.Sub(before)
	d := LineDelta{
		Key:     line.Key,
		Label:   line.Label,
		Section: line.Section,
		Before:  before,
		After:   after,
		Delta:   delta,
		Changed: !delta.IsZero(),
	}
	d.Flagged = d.Changed && exceedsThreshold(d, t)
	return d
}

func exceedsThreshold(d LineDelta, t Thresholds) bool {
	if t.Amount != nil && d.Delta.Abs().GreaterThanOrEqual(*t.Amount) {
		return true
	}
	if t.Percent != nil && !d.Before.IsZero() {
		pct := d.Delta.Div(d.Before.Abs()).Mul(decimal.NewFromInt(100))
		if pct.Abs().GreaterThanOrEqual(*t.Percent) {
			return true
		}
	}
	return false
}
