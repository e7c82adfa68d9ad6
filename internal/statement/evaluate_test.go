package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma-dev/proforma/internal/model"
)

func TestEvaluate_Balanced(t *testing.T) {
	ev, err := NewEvaluator(DefaultTolerance).Evaluate(bankInputs(), model.OpeningBalances{})
	require.NoError(t, err)

	assert.True(t, ev.Balanced)
	assert.True(t, ev.Imbalance.IsZero(), "imbalance: got %s", ev.Imbalance)
	assertDecimal(t, "47000", ev.Income.EBT, "ebt")
	assertDecimal(t, "480000", ev.Sheet.TotalAssets, "total assets")
}

func TestEvaluate_UnbalancedStillPopulated(t *testing.T) {
	// A loss quarter against openings that do not fund it: the sheet
	// must be derived and reported next to the loud error.
	ev, err := NewEvaluator(DefaultTolerance).Evaluate(lossInputs(), model.OpeningBalances{})
	require.Error(t, err)

	var ub *UnbalancedError
	require.ErrorAs(t, err, &ub)

	assert.False(t, ev.Balanced)
	assertDecimal(t, "85000", ev.Imbalance, "imbalance")
	assertDecimal(t, "480000", ev.Sheet.TotalAssets, "total assets")
	assertDecimal(t, "395000", ev.Sheet.TotalLiabEquity, "total liabilities + equity")
}

func TestEvaluate_LossFundedByOpeningRetainedEarnings(t *testing.T) {
	// The same loss quarter balances once opening retained earnings
	// carry the surplus the statics imply.
	opening := model.OpeningBalances{RetainedEarnings: dec("85000")}
	ev, err := NewEvaluator(DefaultTolerance).Evaluate(lossInputs(), opening)
	require.NoError(t, err)

	assert.True(t, ev.Balanced)
	assertDecimal(t, "-27000", ev.Income.NetIncome, "net income")
	assertDecimal(t, "58000", ev.Sheet.RetainedEarnings, "retained earnings")
	assertDecimal(t, "480000", ev.Sheet.TotalLiabEquity, "total liabilities + equity")
}

func TestEvaluate_InvalidInputs(t *testing.T) {
	in := bankInputs()
	in.TaxRate = dec("3")

	_, err := NewEvaluator(DefaultTolerance).Evaluate(in, model.OpeningBalances{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid inputs")
	assert.Contains(t, err.Error(), "tax_rate")
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := NewEvaluator(DefaultTolerance)
	opening := model.OpeningBalances{Allowance: dec("2500")}

	first, err1 := e.Evaluate(bankInputs(), opening)
	second, err2 := e.Evaluate(bankInputs(), opening)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "identical inputs must produce identical evaluations")
}

func TestEvaluate_ProvisionMonotonicity(t *testing.T) {
	// Raising the provision by d lowers net income by d*(1-rate) and
	// net loans by d, exactly.
	e := NewEvaluator(DefaultTolerance)
	base, err := e.Evaluate(bankInputs(), model.OpeningBalances{})
	require.NoError(t, err)

	delta := dec("10000")
	in := bankInputs()
	in.ProvisionExpense = in.ProvisionExpense.Add(delta)
	bumped, err := e.Evaluate(in, model.OpeningBalances{})
	require.NoError(t, err)

	wantDrop := delta.Mul(dec("1").Sub(in.TaxRate))
	niDrop := base.Income.NetIncome.Sub(bumped.Income.NetIncome)
	assert.True(t, niDrop.Equal(wantDrop), "net income drop: got %s want %s", niDrop, wantDrop)

	loanDrop := base.Sheet.NetLoans.Sub(bumped.Sheet.NetLoans)
	assert.True(t, loanDrop.Equal(delta), "net loans drop: got %s want %s", loanDrop, delta)
}

func TestEvaluate_InterestSweepKeepsIdentity(t *testing.T) {
	// Interest expense routes to accrued interest payable, so moving it
	// alone keeps the sheet balanced.
	e := NewEvaluator(DefaultTolerance)
	in := bankInputs()
	in.InterestExpense = dec("9000")

	ev, err := e.Evaluate(in, model.OpeningBalances{})
	require.NoError(t, err)
	assert.True(t, ev.Balanced)
	assertDecimal(t, "9000", ev.Sheet.InterestPayable, "interest payable")
}

func TestCompare_SharedOpenings(t *testing.T) {
	e := NewEvaluator(DefaultTolerance)
	opening := model.OpeningBalances{Allowance: dec("1000"), RetainedEarnings: dec("-1000")}

	after := bankInputs()
	after.ProvisionExpense = dec("10000")

	cmp, err := e.Compare(bankInputs(), after, opening, Thresholds{})
	require.NoError(t, err)

	assert.Equal(t, opening, cmp.Before.Opening)
	assert.Equal(t, opening, cmp.After.Opening)
	assertDecimal(t, "1000", cmp.Before.Sheet.Allowance, "before allowance")
	assertDecimal(t, "11000", cmp.After.Sheet.Allowance, "after allowance")
}

func TestCompare_DiffPopulated(t *testing.T) {
	e := NewEvaluator(DefaultTolerance)
	after := bankInputs()
	after.ProvisionExpense = dec("10000")

	cmp, err := e.Compare(bankInputs(), after, model.OpeningBalances{}, Thresholds{})
	require.NoError(t, err)
	require.NotEmpty(t, cmp.Diff.Income)
	require.NotEmpty(t, cmp.Diff.Balance)

	changed := make(map[model.LineKey]bool)
	for _, d := range cmp.Diff.Changed() {
		changed[d.Key] = true
	}
	wantChanged := []model.LineKey{
		model.LineProvisionExpense, model.LineOperatingIncome, model.LineEBT,
		model.LineTax, model.LineNetIncome,
		model.LineAllowance, model.LineNetLoans, model.LineTotalAssets,
		model.LineTaxPayable, model.LineTotalLiabilities,
		model.LineRetainedEarnings, model.LineTotalEquity, model.LineTotalLiabEquity,
	}
	assert.Len(t, changed, len(wantChanged))
	for _, key := range wantChanged {
		assert.True(t, changed[key], "line %q should be marked changed", key)
	}
}

func TestCompare_AfterUnbalanced(t *testing.T) {
	// Bumping revenue with no position move breaks the after identity.
	// The comparison still carries both derived evaluations.
	e := NewEvaluator(DefaultTolerance)
	after := bankInputs()
	after.Revenue = dec("130000")

	cmp, err := e.Compare(bankInputs(), after, model.OpeningBalances{}, Thresholds{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after scenario")

	var ub *UnbalancedError
	assert.ErrorAs(t, err, &ub)
	assert.True(t, cmp.Before.Balanced)
	assert.False(t, cmp.After.Balanced)
	assert.NotEmpty(t, cmp.Diff.Income, "diff still populated for derived statements")
}

func TestCompare_BeforeInvalid(t *testing.T) {
	e := NewEvaluator(DefaultTolerance)
	before := bankInputs()
	before.TaxPolicy = "bogus"

	cmp, err := e.Compare(before, bankInputs(), model.OpeningBalances{}, Thresholds{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before scenario")
	assert.Empty(t, cmp.Diff.Income, "no diff when a statement could not be derived")
}
