package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma-dev/proforma/internal/model"
	"github.com/proforma-dev/proforma/internal/statement"
)

func TestNewEvaluationJSON(t *testing.T) {
	ev := bankEval(t, "0")
	data, err := json.Marshal(NewEvaluationJSON(ev))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"net_income":"35250.00"`)
	assert.Contains(t, out, `"total_assets":"480000.00"`)
	assert.Contains(t, out, `"tax_policy":"symmetric"`)
	assert.Contains(t, out, `"balanced":true`)
	assert.Contains(t, out, `"imbalance":"0.00"`)
}

func TestNewComparisonJSON(t *testing.T) {
	before := bankEval(t, "0")
	after := bankEval(t, "10000")
	cmp := statement.Comparison{
		Before: before,
		After:  after,
		Diff:   statement.Diff(before, after, statement.Thresholds{}),
	}

	out := NewComparisonJSON(cmp)
	require.Len(t, out.Diff.Income, len(model.IncomeLines()))
	require.Len(t, out.Diff.Balance, len(model.BalanceLines()))

	var provision DeltaJSON
	for _, d := range out.Diff.Income {
		if d.Key == "provision_expense" {
			provision = d
		}
	}
	assert.Equal(t, "0.00", provision.Before)
	assert.Equal(t, "10000.00", provision.After)
	assert.Equal(t, "10000.00", provision.Delta)
	assert.True(t, provision.Changed)
}

func TestNewSweepJSON(t *testing.T) {
	steps, err := statement.NewEvaluator(statement.DefaultTolerance).Sweep(
		bankEval(t, "0").Inputs, model.OpeningBalances{},
		model.DriverProvisionExpense, decimal.Zero, dec("10000"), dec("10000"))
	require.NoError(t, err)

	out := NewSweepJSON(model.DriverProvisionExpense, steps)
	assert.Equal(t, "provision_expense", out.Driver)
	require.Len(t, out.Steps, 2)
	assert.Equal(t, "35250.00", out.Steps[0].NetIncome)
	assert.Equal(t, "27750.00", out.Steps[1].NetIncome)
}

func TestWriteSweepCSV(t *testing.T) {
	steps, err := statement.NewEvaluator(statement.DefaultTolerance).Sweep(
		bankEval(t, "0").Inputs, model.OpeningBalances{},
		model.DriverProvisionExpense, decimal.Zero, dec("10000"), dec("10000"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSweepCSV(&buf, model.DriverProvisionExpense, steps))

	want := "provision_expense,ebt,tax,net_income,net_loans,total_assets,total_liab_equity\n" +
		"0.00,47000.00,11750.00,35250.00,400000.00,480000.00,480000.00\n" +
		"10000.00,37000.00,9250.00,27750.00,390000.00,470000.00,470000.00\n"
	assert.Equal(t, want, buf.String())
}
