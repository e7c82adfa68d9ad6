package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma-dev/proforma/internal/scenario"
)

func TestCompute_BuiltinDefaults(t *testing.T) {
	out, err := runProforma(t, "compute", "--dir", t.TempDir(), "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "INCOME STATEMENT")
	assert.Contains(t, out, "BALANCE SHEET")
	assert.Contains(t, out, "35,250.00")
	assert.Contains(t, out, "Balanced: assets 480,000.00 = liabilities + equity 480,000.00")
}

func TestCompute_WorkspaceBaseline(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runProforma(t, "compute", "--dir", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "35,250.00")
}

func TestCompute_NamedScenario(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runProforma(t, "compute", "--dir", dir, "--scenario", "stressed", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "27,750.00")
	assert.Contains(t, out, "390,000.00")
}

func TestCompute_SetOverride(t *testing.T) {
	out, err := runProforma(t, "compute", "--dir", t.TempDir(),
		"--set", "provision_expense=10000", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "27,750.00")
}

func TestCompute_UnknownDriver(t *testing.T) {
	_, err := runProforma(t, "compute", "--dir", t.TempDir(), "--set", "margin=5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "margin"`)
	assert.Contains(t, err.Error(), "provision_expense")
}

func TestCompute_BadOverride(t *testing.T) {
	_, err := runProforma(t, "compute", "--dir", t.TempDir(), "--set", "provision_expense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want driver=value")
}

func TestCompute_JSON(t *testing.T) {
	out, err := runProforma(t, "compute", "--dir", t.TempDir(), "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"net_income": "35250.00"`)
	assert.Contains(t, out, `"total_assets": "480000.00"`)
	assert.Contains(t, out, `"balanced": true`)
}

func TestCompute_UnknownFormat(t *testing.T) {
	_, err := runProforma(t, "compute", "--dir", t.TempDir(), "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}

func TestCompute_UnbalancedScenario(t *testing.T) {
	dir := t.TempDir()
	loss := scenario.Default()
	loss.Name = "loss"
	loss.Inputs.Revenue = decimal.NewFromInt(10000)
	loss.Inputs.COGS = decimal.NewFromInt(40000)
	loss.Inputs.Opex = decimal.NewFromInt(5000)
	loss.Inputs.InterestExpense = decimal.NewFromInt(1000)
	_, err := scenario.NewStore(dir).Save(loss)
	require.NoError(t, err)

	out, err := runProforma(t, "compute", "--dir", dir, "--scenario", "loss", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of balance")

	// Statements still render so the imbalance can be inspected.
	assert.Contains(t, out, "OUT OF BALANCE")
	assert.Contains(t, out, "-27,000.00")
}

func TestCompute_MissingScenario(t *testing.T) {
	_, err := runProforma(t, "compute", "--dir", t.TempDir(), "--scenario", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
