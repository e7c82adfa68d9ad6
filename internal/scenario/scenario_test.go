package scenario

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma-dev/proforma/internal/model"
)

const validYAML = `name: baseline
description: Reference bank
drivers:
  revenue: 120000
  cogs: 45000
  opex: 25000
  interest_expense: 3000
  provision_expense: 0
  tax_rate: 0.25
  tax_policy: symmetric
  cash: 50000
  gross_loans: 400000
  ppe: 30000
  inventory: 0
  deposits: 300000
  debt: 80000
  share_capital: 50000
opening:
  allowance: 0
  interest_payable: 0
  tax_payable: 0
  retained_earnings: 0
`

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func assertSameScenario(t *testing.T, want, got Scenario) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Inputs.TaxPolicy, got.Inputs.TaxPolicy)
	for _, key := range model.Drivers() {
		w, _ := want.Inputs.Driver(key)
		g, _ := got.Inputs.Driver(key)
		assert.True(t, w.Equal(g), "%s: got %s want %s", key, g, w)
	}
	assert.True(t, want.Opening.Allowance.Equal(got.Opening.Allowance), "opening allowance")
	assert.True(t, want.Opening.InterestPayable.Equal(got.Opening.InterestPayable), "opening interest payable")
	assert.True(t, want.Opening.TaxPayable.Equal(got.Opening.TaxPayable), "opening tax payable")
	assert.True(t, want.Opening.RetainedEarnings.Equal(got.Opening.RetainedEarnings), "opening retained earnings")
}

func TestDecode_Valid(t *testing.T) {
	sc, err := Decode(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "baseline", sc.Name)
	assert.Equal(t, "Reference bank", sc.Description)
	assert.Equal(t, model.TaxSymmetric, sc.Inputs.TaxPolicy)
	assert.True(t, sc.Inputs.Revenue.Equal(dec("120000")))
	assert.True(t, sc.Inputs.TaxRate.Equal(dec("0.25")))
	assert.True(t, sc.Inputs.Debt.Equal(dec("80000")))
	assert.True(t, sc.Opening.RetainedEarnings.IsZero())
}

func TestDecode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Stressed()))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assertSameScenario(t, Stressed(), got)
}

func TestDecode_MissingDriver(t *testing.T) {
	doc := strings.Replace(validYAML, "  revenue: 120000\n", "", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Contains(t, err.Error(), "drivers.revenue")
}

func TestDecode_MissingOpening(t *testing.T) {
	doc := strings.Replace(validYAML, "  tax_payable: 0\n", "", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening.tax_payable")
}

func TestDecode_MissingTaxPolicy(t *testing.T) {
	doc := strings.Replace(validYAML, "  tax_policy: symmetric\n", "", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drivers.tax_policy")
}

func TestDecode_CollectsAllMissingFields(t *testing.T) {
	doc := strings.Replace(validYAML, "  revenue: 120000\n", "", 1)
	doc = strings.Replace(doc, "  cogs: 45000\n", "", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drivers.revenue")
	assert.Contains(t, err.Error(), "drivers.cogs")
}

func TestDecode_UnknownField(t *testing.T) {
	doc := strings.Replace(validYAML, "  revenue: 120000\n", "  revenue: 120000\n  margin: 5\n", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "margin")
}

func TestDecode_NonFinite(t *testing.T) {
	doc := strings.Replace(validYAML, "revenue: 120000", "revenue: .inf", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-finite")
	assert.Contains(t, err.Error(), "drivers.revenue")
}

func TestDecode_UnknownPolicy(t *testing.T) {
	doc := strings.Replace(validYAML, "tax_policy: symmetric", "tax_policy: aggressive", 1)
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggressive")
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty scenario document")
}

func TestEncode_NamesEveryField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	out := buf.String()
	assert.Contains(t, out, "name: baseline")
	assert.Contains(t, out, "tax_policy: symmetric")
	assert.Contains(t, out, "gross_loans:")
	assert.Contains(t, out, "retained_earnings:")
}
