package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/proforma-dev/proforma/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// bankInputs returns the reference driver set: a small bank earning
// 120k of interest and fee income against a 480k balance sheet.
func bankInputs() model.FinancialInputs {
	return model.FinancialInputs{
		Revenue:          dec("120000"),
		COGS:             dec("45000"),
		Opex:             dec("25000"),
		InterestExpense:  dec("3000"),
		ProvisionExpense: decimal.Zero,
		TaxRate:          dec("0.25"),
		TaxPolicy:        model.TaxSymmetric,
		Cash:             dec("50000"),
		GrossLoans:       dec("400000"),
		PPE:              dec("30000"),
		Inventory:        decimal.Zero,
		Deposits:         dec("300000"),
		Debt:             dec("80000"),
		ShareCapital:     dec("50000"),
	}
}

// lossInputs returns a loss-making quarter: costs exceed revenue so
// ebt is negative.
func lossInputs() model.FinancialInputs {
	in := bankInputs()
	in.Revenue = dec("10000")
	in.COGS = dec("40000")
	in.Opex = dec("5000")
	in.InterestExpense = dec("1000")
	return in
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, name string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: got %s want %s", name, got, want)
}

func TestCompute_Baseline(t *testing.T) {
	is := Compute(bankInputs())

	assertDecimal(t, "75000", is.NetInterestIncome, "net interest income")
	assertDecimal(t, "50000", is.OperatingIncome, "operating income")
	assertDecimal(t, "47000", is.EBT, "ebt")
	assertDecimal(t, "11750", is.Tax, "tax")
	assertDecimal(t, "35250", is.NetIncome, "net income")
}

func TestCompute_WithProvision(t *testing.T) {
	in := bankInputs()
	in.ProvisionExpense = dec("10000")
	is := Compute(in)

	assertDecimal(t, "75000", is.NetInterestIncome, "net interest income")
	assertDecimal(t, "40000", is.OperatingIncome, "operating income")
	assertDecimal(t, "37000", is.EBT, "ebt")
	assertDecimal(t, "9250", is.Tax, "tax")
	assertDecimal(t, "27750", is.NetIncome, "net income")
}

func TestCompute_LossSymmetricTax(t *testing.T) {
	// A loss produces a tax credit under the symmetric policy.
	is := Compute(lossInputs())

	assertDecimal(t, "-30000", is.NetInterestIncome, "net interest income")
	assertDecimal(t, "-36000", is.EBT, "ebt")
	assertDecimal(t, "-9000", is.Tax, "tax")
	assertDecimal(t, "-27000", is.NetIncome, "net income")
}

func TestCompute_LossFloorTax(t *testing.T) {
	in := lossInputs()
	in.TaxPolicy = model.TaxFloor
	is := Compute(in)

	assertDecimal(t, "-36000", is.EBT, "ebt")
	assertDecimal(t, "0", is.Tax, "tax")
	assertDecimal(t, "-36000", is.NetIncome, "net income")
}

func TestCompute_FloorMatchesSymmetricOnProfit(t *testing.T) {
	symmetric := Compute(bankInputs())

	in := bankInputs()
	in.TaxPolicy = model.TaxFloor
	floor := Compute(in)

	assert.True(t, symmetric.Tax.Equal(floor.Tax), "policies diverge only on losses")
	assert.True(t, symmetric.NetIncome.Equal(floor.NetIncome))
}

func TestCompute_ZeroRate(t *testing.T) {
	in := bankInputs()
	in.TaxRate = decimal.Zero
	is := Compute(in)

	assertDecimal(t, "0", is.Tax, "tax")
	assert.True(t, is.NetIncome.Equal(is.EBT), "net income equals ebt at zero rate")
}

func TestCompute_EchoesDrivers(t *testing.T) {
	in := bankInputs()
	is := Compute(in)

	assert.True(t, is.Revenue.Equal(in.Revenue))
	assert.True(t, is.COGS.Equal(in.COGS))
	assert.True(t, is.Opex.Equal(in.Opex))
	assert.True(t, is.InterestExpense.Equal(in.InterestExpense))
	assert.True(t, is.ProvisionExpense.Equal(in.ProvisionExpense))
	assert.Equal(t, model.TaxSymmetric, is.TaxPolicy)
}

func TestCompute_ExactDecimals(t *testing.T) {
	// 0.1 + 0.2 style inputs stay exact under decimal arithmetic.
	in := bankInputs()
	in.Revenue = dec("0.1").Add(dec("0.2"))
	in.COGS = dec("0.3")
	in.Opex = decimal.Zero
	in.InterestExpense = decimal.Zero
	is := Compute(in)

	assert.True(t, is.NetInterestIncome.IsZero(), "0.3 - 0.3 must be exactly zero, got %s", is.NetInterestIncome)
}
