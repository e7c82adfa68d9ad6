package model

import "github.com/shopspring/decimal"

// TaxPolicy selects how tax is derived from pre-tax earnings.
type TaxPolicy string

const (
	// TaxSymmetric books ebt * rate, producing a tax credit on a loss.
	TaxSymmetric TaxPolicy = "symmetric"
	// TaxFloor books max(ebt, 0) * rate, never a credit.
	TaxFloor TaxPolicy = "floor"
)

// Valid reports whether the policy is a known value.
func (p TaxPolicy) Valid() bool {
	return p == TaxSymmetric || p == TaxFloor
}

// FinancialInputs is the complete driver set for one evaluation: the
// income statement drivers plus the static balance sheet positions.
type FinancialInputs struct {
	Revenue          decimal.Decimal
	COGS             decimal.Decimal // funding cost / cost of goods sold
	Opex             decimal.Decimal
	InterestExpense  decimal.Decimal
	ProvisionExpense decimal.Decimal
	TaxRate          decimal.Decimal // fraction in [0, 1]
	TaxPolicy        TaxPolicy

	Cash         decimal.Decimal
	GrossLoans   decimal.Decimal
	PPE          decimal.Decimal
	Inventory    decimal.Decimal // zero for pure banking scenarios
	Deposits     decimal.Decimal
	Debt         decimal.Decimal
	ShareCapital decimal.Decimal
}

// OpeningBalances holds the cumulative accounts that period flows land
// on. Zero values mean a balance sheet with no prior activity. Passed
// explicitly so before/after evaluations can share one set.
type OpeningBalances struct {
	Allowance        decimal.Decimal
	InterestPayable  decimal.Decimal
	TaxPayable       decimal.Decimal
	RetainedEarnings decimal.Decimal
}
