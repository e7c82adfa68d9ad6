// Package statement derives income statements and balance sheets from a
// driver set and compares evaluations as drivers change.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// Compute derives the income statement from the drivers. The formula
// order is fixed: funding cost first, then operating charges and the
// provision, then borrowing interest, then tax under the selected
// policy. Total over all finite inputs; there are no error cases.
func Compute(in model.FinancialInputs) model.IncomeStatement {
	nii := in.Revenue.Sub(in.COGS)
	operating := nii.Sub(in.Opex).Sub(in.ProvisionExpense)
	ebt := operating.Sub(in.InterestExpense)
	tax := taxOn(ebt, in.TaxRate, in.TaxPolicy)

	return model.IncomeStatement{
		Revenue:           in.Revenue,
		COGS:              in.COGS,
		NetInterestIncome: nii,
		Opex:              in.Opex,
		ProvisionExpense:  in.ProvisionExpense,
		OperatingIncome:   operating,
		InterestExpense:   in.InterestExpense,
		EBT:               ebt,
		Tax:               tax,
		NetIncome:         ebt.Sub(tax),
		TaxPolicy:         in.TaxPolicy,
	}
}

// taxOn applies the tax policy to pre-tax earnings. TaxFloor clamps the
// base at zero so a loss never produces a credit.
func taxOn(ebt, rate decimal.Decimal, policy model.TaxPolicy) decimal.Decimal {
	if policy == model.TaxFloor && ebt.IsNegative() {
		return decimal.Zero
	}
	return ebt.Mul(rate)
}
