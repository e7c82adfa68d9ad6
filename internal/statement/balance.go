package statement

import "github.com/proforma-dev/proforma/internal/model"

// Build assembles the closing balance sheet. Each P&L flow lands on its
// cumulative account on top of the opening balance: the provision on
// the loan loss allowance, interest expense on accrued interest
// payable, tax on accrued tax payable, and net income on retained
// earnings. Every other position is carried from the drivers unchanged.
// Closing is always opening plus this scenario's own period flow,
// identically for a before and an after evaluation.
func Build(in model.FinancialInputs, is model.IncomeStatement, opening model.OpeningBalances) model.BalanceSheet {
	allowance := opening.Allowance.Add(is.ProvisionExpense)
	interestPayable := opening.InterestPayable.Add(is.InterestExpense)
	taxPayable := opening.TaxPayable.Add(is.Tax)
	retained := opening.RetainedEarnings.Add(is.NetIncome)

	// Net loans may go negative when the cumulative allowance exceeds
	// the loan book; it is never clamped.
	netLoans := in.GrossLoans.Sub(allowance)

	totalAssets := in.Cash.Add(netLoans).Add(in.PPE).Add(in.Inventory)
	totalLiabilities := in.Deposits.Add(in.Debt).Add(interestPayable).Add(taxPayable)
	totalEquity := in.ShareCapital.Add(retained)

	return model.BalanceSheet{
		Cash:        in.Cash,
		GrossLoans:  in.GrossLoans,
		Allowance:   allowance,
		NetLoans:    netLoans,
		PPE:         in.PPE,
		Inventory:   in.Inventory,
		TotalAssets: totalAssets,

		Deposits:         in.Deposits,
		Debt:             in.Debt,
		InterestPayable:  interestPayable,
		TaxPayable:       taxPayable,
		TotalLiabilities: totalLiabilities,

		ShareCapital:     in.ShareCapital,
		RetainedEarnings: retained,
		TotalEquity:      totalEquity,
		TotalLiabEquity:  totalLiabilities.Add(totalEquity),
	}
}
