package model

import "github.com/shopspring/decimal"

// IncomeStatement is the derived P&L for one evaluation. It echoes the
// drivers it consumed so a statement can be read on its own.
type IncomeStatement struct {
	Revenue           decimal.Decimal
	COGS              decimal.Decimal
	NetInterestIncome decimal.Decimal
	Opex              decimal.Decimal
	ProvisionExpense  decimal.Decimal
	OperatingIncome   decimal.Decimal
	InterestExpense   decimal.Decimal
	EBT               decimal.Decimal
	Tax               decimal.Decimal // negative = credit under the symmetric policy
	NetIncome         decimal.Decimal
	TaxPolicy         TaxPolicy
}

// BalanceSheet is the derived closing balance sheet for one evaluation.
// Allowance is held positive; it is a contra-asset and presentation
// layers render it as a deduction from gross loans.
type BalanceSheet struct {
	Cash        decimal.Decimal
	GrossLoans  decimal.Decimal
	Allowance   decimal.Decimal
	NetLoans    decimal.Decimal
	PPE         decimal.Decimal
	Inventory   decimal.Decimal
	TotalAssets decimal.Decimal

	Deposits         decimal.Decimal
	Debt             decimal.Decimal
	InterestPayable  decimal.Decimal
	TaxPayable       decimal.Decimal
	TotalLiabilities decimal.Decimal

	ShareCapital     decimal.Decimal
	RetainedEarnings decimal.Decimal
	TotalEquity      decimal.Decimal
	TotalLiabEquity  decimal.Decimal
}
