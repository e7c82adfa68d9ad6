package model

import "github.com/shopspring/decimal"

// Section groups statement lines for presentation.
type Section string

const (
	SectionIncome      Section = "income"
	SectionAssets      Section = "assets"
	SectionLiabilities Section = "liabilities"
	SectionEquity      Section = "equity"
)

// LineKey is the stable machine identifier of a statement line. Diffs
// and API payloads match on keys, never on display labels.
type LineKey string

// Income statement lines.
const (
	LineRevenue           LineKey = "revenue"
	LineCOGS              LineKey = "cogs"
	LineNetInterestIncome LineKey = "net_interest_income"
	LineOpex              LineKey = "opex"
	LineProvisionExpense  LineKey = "provision_expense"
	LineOperatingIncome   LineKey = "operating_income"
	LineInterestExpense   LineKey = "interest_expense"
	LineEBT               LineKey = "ebt"
	LineTax               LineKey = "tax"
	LineNetIncome         LineKey = "net_income"
)

// Balance sheet lines.
const (
	LineCash             LineKey = "cash"
	LineNetLoans         LineKey = "net_loans"
	LineGrossLoans       LineKey = "gross_loans"
	LineAllowance        LineKey = "allowance"
	LinePPE              LineKey = "ppe"
	LineInventory        LineKey = "inventory"
	LineTotalAssets      LineKey = "total_assets"
	LineDeposits         LineKey = "deposits"
	LineDebt             LineKey = "debt"
	LineInterestPayable  LineKey = "interest_payable"
	LineTaxPayable       LineKey = "tax_payable"
	LineTotalLiabilities LineKey = "total_liabilities"
	LineShareCapital     LineKey = "share_capital"
	LineRetainedEarnings LineKey = "retained_earnings"
	LineTotalEquity      LineKey = "total_equity"
	LineTotalLiabEquity  LineKey = "total_liab_equity"
)

// Line couples a stable key with its display label and section.
type Line struct {
	Key     LineKey
	Label   string
	Section Section
	Total   bool // subtotal or total row, rendered emphasized
	Detail  bool // breakdown row under a composite line, e.g. gross loans
}

// IncomeLines returns the income statement lines in presentation order.
func IncomeLines() []Line {
	return []Line{
		{Key: LineRevenue, Label: "Revenue", Section: SectionIncome},
		{Key: LineCOGS, Label: "Cost of Funds", Section: SectionIncome},
		{Key: LineNetInterestIncome, Label: "Net Interest Income", Section: SectionIncome, Total: true},
		{Key: LineOpex, Label: "Operating Expenses", Section: SectionIncome},
		{Key: LineProvisionExpense, Label: "Provision for Loan Losses", Section: SectionIncome},
		{Key: LineOperatingIncome, Label: "Operating Income", Section: SectionIncome, Total: true},
		{Key: LineInterestExpense, Label: "Interest Expense", Section: SectionIncome},
		{Key: LineEBT, Label: "Earnings Before Tax", Section: SectionIncome, Total: true},
		{Key: LineTax, Label: "Tax", Section: SectionIncome},
		{Key: LineNetIncome, Label: "Net Income", Section: SectionIncome, Total: true},
	}
}

// BalanceLines returns the balance sheet lines in presentation order:
// assets, then liabilities, then equity.
func BalanceLines() []Line {
	return []Line{
		{Key: LineCash, Label: "Cash", Section: SectionAssets},
		{Key: LineNetLoans, Label: "Loans (net)", Section: SectionAssets},
		{Key: LineGrossLoans, Label: "Gross Loans", Section: SectionAssets, Detail: true},
		{Key: LineAllowance, Label: "Allowance for Loan Losses", Section: SectionAssets, Detail: true},
		{Key: LinePPE, Label: "Property & Equipment", Section: SectionAssets},
		{Key: LineInventory, Label: "Inventory", Section: SectionAssets},
		{Key: LineTotalAssets, Label: "TOTAL ASSETS", Section: SectionAssets, Total: true},
		{Key: LineDeposits, Label: "Customer Deposits", Section: SectionLiabilities},
		{Key: LineDebt, Label: "Debt", Section: SectionLiabilities},
		{Key: LineInterestPayable, Label: "Accrued Interest Payable", Section: SectionLiabilities},
		{Key: LineTaxPayable, Label: "Accrued Tax Payable", Section: SectionLiabilities},
		{Key: LineTotalLiabilities, Label: "TOTAL LIABILITIES", Section: SectionLiabilities, Total: true},
		{Key: LineShareCapital, Label: "Share Capital", Section: SectionEquity},
		{Key: LineRetainedEarnings, Label: "Retained Earnings", Section: SectionEquity},
		{Key: LineTotalEquity, Label: "TOTAL EQUITY", Section: SectionEquity, Total: true},
		{Key: LineTotalLiabEquity, Label: "TOTAL LIABILITIES + EQUITY", Section: SectionEquity, Total: true},
	}
}

// Value returns the amount for an income statement line key.
func (s IncomeStatement) Value(key LineKey) (decimal.Decimal, bool) {
	switch key {
	case LineRevenue:
		return s.Revenue, true
	case LineCOGS:
		return s.COGS, true
	case LineNetInterestIncome:
		return s.NetInterestIncome, true
	case LineOpex:
		return s.Opex, true
	case LineProvisionExpense:
		return s.ProvisionExpense, true
	case LineOperatingIncome:
		return s.OperatingIncome, true
	case LineInterestExpense:
		return s.InterestExpense, true
	case LineEBT:
		return s.EBT, true
	case LineTax:
		return s.Tax, true
	case LineNetIncome:
		return s.NetIncome, true
	}
	return decimal.Decimal{}, false
}

// Value returns the amount for a balance sheet line key.
func (b BalanceSheet) Value(key LineKey) (decimal.Decimal, bool) {
	switch key {
	case LineCash:
		return b.Cash, true
	case LineNetLoans:
		return b.NetLoans, true
	case LineGrossLoans:
		return b.GrossLoans, true
	case LineAllowance:
		return b.Allowance, true
	case LinePPE:
		return b.PPE, true
	case LineInventory:
		return b.Inventory, true
	case LineTotalAssets:
		return b.TotalAssets, true
	case LineDeposits:
		return b.Deposits, true
	case LineDebt:
		return b.Debt, true
	case LineInterestPayable:
		return b.InterestPayable, true
	case LineTaxPayable:
		return b.TaxPayable, true
	case LineTotalLiabilities:
		return b.TotalLiabilities, true
	case LineShareCapital:
		return b.ShareCapital, true
	case LineRetainedEarnings:
		return b.RetainedEarnings, true
	case LineTotalEquity:
		return b.TotalEquity, true
	case LineTotalLiabEquity:
		return b.TotalLiabEquity, true
	}
	return decimal.Decimal{}, false
}
