package model

import "github.com/shopspring/decimal"

// DriverKey names a numeric input that can be overridden or swept.
// The tax policy is deliberately not a driver; it is set explicitly.
type DriverKey string

const (
	DriverRevenue          DriverKey = "revenue"
	DriverCOGS             DriverKey = "cogs"
	DriverOpex             DriverKey = "opex"
	DriverInterestExpense  DriverKey = "interest_expense"
	DriverProvisionExpense DriverKey = "provision_expense"
	DriverTaxRate          DriverKey = "tax_rate"
	DriverCash             DriverKey = "cash"
	DriverGrossLoans       DriverKey = "gross_loans"
	DriverPPE              DriverKey = "ppe"
	DriverInventory        DriverKey = "inventory"
	DriverDeposits         DriverKey = "deposits"
	DriverDebt             DriverKey = "debt"
	DriverShareCapital     DriverKey = "share_capital"
)

// Drivers lists every settable driver in input order.
func Drivers() []DriverKey {
	return []DriverKey{
		DriverRevenue,
		DriverCOGS,
		DriverOpex,
		DriverInterestExpense,
		DriverProvisionExpense,
		DriverTaxRate,
		DriverCash,
		DriverGrossLoans,
		DriverPPE,
		DriverInventory,
		DriverDeposits,
		DriverDebt,
		DriverShareCapital,
	}
}

// Driver returns the current value of the named driver.
func (in FinancialInputs) Driver(key DriverKey) (decimal.Decimal, bool) {
	switch key {
	case DriverRevenue:
		return in.Revenue, true
	case DriverCOGS:
		return in.COGS, true
	case DriverOpex:
		return in.Opex, true
	case DriverInterestExpense:
		return in.InterestExpense, true
	case DriverProvisionExpense:
		return in.ProvisionExpense, true
	case DriverTaxRate:
		return in.TaxRate, true
	case DriverCash:
		return in.Cash, true
	case DriverGrossLoans:
		return in.GrossLoans, true
	case DriverPPE:
		return in.PPE, true
	case DriverInventory:
		return in.Inventory, true
	case DriverDeposits:
		return in.Deposits, true
	case DriverDebt:
		return in.Debt, true
	case DriverShareCapital:
		return in.ShareCapital, true
	}
	return decimal.Decimal{}, false
}

// Set assigns value to the named driver. It reports false for an
// unknown key and leaves the inputs untouched.
func (in *FinancialInputs) Set(key DriverKey, value decimal.Decimal) bool {
	switch key {
	case DriverRevenue:
		in.Revenue = value
	case DriverCOGS:
		in.COGS = value
	case DriverOpex:
		in.Opex = value
	case DriverInterestExpense:
		in.InterestExpense = value
	case DriverProvisionExpense:
		in.ProvisionExpense = value
	case DriverTaxRate:
		in.TaxRate = value
	case DriverCash:
		in.Cash = value
	case DriverGrossLoans:
		in.GrossLoans = value
	case DriverPPE:
		in.PPE = value
	case DriverInventory:
		in.Inventory = value
	case DriverDeposits:
		in.Deposits = value
	case DriverDebt:
		in.Debt = value
	case DriverShareCapital:
		in.ShareCapital = value
	default:
		return false
	}
	return true
}
