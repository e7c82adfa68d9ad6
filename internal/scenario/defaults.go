package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// Default returns the reference bank used when a workspace has no
// scenarios yet. Its drivers produce a balance sheet that closes at
// 480,000 on both sides.
func Default() Scenario {
	return Scenario{
		Name:        "baseline",
		Description: "Reference bank, steady quarter",
		Inputs: model.FinancialInputs{
			Revenue:          decimal.NewFromInt(120000),
			COGS:             decimal.NewFromInt(45000),
			Opex:             decimal.NewFromInt(25000),
			InterestExpense:  decimal.NewFromInt(3000),
			ProvisionExpense: decimal.Zero,
			TaxRate:          decimal.NewFromFloat(0.25),
			TaxPolicy:        model.TaxSymmetric,
			Cash:             decimal.NewFromInt(50000),
			GrossLoans:       decimal.NewFromInt(400000),
			PPE:              decimal.NewFromInt(30000),
			Inventory:        decimal.Zero,
			Deposits:         decimal.NewFromInt(300000),
			Debt:             decimal.NewFromInt(80000),
			ShareCapital:     decimal.NewFromInt(50000),
		},
	}
}

// Stressed returns the default bank with a 10,000 provision charge,
// the usual starting point for credit-loss what-ifs.
func Stressed() Scenario {
	sc := Default()
	sc.Name = "stressed"
	sc.Description = "Reference bank with a 10,000 credit provision"
	sc.Inputs.ProvisionExpense = decimal.NewFromInt(10000)
	return sc
}
