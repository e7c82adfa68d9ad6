package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/proforma-dev/proforma/internal/model"
	"github.com/proforma-dev/proforma/internal/statement"
)

// IncomeStatementJSON is the wire form of an income statement. Amounts
// are fixed-point strings so clients never see float drift.
type IncomeStatementJSON struct {
	Revenue           string `json:"revenue"`
	COGS              string `json:"cogs"`
	NetInterestIncome string `json:"net_interest_income"`
	Opex              string `json:"opex"`
	ProvisionExpense  string `json:"provision_expense"`
	OperatingIncome   string `json:"operating_income"`
	InterestExpense   string `json:"interest_expense"`
	EBT               string `json:"ebt"`
	Tax               string `json:"tax"`
	NetIncome         string `json:"net_income"`
	TaxPolicy         string `json:"tax_policy"`
}

// BalanceSheetJSON is the wire form of a balance sheet.
type BalanceSheetJSON struct {
	Cash             string `json:"cash"`
	GrossLoans       string `json:"gross_loans"`
	Allowance        string `json:"allowance"`
	NetLoans         string `json:"net_loans"`
	PPE              string `json:"ppe"`
	Inventory        string `json:"inventory"`
	TotalAssets      string `json:"total_assets"`
	Deposits         string `json:"deposits"`
	Debt             string `json:"debt"`
	InterestPayable  string `json:"interest_payable"`
	TaxPayable       string `json:"tax_payable"`
	TotalLiabilities string `json:"total_liabilities"`
	ShareCapital     string `json:"share_capital"`
	RetainedEarnings string `json:"retained_earnings"`
	TotalEquity      string `json:"total_equity"`
	TotalLiabEquity  string `json:"total_liab_equity"`
}

// EvaluationJSON is the wire form of one evaluation.
type EvaluationJSON struct {
	IncomeStatement IncomeStatementJSON `json:"income_statement"`
	BalanceSheet    BalanceSheetJSON    `json:"balance_sheet"`
	Balanced        bool                `json:"balanced"`
	Imbalance       string              `json:"imbalance"`
}

// DeltaJSON is one diff row on the wire.
type DeltaJSON struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Section string `json:"section"`
	Before  string `json:"before"`
	After   string `json:"after"`
	Delta   string `json:"delta"`
	Changed bool   `json:"changed"`
	Flagged bool   `json:"flagged"`
}

// DiffJSON is the wire form of a diff report.
type DiffJSON struct {
	Income  []DeltaJSON `json:"income"`
	Balance []DeltaJSON `json:"balance"`
}

// ComparisonJSON is the wire form of a before/after comparison.
type ComparisonJSON struct {
	Before EvaluationJSON `json:"before"`
	After  EvaluationJSON `json:"after"`
	Diff   DiffJSON       `json:"diff"`
}

// SweepRowJSON is one sweep step on the wire.
type SweepRowJSON struct {
	Value           string `json:"value"`
	EBT             string `json:"ebt"`
	Tax             string `json:"tax"`
	NetIncome       string `json:"net_income"`
	NetLoans        string `json:"net_loans"`
	TotalAssets     string `json:"total_assets"`
	TotalLiabEquity string `json:"total_liab_equity"`
}

// SweepJSON is the wire form of a driver sweep.
type SweepJSON struct {
	Driver string         `json:"driver"`
	Steps  []SweepRowJSON `json:"steps"`
}

// NewIncomeStatementJSON converts an income statement for the wire.
func NewIncomeStatementJSON(is model.IncomeStatement) IncomeStatementJSON {
	return IncomeStatementJSON{
		Revenue:           is.Revenue.StringFixed(2),
		COGS:              is.COGS.StringFixed(2),
		NetInterestIncome: is.NetInterestIncome.StringFixed(2),
		Opex:              is.Opex.StringFixed(2),
		ProvisionExpense:  is.ProvisionExpense.StringFixed(2),
		OperatingIncome:   is.OperatingIncome.StringFixed(2),
		InterestExpense:   is.InterestExpense.StringFixed(2),
		EBT:               is.EBT.StringFixed(2),
		Tax:               is.Tax.StringFixed(2),
		NetIncome:         is.NetIncome.StringFixed(2),
		TaxPolicy:         string(is.TaxPolicy),
	}
}

// NewBalanceSheetJSON converts a balance sheet for the wire.
func NewBalanceSheetJSON(bs model.BalanceSheet) BalanceSheetJSON {
	return BalanceSheetJSON{
		Cash:             bs.Cash.StringFixed(2),
		GrossLoans:       bs.GrossLoans.StringFixed(2),
		Allowance:        bs.Allowance.StringFixed(2),
		NetLoans:         bs.NetLoans.StringFixed(2),
		PPE:              bs.PPE.StringFixed(2),
		Inventory:        bs.Inventory.StringFixed(2),
		TotalAssets:      bs.TotalAssets.StringFixed(2),
		Deposits:         bs.Deposits.StringFixed(2),
		Debt:             bs.Debt.StringFixed(2),
		InterestPayable:  bs.InterestPayable.StringFixed(2),
		TaxPayable:       bs.TaxPayable.StringFixed(2),
		TotalLiabilities: bs.TotalLiabilities.StringFixed(2),
		ShareCapital:     bs.ShareCapital.StringFixed(2),
		RetainedEarnings: bs.RetainedEarnings.StringFixed(2),
		TotalEquity:      bs.TotalEquity.StringFixed(2),
		TotalLiabEquity:  bs.TotalLiabEquity.StringFixed(2),
	}
}

// NewEvaluationJSON converts an evaluation for the wire.
func NewEvaluationJSON(ev statement.Evaluation) EvaluationJSON {
	return EvaluationJSON{
		IncomeStatement: NewIncomeStatementJSON(ev.Income),
		BalanceSheet:    NewBalanceSheetJSON(ev.Sheet),
		Balanced:        ev.Balanced,
		Imbalance:       ev.Imbalance.StringFixed(2),
	}
}

// NewComparisonJSON converts a comparison for the wire.
func NewComparisonJSON(cmp statement.Comparison) ComparisonJSON {
	return ComparisonJSON{
		Before: NewEvaluationJSON(cmp.Before),
		After:  NewEvaluationJSON(cmp.After),
		Diff: DiffJSON{
			Income:  newDeltaRows(cmp.Diff.Income),
			Balance: newDeltaRows(cmp.Diff.Balance),
		},
	}
}

// NewSweepJSON converts sweep steps for the wire.
func NewSweepJSON(key model.DriverKey, steps []statement.Step) SweepJSON {
	out := SweepJSON{Driver: string(key)}
	for _, s := range steps {
		out.Steps = append(out.Steps, SweepRowJSON{
			Value:           s.Value.StringFixed(2),
			EBT:             s.Result.Income.EBT.StringFixed(2),
			Tax:             s.Result.Income.Tax.StringFixed(2),
			NetIncome:       s.Result.Income.NetIncome.StringFixed(2),
			NetLoans:        s.Result.Sheet.NetLoans.StringFixed(2),
			TotalAssets:     s.Result.Sheet.TotalAssets.StringFixed(2),
			TotalLiabEquity: s.Result.Sheet.TotalLiabEquity.StringFixed(2),
		})
	}
	return out
}

func newDeltaRows(rows []statement.LineDelta) []DeltaJSON {
	var out []DeltaJSON
	for _, d := range rows {
		out = append(out, DeltaJSON{
			Key:     string(d.Key),
			Label:   d.Label,
			Section: string(d.Section),
			Before:  d.Before.StringFixed(2),
			After:   d.After.StringFixed(2),
			Delta:   d.Delta.StringFixed(2),
			Changed: d.Changed,
			Flagged: d.Flagged,
		})
	}
	return out
}

// WriteSweepCSV writes sweep steps as CSV, first column named by the
// swept driver.
func WriteSweepCSV(w io.Writer, key model.DriverKey, steps []statement.Step) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := strings.Split(string(key)+",ebt,tax,net_income,net_loans,total_assets,total_liab_equity", ",")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range steps {
		row := []string{
			s.Value.StringFixed(2),
			s.Result.Income.EBT.StringFixed(2),
			s.Result.Income.Tax.StringFixed(2),
			s.Result.Income.NetIncome.StringFixed(2),
			s.Result.Sheet.NetLoans.StringFixed(2),
			s.Result.Sheet.TotalAssets.StringFixed(2),
			s.Result.Sheet.TotalLiabEquity.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
