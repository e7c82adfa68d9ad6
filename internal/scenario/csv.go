package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// Header is the CSV header for scenario batch files.
const Header = "name,description,revenue,cogs,opex,interest_expense,provision_expense,tax_rate,tax_policy,cash,gross_loans,ppe,inventory,deposits,debt,share_capital,opening_allowance,opening_interest_payable,opening_tax_payable,opening_retained_earnings"

const (
	numFields         = 20
	colName           = 0
	colDesc           = 1
	colRevenue        = 2
	colCOGS           = 3
	colOpex           = 4
	colInterest       = 5
	colProvision      = 6
	colTaxRate        = 7
	colTaxPolicy      = 8
	colCash           = 9
	colGrossLoans     = 10
	colPPE            = 11
	colInventory      = 12
	colDeposits       = 13
	colDebt           = 14
	colShareCap       = 15
	colOpenAllowance  = 16
	colOpenIntPayable = 17
	colOpenTaxPayable = 18
	colOpenRetained   = 19
)

// ReadScenarios reads all scenarios from a batch CSV reader.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading scenario CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var scenarios []Scenario
	for i, rec := range records[1:] {
		sc, err := UnmarshalScenario(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// WriteScenarios writes scenarios to a batch CSV writer (including header).
func WriteScenarios(w io.Writer, scenarios []Scenario) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, sc := range scenarios {
		if err := cw.Write(MarshalScenario(sc)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalScenario converts a Scenario to a CSV row ([]string).
func MarshalScenario(sc Scenario) []string {
	row := make([]string, numFields)
	row[colName] = sc.Name
	row[colDesc] = sc.Description
	row[colRevenue] = sc.Inputs.Revenue.String()
	row[colCOGS] = sc.Inputs.COGS.String()
	row[colOpex] = sc.Inputs.Opex.String()
	row[colInterest] = sc.Inputs.InterestExpense.String()
	row[colProvision] = sc.Inputs.ProvisionExpense.String()
	row[colTaxRate] = sc.Inputs.TaxRate.String()
	row[colTaxPolicy] = string(sc.Inputs.TaxPolicy)
	row[colCash] = sc.Inputs.Cash.String()
	row[colGrossLoans] = sc.Inputs.GrossLoans.String()
	row[colPPE] = sc.Inputs.PPE.String()
	row[colInventory] = sc.Inputs.Inventory.String()
	row[colDeposits] = sc.Inputs.Deposits.String()
	row[colDebt] = sc.Inputs.Debt.String()
	row[colShareCap] = sc.Inputs.ShareCapital.String()
	row[colOpenAllowance] = sc.Opening.Allowance.String()
	row[colOpenIntPayable] = sc.Opening.InterestPayable.String()
	row[colOpenTaxPayable] = sc.Opening.TaxPayable.String()
	row[colOpenRetained] = sc.Opening.RetainedEarnings.String()
	return row
}

// rowReader parses amounts out of a CSV record, keeping the first
// error it hits so callers can read every column and check once.
type rowReader struct {
	record []string
	err    error
}

func (rr *rowReader) amount(col int, name string) decimal.Decimal {
	if rr.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(rr.record[col])
	if err != nil {
		rr.err = fmt.Errorf("parsing %s %q: %w", name, rr.record[col], err)
		return decimal.Zero
	}
	return d
}

// UnmarshalScenario converts a CSV row to a Scenario.
func UnmarshalScenario(record []string) (Scenario, error) {
	if len(record) != numFields {
		return Scenario{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colName] == "" {
		return Scenario{}, fmt.Errorf("name is required")
	}

	policy := model.TaxPolicy(record[colTaxPolicy])
	if !policy.Valid() {
		return Scenario{}, fmt.Errorf("unknown tax_policy %q (want %q or %q)",
			record[colTaxPolicy], model.TaxSymmetric, model.TaxFloor)
	}

	rr := rowReader{record: record}
	sc := Scenario{
		Name:        record[colName],
		Description: record[colDesc],
		Inputs: model.FinancialInputs{
			Revenue:          rr.amount(colRevenue, "revenue"),
			COGS:             rr.amount(colCOGS, "cogs"),
			Opex:             rr.amount(colOpex, "opex"),
			InterestExpense:  rr.amount(colInterest, "interest_expense"),
			ProvisionExpense: rr.amount(colProvision, "provision_expense"),
			TaxRate:          rr.amount(colTaxRate, "tax_rate"),
			TaxPolicy:        policy,
			Cash:             rr.amount(colCash, "cash"),
			GrossLoans:       rr.amount(colGrossLoans, "gross_loans"),
			PPE:              rr.amount(colPPE, "ppe"),
			Inventory:        rr.amount(colInventory, "inventory"),
			Deposits:         rr.amount(colDeposits, "deposits"),
			Debt:             rr.amount(colDebt, "debt"),
			ShareCapital:     rr.amount(colShareCap, "share_capital"),
		},
		Opening: model.OpeningBalances{
			Allowance:        rr.amount(colOpenAllowance, "opening_allowance"),
			InterestPayable:  rr.amount(colOpenIntPayable, "opening_interest_payable"),
			TaxPayable:       rr.amount(colOpenTaxPayable, "opening_tax_payable"),
			RetainedEarnings: rr.amount(colOpenRetained, "opening_retained_earnings"),
		},
	}
	if rr.err != nil {
		return Scenario{}, rr.err
	}
	return sc, nil
}
