// Package scenario loads and saves named driver sets for evaluation.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/proforma-dev/proforma/internal/model"
)

// Scenario is a named driver set plus the opening balances it runs
// against.
type Scenario struct {
	Name        string
	Description string
	Inputs      model.FinancialInputs
	Opening     model.OpeningBalances
}

// scenarioFile mirrors the YAML layout. Amounts are pointers so a
// missing field can be told apart from an explicit zero.
type scenarioFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Drivers     driversFile `yaml:"drivers"`
	Opening     openingFile `yaml:"opening"`
}

type driversFile struct {
	Revenue          *float64 `yaml:"revenue"`
	COGS             *float64 `yaml:"cogs"`
	Opex             *float64 `yaml:"opex"`
	InterestExpense  *float64 `yaml:"interest_expense"`
	ProvisionExpense *float64 `yaml:"provision_expense"`
	TaxRate          *float64 `yaml:"tax_rate"`
	TaxPolicy        string   `yaml:"tax_policy"`
	Cash             *float64 `yaml:"cash"`
	GrossLoans       *float64 `yaml:"gross_loans"`
	PPE              *float64 `yaml:"ppe"`
	Inventory        *float64 `yaml:"inventory"`
	Deposits         *float64 `yaml:"deposits"`
	Debt             *float64 `yaml:"debt"`
	ShareCapital     *float64 `yaml:"share_capital"`
}

type openingFile struct {
	Allowance        *float64 `yaml:"allowance"`
	InterestPayable  *float64 `yaml:"interest_payable"`
	TaxPayable       *float64 `yaml:"tax_payable"`
	RetainedEarnings *float64 `yaml:"retained_earnings"`
}

// Decode reads one YAML scenario. Unknown fields, missing required
// fields, and non-finite amounts are errors naming the field.
func Decode(r io.Reader) (Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sf scenarioFile
	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("empty scenario document")
		}
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return sf.toScenario()
}

// Encode writes a scenario as YAML.
func Encode(w io.Writer, sc Scenario) error {
	data, err := yaml.Marshal(fromScenario(sc))
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}

// amountReader converts optional wire amounts to decimals, collecting
// the names of missing and non-finite fields so one error can report
// them all.
type amountReader struct {
	missing   []string
	nonFinite []string
}

func (ar *amountReader) amount(name string, v *float64) decimal.Decimal {
	if v == nil {
		ar.missing = append(ar.missing, name)
		return decimal.Zero
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		ar.nonFinite = append(ar.nonFinite, name)
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

func (ar *amountReader) err() error {
	if len(ar.missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(ar.missing, ", "))
	}
	if len(ar.nonFinite) > 0 {
		return fmt.Errorf("non-finite values for: %s", strings.Join(ar.nonFinite, ", "))
	}
	return nil
}

func (sf scenarioFile) toScenario() (Scenario, error) {
	var ar amountReader

	in := model.FinancialInputs{
		Revenue:          ar.amount("drivers.revenue", sf.Drivers.Revenue),
		COGS:             ar.amount("drivers.cogs", sf.Drivers.COGS),
		Opex:             ar.amount("drivers.opex", sf.Drivers.Opex),
		InterestExpense:  ar.amount("drivers.interest_expense", sf.Drivers.InterestExpense),
		ProvisionExpense: ar.amount("drivers.provision_expense", sf.Drivers.ProvisionExpense),
		TaxRate:          ar.amount("drivers.tax_rate", sf.Drivers.TaxRate),
		TaxPolicy:        model.TaxPolicy(sf.Drivers.TaxPolicy),
		Cash:             ar.amount("drivers.cash", sf.Drivers.Cash),
		GrossLoans:       ar.amount("drivers.gross_loans", sf.Drivers.GrossLoans),
		PPE:              ar.amount("drivers.ppe", sf.Drivers.PPE),
		Inventory:        ar.amount("drivers.inventory", sf.Drivers.Inventory),
		Deposits:         ar.amount("drivers.deposits", sf.Drivers.Deposits),
		Debt:             ar.amount("drivers.debt", sf.Drivers.Debt),
		ShareCapital:     ar.amount("drivers.share_capital", sf.Drivers.ShareCapital),
	}
	opening := model.OpeningBalances{
		Allowance:        ar.amount("opening.allowance", sf.Opening.Allowance),
		InterestPayable:  ar.amount("opening.interest_payable", sf.Opening.InterestPayable),
		TaxPayable:       ar.amount("opening.tax_payable", sf.Opening.TaxPayable),
		RetainedEarnings: ar.amount("opening.retained_earnings", sf.Opening.RetainedEarnings),
	}

	// The policy is never defaulted; a scenario must name it.
	if sf.Drivers.TaxPolicy == "" {
		ar.missing = append(ar.missing, "drivers.tax_policy")
	}
	if err := ar.err(); err != nil {
		return Scenario{}, err
	}
	if !in.TaxPolicy.Valid() {
		return Scenario{}, fmt.Errorf("drivers.tax_policy: unknown policy %q (want %q or %q)",
			sf.Drivers.TaxPolicy, model.TaxSymmetric, model.TaxFloor)
	}

	return Scenario{
		Name:        sf.Name,
		Description: sf.Description,
		Inputs:      in,
		Opening:     opening,
	}, nil
}

func fromScenario(sc Scenario) scenarioFile {
	f := func(d decimal.Decimal) *float64 {
		v, _ := d.Float64()
		return &v
	}
	return scenarioFile{
		Name:        sc.Name,
		Description: sc.Description,
		Drivers: driversFile{
			Revenue:          f(sc.Inputs.Revenue),
			COGS:             f(sc.Inputs.COGS),
			Opex:             f(sc.Inputs.Opex),
			InterestExpense:  f(sc.Inputs.InterestExpense),
			ProvisionExpense: f(sc.Inputs.ProvisionExpense),
			TaxRate:          f(sc.Inputs.TaxRate),
			TaxPolicy:        string(sc.Inputs.TaxPolicy),
			Cash:             f(sc.Inputs.Cash),
			GrossLoans:       f(sc.Inputs.GrossLoans),
			PPE:              f(sc.Inputs.PPE),
			Inventory:        f(sc.Inputs.Inventory),
			Deposits:         f(sc.Inputs.Deposits),
			Debt:             f(sc.Inputs.Debt),
			ShareCapital:     f(sc.Inputs.ShareCapital),
		},
		Opening: openingFile{
			Allowance:        f(sc.Opening.Allowance),
			InterestPayable:  f(sc.Opening.InterestPayable),
			TaxPayable:       f(sc.Opening.TaxPayable),
			RetainedEarnings: f(sc.Opening.RetainedEarnings),
		},
	}
}
