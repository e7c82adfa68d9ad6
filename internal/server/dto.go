package server

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
)

// driversRequest carries one driver set on the wire. Amounts are
// pointers so a missing field fails validation instead of reading as
// zero.
type driversRequest struct {
	Revenue          *float64 `json:"revenue" validate:"required"`
	COGS             *float64 `json:"cogs" validate:"required"`
	Opex             *float64 `json:"opex" validate:"required"`
	InterestExpense  *float64 `json:"interest_expense" validate:"required"`
	ProvisionExpense *float64 `json:"provision_expense" validate:"required"`
	TaxRate          *float64 `json:"tax_rate" validate:"required,gte=0,lte=1"`
	TaxPolicy        string   `json:"tax_policy" validate:"required,oneof=symmetric floor"`
	Cash             *float64 `json:"cash" validate:"required"`
	GrossLoans       *float64 `json:"gross_loans" validate:"required"`
	PPE              *float64 `json:"ppe" validate:"required"`
	Inventory        *float64 `json:"inventory" validate:"required"`
	Deposits         *float64 `json:"deposits" validate:"required"`
	Debt             *float64 `json:"debt" validate:"required"`
	ShareCapital     *float64 `json:"share_capital" validate:"required"`
}

// openingRequest carries opening balances on the wire.
type openingRequest struct {
	Allowance        *float64 `json:"allowance" validate:"required"`
	InterestPayable  *float64 `json:"interest_payable" validate:"required"`
	TaxPayable       *float64 `json:"tax_payable" validate:"required"`
	RetainedEarnings *float64 `json:"retained_earnings" validate:"required"`
}

type evaluateRequest struct {
	Inputs   driversRequest `json:"inputs"`
	Openings openingRequest `json:"openings"`
}

type compareRequest struct {
	Before   driversRequest `json:"before"`
	After    driversRequest `json:"after"`
	Openings openingRequest `json:"openings"`

	ThresholdAmount  *float64 `json:"threshold_amount" validate:"omitempty,gt=0"`
	ThresholdPercent *float64 `json:"threshold_percent" validate:"omitempty,gt=0"`
}

func (r driversRequest) toInputs() model.FinancialInputs {
	f := decimal.NewFromFloat
	return model.FinancialInputs{
		Revenue:          f(*r.Revenue),
		COGS:             f(*r.COGS),
		Opex:             f(*r.Opex),
		InterestExpense:  f(*r.InterestExpense),
		ProvisionExpense: f(*r.ProvisionExpense),
		TaxRate:          f(*r.TaxRate),
		TaxPolicy:        model.TaxPolicy(r.TaxPolicy),
		Cash:             f(*r.Cash),
		GrossLoans:       f(*r.GrossLoans),
		PPE:              f(*r.PPE),
		Inventory:        f(*r.Inventory),
		Deposits:         f(*r.Deposits),
		Debt:             f(*r.Debt),
		ShareCapital:     f(*r.ShareCapital),
	}
}

func (r openingRequest) toOpening() model.OpeningBalances {
	f := decimal.NewFromFloat
	return model.OpeningBalances{
		Allowance:        f(*r.Allowance),
		InterestPayable:  f(*r.InterestPayable),
		TaxPayable:       f(*r.TaxPayable),
		RetainedEarnings: f(*r.RetainedEarnings),
	}
}

// newValidate builds a validator that reports fields by their JSON
// names, so a 400 names exactly the key the client sent.
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetail flattens validator errors into one line naming each
// offending field, e.g. "inputs.revenue is required".
func validationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Namespace()
		if _, rest, found := strings.Cut(name, "."); found {
			name = rest
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", name))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", name, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", name, fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(parts, "; ")
}
