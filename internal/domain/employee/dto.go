package employee

import (
	"github.com/paylite/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name               string  `json:"name"`
	HireDate           *string `json:"hire_date,omitempty"` // "YYYY-MM-DD", defaults to today
	HourlyRate         string  `json:"hourly_rate"`
	OvertimeMultiplier string  `json:"overtime_multiplier,omitempty"`
	HolidayMultiplier  string  `json:"holiday_multiplier,omitempty"`
	PTOAccrualRate     string  `json:"pto_accrual_rate,omitempty"`

	// Percentage rates per tax line, e.g. {"federal": "12", "fica": "6.2"}.
	TaxRates map[string]string `json:"tax_rates,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name               *string           `json:"name,omitempty"`
	HourlyRate         *string           `json:"hourly_rate,omitempty"`
	OvertimeMultiplier *string           `json:"overtime_multiplier,omitempty"`
	HolidayMultiplier  *string           `json:"holiday_multiplier,omitempty"`
	PTOAccrualRate     *string           `json:"pto_accrual_rate,omitempty"`
	TaxRates           map[string]string `json:"tax_rates,omitempty"`
}

type AddDeductionRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"` // "fixed" or "percent"
	Amount        string  `json:"amount"`
	EffectiveDate *string `json:"effective_date,omitempty"` // "YYYY-MM-DD", defaults to today
}

func (r *AddDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Type != string(DeductionFixed) && r.Type != string(DeductionPercent) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'fixed' or 'percent'"})
	}
	if r.EffectiveDate != nil && *r.EffectiveDate != "" {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	HireDate           string                     `json:"hire_date"`
	HourlyRate         decimal.Decimal            `json:"hourly_rate"`
	OvertimeMultiplier decimal.Decimal            `json:"overtime_multiplier"`
	HolidayMultiplier  decimal.Decimal            `json:"holiday_multiplier"`
	TaxRates           map[string]decimal.Decimal `json:"tax_rates"`
	PTOAccrualRate     decimal.Decimal            `json:"pto_accrual_rate"`
	PTOBalance         decimal.Decimal            `json:"pto_balance"`
	Deductions         []Deduction                `json:"deductions"`
	PeriodCount        int                        `json:"period_count"`
}
