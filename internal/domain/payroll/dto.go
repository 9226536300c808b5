package payroll

import (
	"strings"

	"github.com/paylite/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CoerceAmount parses a numeric input field. Non-numeric input coerces
// to zero instead of failing the whole request.
func CoerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ========== SETTINGS DTOs ==========

type SettingsResponse struct {
	PayFrequency                string          `json:"pay_frequency"`
	FirstPeriodStart            *string         `json:"first_period_start,omitempty"`
	PayDateOffsetDays           int             `json:"pay_date_offset_days"`
	TaxYear                     int             `json:"tax_year"`
	SocialSecurityWageBase      decimal.Decimal `json:"social_security_wage_base"`
	FUTAWageBase                decimal.Decimal `json:"futa_wage_base"`
	AdditionalMedicareThreshold decimal.Decimal `json:"additional_medicare_threshold"`
}

type UpdateSettingsRequest struct {
	PayFrequency                *string `json:"pay_frequency,omitempty"`
	FirstPeriodStart            *string `json:"first_period_start,omitempty"` // "YYYY-MM-DD"
	PayDateOffsetDays           *int    `json:"pay_date_offset_days,omitempty"`
	TaxYear                     *int    `json:"tax_year,omitempty"`
	SocialSecurityWageBase      *string `json:"social_security_wage_base,omitempty"`
	FUTAWageBase                *string `json:"futa_wage_base,omitempty"`
	AdditionalMedicareThreshold *string `json:"additional_medicare_threshold,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayFrequency != nil {
		switch PayFrequency(*r.PayFrequency) {
		case FrequencyWeekly, FrequencyBiWeekly, FrequencySemiMonthly, FrequencyMonthly:
		default:
			errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be weekly, biweekly, semimonthly or monthly"})
		}
	}
	if r.FirstPeriodStart != nil && *r.FirstPeriodStart != "" {
		if _, ok := validator.IsValidDate(*r.FirstPeriodStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "first_period_start", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.PayDateOffsetDays != nil && *r.PayDateOffsetDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "pay_date_offset_days", Message: "must be non-negative"})
	}
	if r.TaxYear != nil && (*r.TaxYear < 1900 || *r.TaxYear > 2200) {
		errs = append(errs, validator.ValidationError{Field: "tax_year", Message: "must be a calendar year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PERIOD DTOs ==========

type UpdateHoursRequest struct {
	Regular  string `json:"regular"`
	Overtime string `json:"overtime"`
	Holiday  string `json:"holiday"`
	PTO      string `json:"pto"`
}

func (r *UpdateHoursRequest) ToHours() Hours {
	return Hours{
		Regular:  CoerceAmount(r.Regular),
		Overtime: CoerceAmount(r.Overtime),
		Holiday:  CoerceAmount(r.Holiday),
		PTO:      CoerceAmount(r.PTO),
	}
}

type GenerateResponse struct {
	TaxYear            int `json:"tax_year"`
	EmployeesGenerated int `json:"employees_generated"`
	PeriodsPerEmployee int `json:"periods_per_employee"`
}

// ========== YEAR-TO-DATE DTOs ==========

// YearToDate aggregates computed period data for one employee through a
// period sequence number. All values are recomputed from the stored
// chronological history on every call.
type YearToDate struct {
	EmployeeID string `json:"employee_id"`
	ThroughSeq int    `json:"through_seq"`

	GrossPay       decimal.Decimal `json:"gross_pay"`
	TaxesRounded   TaxSet          `json:"taxes_rounded"`
	TaxesUnrounded TaxSet          `json:"taxes_unrounded"`
	TaxesWithheld  decimal.Decimal `json:"taxes_withheld"`
	DeductionTotal decimal.Decimal `json:"deduction_total"`
	NetPay         decimal.Decimal `json:"net_pay"`

	SocialSecurityWages     decimal.Decimal `json:"social_security_wages"`
	FUTAWages               decimal.Decimal `json:"futa_wages"`
	AdditionalMedicareWages decimal.Decimal `json:"additional_medicare_wages"`

	PTOAccrued decimal.Decimal `json:"pto_accrued"`
	PTOUsed    decimal.Decimal `json:"pto_used"`
	PTOBalance decimal.Decimal `json:"pto_balance"`
}
