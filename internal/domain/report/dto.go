package report

import (
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// QuarterlyReport is the 941-shaped aggregate for one calendar quarter:
// company-wide totals over every period whose pay date falls in the
// quarter, plus the statutory fractional-cent adjustment derived from
// the stored pre-rounding tax values.
type QuarterlyReport struct {
	TaxYear int `json:"tax_year"`
	Quarter int `json:"quarter"`

	GrossPay       decimal.Decimal `json:"gross_pay"`
	TaxesRounded   payroll.TaxSet  `json:"taxes_rounded"`
	TaxesUnrounded payroll.TaxSet  `json:"taxes_unrounded"`

	// FICA and Medicare liability is both shares, so the rounded and
	// computed sides are doubled before differencing.
	FractionalCents decimal.Decimal `json:"fractional_cents"`

	PeriodCount int `json:"period_count"`
}

// AnnualEmployeeSummary is the W-2/940-shaped aggregate for one
// employee over the whole tax year.
type AnnualEmployeeSummary struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	GrossPay                decimal.Decimal `json:"gross_pay"`
	SocialSecurityWages     decimal.Decimal `json:"social_security_wages"`
	FUTAWages               decimal.Decimal `json:"futa_wages"`
	AdditionalMedicareWages decimal.Decimal `json:"additional_medicare_wages"`

	TaxesRounded  payroll.TaxSet  `json:"taxes_rounded"`
	TaxesWithheld decimal.Decimal `json:"taxes_withheld"`
	NetPay        decimal.Decimal `json:"net_pay"`
}

type AnnualReport struct {
	TaxYear   int                     `json:"tax_year"`
	Employees []AnnualEmployeeSummary `json:"employees"`
	GrossPay  decimal.Decimal         `json:"gross_pay"`
}
