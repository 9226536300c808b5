package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency enum
type PayFrequency string

const (
	FrequencyWeekly      PayFrequency = "weekly"
	FrequencyBiWeekly    PayFrequency = "biweekly"
	FrequencySemiMonthly PayFrequency = "semimonthly"
	FrequencyMonthly     PayFrequency = "monthly"
)

// Settings - Company-wide payroll configuration
type Settings struct {
	PayFrequency                PayFrequency    `json:"pay_frequency"`
	FirstPeriodStart            *time.Time      `json:"first_period_start,omitempty"`
	PayDateOffsetDays           int             `json:"pay_date_offset_days"`
	TaxYear                     int             `json:"tax_year"`
	SocialSecurityWageBase      decimal.Decimal `json:"social_security_wage_base"`
	FUTAWageBase                decimal.Decimal `json:"futa_wage_base"`
	AdditionalMedicareThreshold decimal.Decimal `json:"additional_medicare_threshold"`
}

// TaxLine enum. FICA and Medicare are the employee-side shares; the
// employer shares use the same rounded values and are doubled when
// aggregating employer cost. SUTA and FUTA are employer-only.
type TaxLine string

const (
	TaxFederal  TaxLine = "federal"
	TaxState    TaxLine = "state"
	TaxLocal    TaxLine = "local"
	TaxFICA     TaxLine = "fica"
	TaxMedicare TaxLine = "medicare"
	TaxSUTA     TaxLine = "suta"
	TaxFUTA     TaxLine = "futa"
)

// TaxLines is the canonical iteration order for the seven lines.
var TaxLines = []TaxLine{
	TaxFederal, TaxState, TaxLocal, TaxFICA, TaxMedicare, TaxSUTA, TaxFUTA,
}

// EmployeeLines are the withheld lines that reduce net pay.
var EmployeeLines = []TaxLine{
	TaxFederal, TaxState, TaxLocal, TaxFICA, TaxMedicare,
}

// TaxSet holds one decimal value per tax line. Missing keys read as zero.
type TaxSet map[TaxLine]decimal.Decimal

func NewTaxSet() TaxSet {
	s := make(TaxSet, len(TaxLines))
	for _, line := range TaxLines {
		s[line] = decimal.Zero
	}
	return s
}

func (s TaxSet) Get(line TaxLine) decimal.Decimal {
	return s[line]
}

// Sum adds the values of the given lines.
func (s TaxSet) Sum(lines []TaxLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(s[line])
	}
	return total
}

// Clone returns an independent copy.
func (s TaxSet) Clone() TaxSet {
	out := make(TaxSet, len(s))
	for line, v := range s {
		out[line] = v
	}
	return out
}

// Hours entered for one pay period.
type Hours struct {
	Regular  decimal.Decimal `json:"regular"`
	Overtime decimal.Decimal `json:"overtime"`
	Holiday  decimal.Decimal `json:"holiday"`
	PTO      decimal.Decimal `json:"pto"`
}

// Worked returns the hours that drive PTO accrual (PTO hours taken do
// not accrue more PTO).
func (h Hours) Worked() decimal.Decimal {
	return h.Regular.Add(h.Overtime).Add(h.Holiday)
}

// Any reports whether any hours at all were entered.
func (h Hours) Any() bool {
	return !h.Regular.IsZero() || !h.Overtime.IsZero() ||
		!h.Holiday.IsZero() || !h.PTO.IsZero()
}

// Earnings derived from Hours, one line per hour type.
type Earnings struct {
	Regular  decimal.Decimal `json:"regular"`
	Overtime decimal.Decimal `json:"overtime"`
	Holiday  decimal.Decimal `json:"holiday"`
	PTO      decimal.Decimal `json:"pto"`
}

// AppliedDeduction is one deduction line applied to a period. Line
// amounts are kept unrounded; only the period total is rounded.
type AppliedDeduction struct {
	DeductionID string          `json:"deduction_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayPeriod - one payroll cycle for one employee. Seq is the 1-based
// chronological ordering key; dates never reorder periods.
type PayPeriod struct {
	Seq     int       `json:"seq"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	PayDate time.Time `json:"pay_date"`

	Hours    Hours    `json:"hours"`
	Earnings Earnings `json:"earnings"`

	GrossPay decimal.Decimal `json:"gross_pay"`

	// TaxesUnrounded holds gross x rate before the carried remainder is
	// applied; it feeds the statutory fractional-cent adjustment reports.
	TaxesRounded   TaxSet `json:"taxes_rounded"`
	TaxesUnrounded TaxSet `json:"taxes_unrounded"`

	EmployeeTaxTotal decimal.Decimal `json:"employee_tax_total"`

	Deductions     []AppliedDeduction `json:"deductions,omitempty"`
	DeductionTotal decimal.Decimal    `json:"deduction_total"`

	NetPay     decimal.Decimal `json:"net_pay"`
	PTOAccrued decimal.Decimal `json:"pto_accrued"`
}

// Computed reports whether this period carries computed results.
func (p PayPeriod) Computed() bool {
	return p.Hours.Any()
}

// EmployerCost is the cash cost of the period: gross pay plus the
// employer-only lines plus the employer FICA/Medicare shares, which
// mirror the rounded employee shares rather than being recomputed.
func (p PayPeriod) EmployerCost() decimal.Decimal {
	return p.GrossPay.
		Add(p.TaxesRounded.Get(TaxSUTA)).
		Add(p.TaxesRounded.Get(TaxFUTA)).
		Add(p.TaxesRounded.Get(TaxFICA)).
		Add(p.TaxesRounded.Get(TaxMedicare))
}
