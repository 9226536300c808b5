package employee

import (
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// DeductionType enum
type DeductionType string

const (
	DeductionFixed   DeductionType = "fixed"
	DeductionPercent DeductionType = "percent"
)

// Deduction - a recurring deduction configured on an employee. Fixed
// deductions are literal currency amounts; percent deductions are a
// percentage of the period's gross pay. A deduction applies only to
// periods whose pay date is on or after its effective date; a nil
// effective date marks a legacy record that always applies.
type Deduction struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          DeductionType   `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate *time.Time      `json:"effective_date,omitempty"`
}

// Employee - the aggregate root for one worker: pay configuration, the
// ordered pay-period history, and the running tax remainders.
type Employee struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	HireDate time.Time `json:"hire_date"`

	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	HolidayMultiplier  decimal.Decimal `json:"holiday_multiplier"`

	// TaxRates holds the percentage rate per tax line (12 means 12%).
	TaxRates payroll.TaxSet `json:"tax_rates"`

	// PTOAccrualRate is PTO hours accrued per hour worked.
	PTOAccrualRate decimal.Decimal `json:"pto_accrual_rate"`

	Deductions []Deduction `json:"deductions,omitempty"`

	// Remainders carries the signed fractional-cent leftover per tax
	// line from the last committed period into the next one. Invariant:
	// |remainder| < 0.01 after any commit. Reset to zero whenever the
	// period history is replayed from period 1.
	Remainders payroll.TaxSet `json:"remainders"`

	Periods []payroll.PayPeriod `json:"periods,omitempty"`
}

// Period returns a pointer to the period with the given sequence number,
// or nil when no such period exists.
func (e *Employee) Period(seq int) *payroll.PayPeriod {
	for i := range e.Periods {
		if e.Periods[i].Seq == seq {
			return &e.Periods[i]
		}
	}
	return nil
}

// Deduction returns the configured deduction with the given id, or nil.
func (e *Employee) Deduction(id string) *Deduction {
	for i := range e.Deductions {
		if e.Deductions[i].ID == id {
			return &e.Deductions[i]
		}
	}
	return nil
}

// PTOBalance derives the running balance from the period history:
// everything accrued minus every PTO hour taken. Like the wage bases it
// is never stored, so it self-heals after any edit.
func (e *Employee) PTOBalance() decimal.Decimal {
	balance := decimal.Zero
	for i := range e.Periods {
		balance = balance.Add(e.Periods[i].PTOAccrued).Sub(e.Periods[i].Hours.PTO)
	}
	return balance
}

// Clone returns a deep copy, used to stage recalculations so a failed
// replay never leaves the aggregate partially updated.
func (e *Employee) Clone() Employee {
	out := *e
	out.TaxRates = e.TaxRates.Clone()
	out.Remainders = e.Remainders.Clone()
	out.Deductions = append([]Deduction(nil), e.Deductions...)
	out.Periods = make([]payroll.PayPeriod, len(e.Periods))
	for i, p := range e.Periods {
		p.TaxesRounded = p.TaxesRounded.Clone()
		p.TaxesUnrounded = p.TaxesUnrounded.Clone()
		p.Deductions = append([]payroll.AppliedDeduction(nil), p.Deductions...)
		out.Periods[i] = p
	}
	return out
}
