package payroll

import (
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Recalculator decides, for an edited period, between a single-period
// recompute and a full replay of the employee's history. Remainders are
// a sequential carry chain: mutating an earlier link invalidates every
// downstream value, so whenever any later period already carries hours
// the whole chain is replayed from period 1 in ascending sequence
// order. Zero-hours periods are skipped (they contribute nothing) but
// never reordered around.
type Recalculator struct {
	settings   payroll.Settings
	taxes      *TaxCalculator
	deductions *DeductionCalculator
}

func NewRecalculator(settings payroll.Settings) *Recalculator {
	return &Recalculator{
		settings:   settings,
		taxes:      NewTaxCalculator(settings),
		deductions: NewDeductionCalculator(),
	}
}

// Apply stores the hours on the period with the given sequence number
// and recomputes whatever that edit invalidated. It mutates emp in
// place; callers stage a clone and commit it only on success. The
// returned sequence numbers are the periods whose derived values were
// rewritten (the register must be resynchronized for each).
func (r *Recalculator) Apply(emp *employee.Employee, seq int, hours payroll.Hours) ([]int, error) {
	target := emp.Period(seq)
	if target == nil {
		return nil, payroll.ErrPeriodNotFound
	}
	target.Hours = hours

	if r.laterPeriodHasHours(emp, seq) {
		return r.replayAll(emp)
	}
	return r.recomputeOne(emp, target)
}

func (r *Recalculator) laterPeriodHasHours(emp *employee.Employee, seq int) bool {
	for i := range emp.Periods {
		if emp.Periods[i].Seq > seq && emp.Periods[i].Hours.Any() {
			return true
		}
	}
	return false
}

// replayAll resets the remainders and recomputes every period with
// hours in ascending sequence order, each commit feeding the next. All
// periods are reported as rewritten so cleared periods lose their
// register entries too.
func (r *Recalculator) replayAll(emp *employee.Employee) ([]int, error) {
	emp.Remainders = payroll.NewTaxSet()

	rewritten := make([]int, 0, len(emp.Periods))
	for i := range emp.Periods {
		p := &emp.Periods[i]
		if p.Hours.Any() {
			r.computePeriod(emp, i)
			emp.Remainders = r.taxes.Compute(emp, emp.Periods, i, emp.Remainders)
			finishPeriod(p)
		} else {
			clearDerived(p)
		}
		rewritten = append(rewritten, p.Seq)
	}

	if err := CheckRemainders(emp.Remainders); err != nil {
		return nil, err
	}
	return rewritten, nil
}

// recomputeOne handles the append-only continuation: no later period
// has hours, so the current remainders carry straight into this period.
// If this period had been computed before, its prior commit is backed
// out of the carried state first so the chain stays exact.
func (r *Recalculator) recomputeOne(emp *employee.Employee, target *payroll.PayPeriod) ([]int, error) {
	carried := payroll.NewTaxSet()
	for _, line := range payroll.TaxLines {
		carried[line] = emp.Remainders.Get(line).
			Sub(target.TaxesUnrounded.Get(line)).
			Add(target.TaxesRounded.Get(line))
	}

	idx := -1
	for i := range emp.Periods {
		if emp.Periods[i].Seq == target.Seq {
			idx = i
			break
		}
	}

	if target.Hours.Any() {
		r.computePeriod(emp, idx)
		emp.Remainders = r.taxes.Compute(emp, emp.Periods, idx, carried)
		finishPeriod(target)
	} else {
		clearDerived(target)
		emp.Remainders = carried
	}

	if err := CheckRemainders(emp.Remainders); err != nil {
		return nil, err
	}
	return []int{target.Seq}, nil
}

// computePeriod derives earnings, gross pay, deductions, net pay and
// PTO accrual for the period at idx. Taxes are filled by the caller via
// the calculator so the remainder accumulator stays explicit.
func (r *Recalculator) computePeriod(emp *employee.Employee, idx int) {
	p := &emp.Periods[idx]
	rate := emp.HourlyRate

	p.Earnings = payroll.Earnings{
		Regular:  rate.Mul(p.Hours.Regular).Round(2),
		Overtime: rate.Mul(emp.OvertimeMultiplier).Mul(p.Hours.Overtime).Round(2),
		Holiday:  rate.Mul(emp.HolidayMultiplier).Mul(p.Hours.Holiday).Round(2),
		PTO:      rate.Mul(p.Hours.PTO).Round(2),
	}
	p.GrossPay = p.Earnings.Regular.
		Add(p.Earnings.Overtime).
		Add(p.Earnings.Holiday).
		Add(p.Earnings.PTO)

	p.Deductions, p.DeductionTotal = r.deductions.Apply(emp.Deductions, p.GrossPay, p.PayDate)
	p.PTOAccrued = emp.PTOAccrualRate.Mul(p.Hours.Worked()).Round(2)
}

// finishPeriod settles the fields that depend on the computed taxes.
func finishPeriod(p *payroll.PayPeriod) {
	p.NetPay = p.GrossPay.Sub(p.EmployeeTaxTotal).Sub(p.DeductionTotal)
}

func clearDerived(p *payroll.PayPeriod) {
	p.Earnings = zeroEarnings()
	p.GrossPay = decimal.Zero
	p.TaxesRounded = payroll.NewTaxSet()
	p.TaxesUnrounded = payroll.NewTaxSet()
	p.EmployeeTaxTotal = decimal.Zero
	p.Deductions = nil
	p.DeductionTotal = decimal.Zero
	p.NetPay = decimal.Zero
	p.PTOAccrued = decimal.Zero
}
