package payroll

import (
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// TaxCalculator computes the seven tax lines for one period, threading
// the fractional-cent remainders as an explicit accumulator: callers
// pass the carried-in set and receive the carried-out set, which makes
// out-of-order computation impossible to express by accident.
type TaxCalculator struct {
	settings payroll.Settings
}

func NewTaxCalculator(settings payroll.Settings) *TaxCalculator {
	return &TaxCalculator{settings: settings}
}

// taxableBase picks the wage base for a line. FICA honors the Social
// Security ceiling and FUTA its own; every other line taxes full gross.
func (c *TaxCalculator) taxableBase(periods []payroll.PayPeriod, seq int, line payroll.TaxLine, gross decimal.Decimal) decimal.Decimal {
	switch line {
	case payroll.TaxFICA:
		return TaxableBelowCeiling(periods, seq, c.settings.SocialSecurityWageBase)
	case payroll.TaxFUTA:
		return TaxableBelowCeiling(periods, seq, c.settings.FUTAWageBase)
	default:
		return gross
	}
}

// Compute fills the tax fields of the period at index idx. For each
// line: unrounded = base x rate, total = unrounded + carried remainder,
// rounded = total rounded half-up to cents, new remainder = total -
// rounded. Rounding half-up on currency is deliberate; nothing here may
// switch to banker's rounding. Earlier periods in the slice must
// already carry their committed gross pay.
func (c *TaxCalculator) Compute(emp *employee.Employee, periods []payroll.PayPeriod, idx int, carried payroll.TaxSet) payroll.TaxSet {
	p := &periods[idx]

	rounded := payroll.NewTaxSet()
	unrounded := payroll.NewTaxSet()
	next := payroll.NewTaxSet()

	for _, line := range payroll.TaxLines {
		base := c.taxableBase(periods, p.Seq, line, p.GrossPay)
		// Shift keeps the percent-to-fraction conversion exact.
		rate := emp.TaxRates.Get(line).Shift(-2)

		u := base.Mul(rate)
		total := u.Add(carried.Get(line))
		r := total.Round(2)

		unrounded[line] = u
		rounded[line] = r
		next[line] = total.Sub(r)
	}

	p.TaxesRounded = rounded
	p.TaxesUnrounded = unrounded
	p.EmployeeTaxTotal = rounded.Sum(payroll.EmployeeLines)

	return next
}

// CheckRemainders enforces the commit invariant: every remainder's
// magnitude stays strictly under one cent. A violation is a logic
// defect, not bad input.
func CheckRemainders(remainders payroll.TaxSet) error {
	limit := decimal.New(1, -2) // 0.01
	for _, line := range payroll.TaxLines {
		if remainders.Get(line).Abs().GreaterThanOrEqual(limit) {
			return payroll.ErrRemainderOutOfRange
		}
	}
	return nil
}
