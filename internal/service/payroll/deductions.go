package payroll

import (
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type DeductionCalculator struct{}

func NewDeductionCalculator() *DeductionCalculator {
	return &DeductionCalculator{}
}

// Apply filters the employee's deductions to those effective on or
// before the period's pay date and computes each line against the
// period gross. Deductions are not retroactive: one created after a
// period's pay date contributes nothing to it. A nil effective date is
// a legacy record and always applies. Line amounts stay unrounded; only
// the aggregate total is rounded, half-up, to cents.
func (c *DeductionCalculator) Apply(deductions []employee.Deduction, gross decimal.Decimal, payDate time.Time) ([]payroll.AppliedDeduction, decimal.Decimal) {
	var applied []payroll.AppliedDeduction
	total := decimal.Zero

	for _, d := range deductions {
		if d.EffectiveDate != nil && d.EffectiveDate.After(payDate) {
			continue
		}

		amount := d.Amount
		if d.Type == employee.DeductionPercent {
			// Shift keeps the division by 100 exact.
			amount = gross.Mul(d.Amount).Shift(-2)
		}

		applied = append(applied, payroll.AppliedDeduction{
			DeductionID: d.ID,
			Name:        d.Name,
			Amount:      amount,
		})
		total = total.Add(amount)
	}

	return applied, total.Round(2)
}
