package payroll

import (
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Wage-base state is never stored on the employee. Both trackers
// re-scan the chronological period history on every call, so they
// self-heal after any edit to an earlier period.

// ytdGrossBefore sums the gross pay of every period strictly before the
// given sequence number.
func ytdGrossBefore(periods []payroll.PayPeriod, seq int) decimal.Decimal {
	total := decimal.Zero
	for i := range periods {
		if periods[i].Seq < seq {
			total = total.Add(periods[i].GrossPay)
		}
	}
	return total
}

// TaxableBelowCeiling returns the portion of the period's gross pay
// still under the annual wage-base ceiling: min(gross, max(0, ceiling -
// ytdBefore)). A non-positive ceiling means no ceiling is configured
// and the full gross is taxable.
func TaxableBelowCeiling(periods []payroll.PayPeriod, seq int, ceiling decimal.Decimal) decimal.Decimal {
	p := findPeriod(periods, seq)
	if p == nil {
		return decimal.Zero
	}
	if !ceiling.IsPositive() {
		return p.GrossPay
	}

	room := ceiling.Sub(ytdGrossBefore(periods, seq))
	if room.IsNegative() {
		room = decimal.Zero
	}
	if p.GrossPay.LessThan(room) {
		return p.GrossPay
	}
	return room
}

// TaxableAboveThreshold returns the portion of the period's gross pay
// that pushes cumulative year-to-date gross above the threshold: zero
// while YTD stays below it, the full marginal amount once past it.
func TaxableAboveThreshold(periods []payroll.PayPeriod, seq int, threshold decimal.Decimal) decimal.Decimal {
	p := findPeriod(periods, seq)
	if p == nil {
		return decimal.Zero
	}
	if !threshold.IsPositive() {
		return p.GrossPay
	}

	before := ytdGrossBefore(periods, seq)
	after := before.Add(p.GrossPay)
	if !after.GreaterThan(threshold) {
		return decimal.Zero
	}
	taxable := after.Sub(threshold)
	if taxable.GreaterThan(p.GrossPay) {
		taxable = p.GrossPay
	}
	return taxable
}

func findPeriod(periods []payroll.PayPeriod, seq int) *payroll.PayPeriod {
	for i := range periods {
		if periods[i].Seq == seq {
			return &periods[i]
		}
	}
	return nil
}
