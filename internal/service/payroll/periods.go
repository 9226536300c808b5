package payroll

import (
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// maxPeriodsPerYear bounds generation against a misconfigured anchor.
const maxPeriodsPerYear = 60

type PeriodGenerator struct{}

func NewPeriodGenerator() *PeriodGenerator {
	return &PeriodGenerator{}
}

// Generate derives the ordered, gap-free period skeletons for the
// settings' tax year: every period whose end date falls inside the tax
// year, with 1-based sequence numbers and a pay date offset from the
// end date (the pay date may land in the following year). All derived
// fields start at zero. With no anchor date there is nothing to
// generate and the result is empty.
func (g *PeriodGenerator) Generate(settings payroll.Settings) []payroll.PayPeriod {
	if settings.FirstPeriodStart == nil {
		return nil
	}

	taxYear := settings.TaxYear
	if taxYear == 0 {
		taxYear = settings.FirstPeriodStart.Year()
	}

	var periods []payroll.PayPeriod
	start := dateOnly(*settings.FirstPeriodStart)

	for seq := 1; seq <= maxPeriodsPerYear; seq++ {
		end := periodEnd(settings.PayFrequency, start)
		if end.Year() > taxYear {
			break
		}

		periods = append(periods, payroll.PayPeriod{
			Seq:            seq,
			Start:          start,
			End:            end,
			PayDate:        end.AddDate(0, 0, settings.PayDateOffsetDays),
			Earnings:       zeroEarnings(),
			GrossPay:       decimal.Zero,
			TaxesRounded:   payroll.NewTaxSet(),
			TaxesUnrounded: payroll.NewTaxSet(),
			EmployeeTaxTotal: decimal.Zero,
			DeductionTotal:   decimal.Zero,
			NetPay:           decimal.Zero,
			PTOAccrued:       decimal.Zero,
		})

		start = end.AddDate(0, 0, 1)
	}

	return periods
}

// periodEnd applies the frequency's boundary rule to a period start.
func periodEnd(freq payroll.PayFrequency, start time.Time) time.Time {
	switch freq {
	case payroll.FrequencyWeekly:
		return start.AddDate(0, 0, 6)
	case payroll.FrequencyBiWeekly:
		return start.AddDate(0, 0, 13)
	case payroll.FrequencySemiMonthly:
		// Each month splits at day 15.
		if start.Day() <= 15 {
			return time.Date(start.Year(), start.Month(), 15, 0, 0, 0, 0, start.Location())
		}
		return lastDayOfMonth(start)
	case payroll.FrequencyMonthly:
		return lastDayOfMonth(start)
	default:
		// Unknown frequency behaves like weekly rather than looping forever.
		return start.AddDate(0, 0, 6)
	}
}

func lastDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func zeroEarnings() payroll.Earnings {
	return payroll.Earnings{
		Regular:  decimal.Zero,
		Overtime: decimal.Zero,
		Holiday:  decimal.Zero,
		PTO:      decimal.Zero,
	}
}
