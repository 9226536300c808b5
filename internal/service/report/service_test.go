package report

import (
	"context"
	"testing"
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/report"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	"github.com/paylite/payroll-backend-go/internal/repository/localfile"
	payrollService "github.com/paylite/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *appstate.Manager {
	t.Helper()
	store, err := localfile.NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)

	m := appstate.NewManager(store)
	require.NoError(t, m.Load(context.Background()))
	return m
}

// seedComputedYear seeds the settings plus one employee with hours in
// every biweekly period, computed through the real recalculation path.
func seedComputedYear(t *testing.T, m *appstate.Manager) {
	t.Helper()
	ctx := context.Background()

	anchor := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	settings := payroll.Settings{
		PayFrequency:      payroll.FrequencyBiWeekly,
		FirstPeriodStart:  &anchor,
		PayDateOffsetDays: 3,
		TaxYear:           2025,
	}

	err := m.Write(ctx, func(st *state.AppState) error {
		st.Settings = settings
		st.Employees = append(st.Employees, employee.Employee{
			ID:                 "emp-1",
			Name:               "Ada",
			HourlyRate:         decimal.RequireFromString("20.33"),
			OvertimeMultiplier: decimal.RequireFromString("1.5"),
			HolidayMultiplier:  decimal.RequireFromString("1"),
			TaxRates: payroll.TaxSet{
				payroll.TaxFICA:     decimal.RequireFromString("6.2"),
				payroll.TaxMedicare: decimal.RequireFromString("1.45"),
			},
			Remainders: payroll.NewTaxSet(),
		})
		return nil
	})
	require.NoError(t, err)

	svc := payrollService.NewPayrollService(m)
	_, err = svc.GeneratePeriods(ctx)
	require.NoError(t, err)

	hours := payroll.Hours{Regular: decimal.RequireFromString("80")}
	for seq := 1; seq <= 26; seq++ {
		_, err := svc.Recalculate(ctx, "emp-1", seq, hours)
		require.NoError(t, err)
	}
}

func TestReportService_Quarterly_RejectsBadQuarter(t *testing.T) {
	svc := NewReportService(newTestManager(t))

	for _, q := range []int{0, 5, -1} {
		_, err := svc.Quarterly(context.Background(), q)
		assert.ErrorIs(t, err, report.ErrInvalidQuarter, "quarter %d", q)
	}
}

func TestReportService_Quarterly_BucketsByPayDate(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedComputedYear(t, m)
	svc := NewReportService(m)

	var total decimal.Decimal
	var periods int
	for q := 1; q <= 4; q++ {
		rep, err := svc.Quarterly(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 2025, rep.TaxYear)
		assert.Equal(t, q, rep.Quarter)
		assert.Positive(t, rep.PeriodCount)

		total = total.Add(rep.GrossPay)
		periods += rep.PeriodCount
	}

	// Period 26 pays on Jan 2 of the following year and belongs to no
	// quarter of this tax year.
	assert.Equal(t, 25, periods)
	assert.True(t, total.Equal(decimal.RequireFromString("40660")), "got %s", total)
}

func TestReportService_Quarterly_FractionalCentsBounded(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedComputedYear(t, m)
	svc := NewReportService(m)

	rep, err := svc.Quarterly(ctx, 1)
	require.NoError(t, err)

	// The adjustment covers both shares of FICA and Medicare, so each
	// contributing period can add at most a cent of drift.
	bound := decimal.RequireFromString("0.01").Mul(decimal.NewFromInt(int64(rep.PeriodCount)))
	assert.True(t, rep.FractionalCents.Abs().LessThanOrEqual(bound),
		"fractional cents %s over %d periods", rep.FractionalCents, rep.PeriodCount)
}

func TestReportService_Annual_SumsEmployees(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedComputedYear(t, m)
	svc := NewReportService(m)

	rep, err := svc.Annual(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2025, rep.TaxYear)
	require.Len(t, rep.Employees, 1)

	emp := rep.Employees[0]
	assert.Equal(t, "emp-1", emp.EmployeeID)
	// 26 periods x 80h x $20.33.
	assert.True(t, emp.GrossPay.Equal(decimal.RequireFromString("42286.40")), "got %s", emp.GrossPay)
	// No ceiling configured: Social Security wages track full gross.
	assert.True(t, emp.SocialSecurityWages.Equal(emp.GrossPay))
	assert.True(t, rep.GrossPay.Equal(emp.GrossPay))
	assert.True(t, emp.NetPay.Equal(emp.GrossPay.Sub(emp.TaxesWithheld)))
}
