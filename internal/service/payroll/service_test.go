package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	"github.com/paylite/payroll-backend-go/internal/repository/localfile"
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

func seedEmployee(t *testing.T, m *appstate.Manager, emp employee.Employee) {
	t.Helper()
	err := m.Write(context.Background(), func(st *state.AppState) error {
		st.Employees = append(st.Employees, emp)
		return nil
	})
	require.NoError(t, err)
}

func seedSettings(t *testing.T, m *appstate.Manager, settings payroll.Settings) {
	t.Helper()
	err := m.Write(context.Background(), func(st *state.AppState) error {
		st.Settings = settings
		return nil
	})
	require.NoError(t, err)
}

func baseEmployee(id, name string) employee.Employee {
	return employee.Employee{
		ID:                 id,
		Name:               name,
		HireDate:           time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		HourlyRate:         decimal.RequireFromString("20.33"),
		OvertimeMultiplier: decimal.RequireFromString("1.5"),
		HolidayMultiplier:  decimal.RequireFromString("1"),
		TaxRates: payroll.TaxSet{
			payroll.TaxFederal: decimal.RequireFromString("12"),
		},
		Remainders: payroll.NewTaxSet(),
	}
}

func TestPayrollService_UpdateSettings_PatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedSettings(t, m, payroll.Settings{
		PayFrequency: payroll.FrequencyWeekly,
		TaxYear:      2025,
	})
	svc := NewPayrollService(m)

	freq := "monthly"
	resp, err := svc.UpdateSettings(ctx, payroll.UpdateSettingsRequest{PayFrequency: &freq})
	require.NoError(t, err)
	assert.Equal(t, "monthly", resp.PayFrequency)
	assert.Equal(t, 2025, resp.TaxYear)

	anchor := "2025-01-01"
	wageBase := "176100"
	resp, err = svc.UpdateSettings(ctx, payroll.UpdateSettingsRequest{
		FirstPeriodStart:       &anchor,
		SocialSecurityWageBase: &wageBase,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.FirstPeriodStart)
	assert.Equal(t, "2025-01-01", *resp.FirstPeriodStart)
	assert.True(t, resp.SocialSecurityWageBase.Equal(decimal.RequireFromString("176100")))
}

func TestPayrollService_UpdateSettings_RejectsBadFrequency(t *testing.T) {
	m := newTestManager(t)
	svc := NewPayrollService(m)

	freq := "daily"
	_, err := svc.UpdateSettings(context.Background(), payroll.UpdateSettingsRequest{PayFrequency: &freq})
	assert.Error(t, err)
}

func TestPayrollService_GeneratePeriods_NoAnchorIsNotAnError(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedSettings(t, m, payroll.Settings{PayFrequency: payroll.FrequencyWeekly, TaxYear: 2025})
	seedEmployee(t, m, baseEmployee("emp-1", "Ada"))
	svc := NewPayrollService(m)

	resp, err := svc.GeneratePeriods(ctx)
	require.NoError(t, err)
	assert.Zero(t, resp.EmployeesGenerated)
	assert.Zero(t, resp.PeriodsPerEmployee)

	periods, err := svc.Periods(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestPayrollService_GeneratePeriods_SkipsEmployeesWithHistory(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedSettings(t, m, weeklySettings())

	withHistory := baseEmployee("emp-1", "Ada")
	withHistory.Periods = []payroll.PayPeriod{{Seq: 1}}
	seedEmployee(t, m, withHistory)
	seedEmployee(t, m, baseEmployee("emp-2", "Grace"))

	svc := NewPayrollService(m)
	resp, err := svc.GeneratePeriods(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.EmployeesGenerated)
	assert.Equal(t, 52, resp.PeriodsPerEmployee)

	// The employee with existing periods keeps them.
	periods, err := svc.Periods(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, periods, 1)

	periods, err = svc.Periods(ctx, "emp-2")
	require.NoError(t, err)
	assert.Len(t, periods, 52)
}

func TestPayrollService_Recalculate_UnknownEmployee(t *testing.T) {
	m := newTestManager(t)
	svc := NewPayrollService(m)

	_, err := svc.Recalculate(context.Background(), "ghost", 1, payroll.Hours{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_Recalculate_BeforeGeneration(t *testing.T) {
	m := newTestManager(t)
	seedSettings(t, m, weeklySettings())
	seedEmployee(t, m, baseEmployee("emp-1", "Ada"))
	svc := NewPayrollService(m)

	_, err := svc.Recalculate(context.Background(), "emp-1", 1, regularHours("40"))
	assert.ErrorIs(t, err, payroll.ErrPeriodsNotGenerated)
}

func TestPayrollService_Recalculate_SyncsRegisterEntry(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedSettings(t, m, weeklySettings())
	seedEmployee(t, m, baseEmployee("emp-1", "Ada"))
	svc := NewPayrollService(m)

	_, err := svc.GeneratePeriods(ctx)
	require.NoError(t, err)

	_, err = svc.Recalculate(ctx, "emp-1", 1, regularHours("40"))
	require.NoError(t, err)

	var entries []register.Entry
	require.NoError(t, m.Read(func(st *state.AppState) error {
		entries = append([]register.Entry(nil), st.Register...)
		return nil
	}))
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, register.SourcePayroll, e.Source)
	require.NotNil(t, e.PayrollKey)
	assert.Equal(t, register.PayrollKey{EmployeeID: "emp-1", PeriodSeq: 1, TaxYear: 2025}, *e.PayrollKey)
	// 813.20 gross, employer cost includes the FICA/Medicare mirrors
	// (zero rates here) and the employer-only lines (also zero).
	assert.True(t, e.Debit.Equal(decimal.RequireFromString("813.20")), "got %s", e.Debit)

	// Recomputing the same period replaces, never duplicates.
	_, err = svc.Recalculate(ctx, "emp-1", 1, regularHours("32"))
	require.NoError(t, err)

	require.NoError(t, m.Read(func(st *state.AppState) error {
		entries = append([]register.Entry(nil), st.Register...)
		return nil
	}))
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Debit.Equal(decimal.RequireFromString("650.56")), "got %s", entries[0].Debit)

	// Clearing the hours removes the register entry entirely.
	_, err = svc.Recalculate(ctx, "emp-1", 1, payroll.Hours{})
	require.NoError(t, err)

	require.NoError(t, m.Read(func(st *state.AppState) error {
		entries = append([]register.Entry(nil), st.Register...)
		return nil
	}))
	assert.Empty(t, entries)
}

func TestPayrollService_Recalculate_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := localfile.NewSnapshotRepository(dir)
	require.NoError(t, err)
	m := appstate.NewManager(store)
	require.NoError(t, m.Load(ctx))

	seedSettings(t, m, weeklySettings())
	seedEmployee(t, m, baseEmployee("emp-1", "Ada"))
	svc := NewPayrollService(m)

	_, err = svc.GeneratePeriods(ctx)
	require.NoError(t, err)
	_, err = svc.Recalculate(ctx, "emp-1", 1, regularHours("40"))
	require.NoError(t, err)

	// A second manager over the same directory sees the committed state.
	store2, err := localfile.NewSnapshotRepository(dir)
	require.NoError(t, err)
	m2 := appstate.NewManager(store2)
	require.NoError(t, m2.Load(ctx))

	svc2 := NewPayrollService(m2)
	periods, err := svc2.Periods(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, periods, 52)
	assert.True(t, periods[0].GrossPay.Equal(decimal.RequireFromString("813.2")), "got %s", periods[0].GrossPay)
}

func TestPayrollService_YearToDate_ThroughSeq(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	seedSettings(t, m, weeklySettings())
	seedEmployee(t, m, baseEmployee("emp-1", "Ada"))
	svc := NewPayrollService(m)

	_, err := svc.GeneratePeriods(ctx)
	require.NoError(t, err)

	for seq := 1; seq <= 3; seq++ {
		_, err = svc.Recalculate(ctx, "emp-1", seq, regularHours("40"))
		require.NoError(t, err)
	}

	ytd, err := svc.YearToDate(ctx, "emp-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, ytd.ThroughSeq)
	assert.True(t, ytd.GrossPay.Equal(decimal.RequireFromString("1626.40")), "got %s", ytd.GrossPay)

	// Zero means through the last period.
	ytd, err = svc.YearToDate(ctx, "emp-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 52, ytd.ThroughSeq)
	assert.True(t, ytd.GrossPay.Equal(decimal.RequireFromString("2439.60")), "got %s", ytd.GrossPay)
	// 12% of 2439.60 withheld, within a cent.
	assert.True(t, ytd.TaxesWithheld.Sub(decimal.RequireFromString("292.75")).Abs().LessThan(decimal.RequireFromString("0.01")),
		"got %s", ytd.TaxesWithheld)
}
