package employee

import (
	"context"
	"testing"
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/employee"
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

func TestEmployeeService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestManager(t))

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Ada Lovelace",
		HourlyRate: "20.33",
		TaxRates:   map[string]string{"federal": "12", "fica": "6.2"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ada Lovelace", resp.Name)
	assert.True(t, resp.HourlyRate.Equal(decimal.RequireFromString("20.33")))
	assert.True(t, resp.OvertimeMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, resp.HolidayMultiplier.Equal(decimal.RequireFromString("1")))
	assert.True(t, resp.TaxRates["federal"].Equal(decimal.RequireFromString("12")))
	assert.True(t, resp.TaxRates["fica"].Equal(decimal.RequireFromString("6.2")))
	// Unconfigured lines read as zero rather than being absent.
	assert.True(t, resp.TaxRates["suta"].IsZero())
	assert.Zero(t, resp.PeriodCount)
	assert.True(t, resp.PTOBalance.IsZero())
}

func TestEmployeeService_Create_RequiresName(t *testing.T) {
	svc := NewEmployeeService(newTestManager(t))

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{HourlyRate: "20"})
	assert.Error(t, err)
}

func TestEmployeeService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestManager(t))

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:       "Grace Hopper",
		HourlyRate: "30",
		TaxRates:   map[string]string{"federal": "15"},
	})
	require.NoError(t, err)

	rate := "32.50"
	resp, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{HourlyRate: &rate})
	require.NoError(t, err)

	assert.True(t, resp.HourlyRate.Equal(decimal.RequireFromString("32.50")))
	assert.Equal(t, "Grace Hopper", resp.Name)
	assert.True(t, resp.TaxRates["federal"].Equal(decimal.RequireFromString("15")))

	empty := ""
	_, err = svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Name: &empty})
	assert.ErrorIs(t, err, employee.ErrNameRequired)

	_, err = svc.Update(ctx, "ghost", employee.UpdateEmployeeRequest{HourlyRate: &rate})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_AddAndRemoveDeduction(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestManager(t))

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada", HourlyRate: "20"})
	require.NoError(t, err)

	effective := "2025-02-01"
	resp, err := svc.AddDeduction(ctx, created.ID, employee.AddDeductionRequest{
		Name:          "Health insurance",
		Type:          "fixed",
		Amount:        "75.50",
		EffectiveDate: &effective,
	})
	require.NoError(t, err)
	require.Len(t, resp.Deductions, 1)

	d := resp.Deductions[0]
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, employee.DeductionFixed, d.Type)
	assert.True(t, d.Amount.Equal(decimal.RequireFromString("75.50")))
	require.NotNil(t, d.EffectiveDate)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), *d.EffectiveDate)

	resp, err = svc.RemoveDeduction(ctx, created.ID, d.ID)
	require.NoError(t, err)
	assert.Empty(t, resp.Deductions)

	_, err = svc.RemoveDeduction(ctx, created.ID, d.ID)
	assert.ErrorIs(t, err, employee.ErrDeductionNotFound)
}

func TestEmployeeService_AddDeduction_RejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newTestManager(t))

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada", HourlyRate: "20"})
	require.NoError(t, err)

	_, err = svc.AddDeduction(ctx, created.ID, employee.AddDeductionRequest{
		Name:   "Mystery",
		Type:   "variable",
		Amount: "10",
	})
	assert.Error(t, err)
}

func TestEmployeeService_Delete_CascadesPayrollRegisterEntries(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	svc := NewEmployeeService(m)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Ada", HourlyRate: "20"})
	require.NoError(t, err)

	key := register.PayrollKey{EmployeeID: created.ID, PeriodSeq: 1, TaxYear: 2025}
	err = m.Write(ctx, func(st *state.AppState) error {
		st.Register = append(st.Register,
			register.Entry{ID: "p-1", Source: register.SourcePayroll, PayrollKey: &key, Debit: decimal.RequireFromString("800"), Credit: decimal.Zero},
			register.Entry{ID: "m-1", Source: register.SourceManual, Debit: decimal.RequireFromString("45"), Credit: decimal.Zero},
		)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	require.NoError(t, m.Read(func(st *state.AppState) error {
		require.Len(t, st.Register, 1)
		assert.Equal(t, "m-1", st.Register[0].ID)
		return nil
	}))

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)
}
