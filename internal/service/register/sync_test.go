package register

import (
	"testing"
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = register.PayrollKey{EmployeeID: "emp-1", PeriodSeq: 3, TaxYear: 2025}

func testDate() time.Time {
	return time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
}

func TestSyncPeriodEntry_InsertsNewEntry(t *testing.T) {
	entries := SyncPeriodEntry(nil, testKey, testDate(), "Payroll: Ada, period 3 of 2025", decimal.RequireFromString("2153.00"))

	require.Len(t, entries, 1)
	e := entries[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, register.SourcePayroll, e.Source)
	require.NotNil(t, e.PayrollKey)
	assert.Equal(t, testKey, *e.PayrollKey)
	assert.True(t, e.Debit.Equal(decimal.RequireFromString("2153.00")))
	assert.True(t, e.Credit.IsZero())
	assert.False(t, e.Reconciled)
}

func TestSyncPeriodEntry_ReplacesWithoutDuplicating(t *testing.T) {
	entries := SyncPeriodEntry(nil, testKey, testDate(), "first", decimal.RequireFromString("2000"))
	originalID := entries[0].ID

	entries = SyncPeriodEntry(entries, testKey, testDate(), "second", decimal.RequireFromString("1500"))

	require.Len(t, entries, 1)
	assert.Equal(t, originalID, entries[0].ID, "the entry keeps its identity across recomputes")
	assert.Equal(t, "second", entries[0].Description)
	assert.True(t, entries[0].Debit.Equal(decimal.RequireFromString("1500")))
}

func TestSyncPeriodEntry_PreservesReconciledFlag(t *testing.T) {
	entries := SyncPeriodEntry(nil, testKey, testDate(), "payroll", decimal.RequireFromString("2000"))
	entries[0].Reconciled = true

	entries = SyncPeriodEntry(entries, testKey, testDate(), "payroll", decimal.RequireFromString("2100"))

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Reconciled, "a recompute must not clear manual reconciliation")
}

func TestSyncPeriodEntry_RemovesEntryWhenCostNotPositive(t *testing.T) {
	entries := SyncPeriodEntry(nil, testKey, testDate(), "payroll", decimal.RequireFromString("2000"))
	entries = SyncPeriodEntry(entries, testKey, testDate(), "payroll", decimal.Zero)
	assert.Empty(t, entries)

	// A zero-cost sync against an empty register stays empty.
	entries = SyncPeriodEntry(nil, testKey, testDate(), "payroll", decimal.Zero)
	assert.Empty(t, entries)
}

func TestSyncPeriodEntry_LeavesOtherEntriesAlone(t *testing.T) {
	otherKey := register.PayrollKey{EmployeeID: "emp-2", PeriodSeq: 3, TaxYear: 2025}
	entries := SyncPeriodEntry(nil, otherKey, testDate(), "other employee", decimal.RequireFromString("900"))
	entries = append(entries, register.Entry{
		ID:          "manual-1",
		Date:        testDate(),
		Description: "Office supplies",
		Debit:       decimal.RequireFromString("45.10"),
		Credit:      decimal.Zero,
		Source:      register.SourceManual,
	})

	entries = SyncPeriodEntry(entries, testKey, testDate(), "payroll", decimal.RequireFromString("2000"))
	require.Len(t, entries, 3)

	entries = SyncPeriodEntry(entries, testKey, testDate(), "payroll", decimal.Zero)
	require.Len(t, entries, 2)
	for _, e := range entries {
		if e.PayrollKey != nil {
			assert.NotEqual(t, testKey, *e.PayrollKey)
		}
	}
}
