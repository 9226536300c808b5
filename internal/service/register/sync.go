package register

import (
	"time"

	"github.com/google/uuid"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/shopspring/decimal"
)

// SyncPeriodEntry reconciles the register against one recomputed
// period. The prior entry for the key, if any, is removed and its
// manually-set reconciled flag preserved; a fresh debit entry is
// inserted only when the employer cost is positive, so clearing a
// period's hours deletes its entry. At most one payroll-derived entry
// ever exists per key.
func SyncPeriodEntry(entries []register.Entry, key register.PayrollKey, payDate time.Time, description string, employerCost decimal.Decimal) []register.Entry {
	reconciled := false
	id := ""

	out := make([]register.Entry, 0, len(entries)+1)
	for _, e := range entries {
		if e.Matches(key) {
			reconciled = e.Reconciled
			id = e.ID
			continue
		}
		out = append(out, e)
	}

	if !employerCost.IsPositive() {
		return out
	}

	if id == "" {
		id = uuid.NewString()
	}
	k := key
	return append(out, register.Entry{
		ID:          id,
		Date:        payDate,
		Description: description,
		Debit:       employerCost,
		Credit:      decimal.Zero,
		Reconciled:  reconciled,
		Source:      register.SourcePayroll,
		PayrollKey:  &k,
	})
}
