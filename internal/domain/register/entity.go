package register

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source enum
type Source string

const (
	SourcePayroll Source = "payroll"
	SourceManual  Source = "manual"
)

// PayrollKey is the deterministic identity of a payroll-derived register
// entry. Recomputing a period replaces the entry with the same key
// rather than duplicating it.
type PayrollKey struct {
	EmployeeID string `json:"employee_id"`
	PeriodSeq  int    `json:"period_seq"`
	TaxYear    int    `json:"tax_year"`
}

// Entry - one cash-register line. Payroll-derived entries carry a
// PayrollKey; manual entries carry only their uuid and are never touched
// by recomputation.
type Entry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Reconciled  bool            `json:"reconciled"`
	Source      Source          `json:"source"`
	PayrollKey  *PayrollKey     `json:"payroll_key,omitempty"`
}

// Matches reports whether this is the payroll entry for the given key.
func (e Entry) Matches(key PayrollKey) bool {
	return e.Source == SourcePayroll && e.PayrollKey != nil && *e.PayrollKey == key
}
