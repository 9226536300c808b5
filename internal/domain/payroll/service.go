package payroll

import "context"

// PayrollService is the calculation surface exposed to collaborators
// (HTTP handlers, report generators).
type PayrollService interface {
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// GeneratePeriods derives the period skeletons for the configured tax
	// year for every employee that has none yet. With no anchor date it
	// generates nothing and reports zero employees.
	GeneratePeriods(ctx context.Context) (GenerateResponse, error)

	// Periods returns the employee's ordered period list.
	Periods(ctx context.Context, employeeID string) ([]PayPeriod, error)

	// Recalculate stores the entered hours on one period and recomputes
	// either that period alone or the employee's whole history, depending
	// on whether later periods already carry hours. It returns every
	// period, recomputed or not, in sequence order.
	Recalculate(ctx context.Context, employeeID string, seq int, hours Hours) ([]PayPeriod, error)

	// YearToDate aggregates computed periods with Seq <= throughSeq.
	YearToDate(ctx context.Context, employeeID string, throughSeq int) (YearToDate, error)
}
