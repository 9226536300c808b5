package payroll

import "errors"

var (
	ErrPeriodNotFound      = errors.New("pay period not found")
	ErrPeriodsNotGenerated = errors.New("pay periods not generated for this employee")

	// ErrRemainderOutOfRange signals a committed remainder whose
	// magnitude reached a full cent. This is a logic defect, never an
	// input problem; callers must discard the staged results.
	ErrRemainderOutOfRange = errors.New("tax remainder reached one cent")
)
