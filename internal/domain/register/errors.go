package register

import "errors"

var (
	ErrEntryNotFound = errors.New("register entry not found")
	ErrNotManual     = errors.New("payroll-derived entries cannot be edited directly")
)
