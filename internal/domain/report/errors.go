package report

import "errors"

var ErrInvalidQuarter = errors.New("quarter must be between 1 and 4")
