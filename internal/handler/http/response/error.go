package response

import (
	"errors"
	"net/http"

	"github.com/paylite/payroll-backend-go/internal/domain/auth"
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/paylite/payroll-backend-go/internal/domain/report"
	"github.com/paylite/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unknown references
// surface as 404s with empty data, never as crashes.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, employee.ErrNameRequired):
		BadRequest(w, "Employee name is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPeriodsNotGenerated):
		NotFound(w, "Pay periods not generated")
	case errors.Is(err, payroll.ErrRemainderOutOfRange):
		InternalServerError(w, "Tax remainder invariant violated")

	// Register domain errors
	case errors.Is(err, register.ErrEntryNotFound):
		NotFound(w, "Register entry not found")
	case errors.Is(err, register.ErrNotManual):
		Conflict(w, "Payroll-derived entries cannot be edited directly")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidQuarter):
		BadRequest(w, "Quarter must be between 1 and 4", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
