package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee, its period history and its
	// payroll-derived register entries. Manual register entries survive.
	Delete(ctx context.Context, id string) error

	AddDeduction(ctx context.Context, employeeID string, req AddDeductionRequest) (EmployeeResponse, error)
	RemoveDeduction(ctx context.Context, employeeID, deductionID string) (EmployeeResponse, error)
}
