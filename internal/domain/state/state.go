// Package state defines the whole-application aggregate and the opaque
// snapshot persistence contract. The aggregate is passed by reference
// through one owning manager; nothing in the engine holds ambient
// global state.
package state

import (
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
)

// AppState is the entire application aggregate: settings, employees with
// their period histories, and the cash register. It is serialized as one
// opaque nested record; the snapshot stores never look inside it.
type AppState struct {
	Settings  payroll.Settings    `json:"settings"`
	Employees []employee.Employee `json:"employees"`
	Register  []register.Entry    `json:"register"`
}

// Employee returns a pointer into the aggregate, or nil.
func (s *AppState) Employee(id string) *employee.Employee {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i]
		}
	}
	return nil
}

// RemoveEmployee deletes the employee and its payroll-derived register
// entries. Manual entries are untouched. Reports whether it existed.
func (s *AppState) RemoveEmployee(id string) bool {
	idx := -1
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.Employees = append(s.Employees[:idx], s.Employees[idx+1:]...)

	kept := s.Register[:0]
	for _, e := range s.Register {
		if e.Source == register.SourcePayroll && e.PayrollKey != nil && e.PayrollKey.EmployeeID == id {
			continue
		}
		kept = append(kept, e)
	}
	s.Register = kept
	return true
}
