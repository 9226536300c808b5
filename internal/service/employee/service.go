package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	st *appstate.Manager
}

func NewEmployeeService(st *appstate.Manager) employee.EmployeeService {
	return &EmployeeServiceImpl{st: st}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", *req.HireDate)
	}

	emp := employee.Employee{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		HireDate:           hireDate,
		HourlyRate:         payroll.CoerceAmount(req.HourlyRate),
		OvertimeMultiplier: coerceMultiplier(req.OvertimeMultiplier, "1.5"),
		HolidayMultiplier:  coerceMultiplier(req.HolidayMultiplier, "1"),
		PTOAccrualRate:     payroll.CoerceAmount(req.PTOAccrualRate),
		TaxRates:           coerceTaxRates(req.TaxRates),
		Remainders:         payroll.NewTaxSet(),
	}

	var result employee.EmployeeResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		st.Employees = append(st.Employees, emp)
		result = mapToEmployeeResponse(&st.Employees[len(st.Employees)-1])
		return nil
	})
	return result, err
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	var result employee.EmployeeResponse
	err := s.st.Read(func(st *state.AppState) error {
		emp := st.Employee(id)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		result = mapToEmployeeResponse(emp)
		return nil
	})
	return result, err
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	var result []employee.EmployeeResponse
	err := s.st.Read(func(st *state.AppState) error {
		result = make([]employee.EmployeeResponse, 0, len(st.Employees))
		for i := range st.Employees {
			result = append(result, mapToEmployeeResponse(&st.Employees[i]))
		}
		return nil
	})
	return result, err
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	var result employee.EmployeeResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		emp := st.Employee(id)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}

		if req.Name != nil {
			if *req.Name == "" {
				return employee.ErrNameRequired
			}
			emp.Name = *req.Name
		}
		if req.HourlyRate != nil {
			emp.HourlyRate = payroll.CoerceAmount(*req.HourlyRate)
		}
		if req.OvertimeMultiplier != nil {
			emp.OvertimeMultiplier = payroll.CoerceAmount(*req.OvertimeMultiplier)
		}
		if req.HolidayMultiplier != nil {
			emp.HolidayMultiplier = payroll.CoerceAmount(*req.HolidayMultiplier)
		}
		if req.PTOAccrualRate != nil {
			emp.PTOAccrualRate = payroll.CoerceAmount(*req.PTOAccrualRate)
		}
		if req.TaxRates != nil {
			rates := coerceTaxRates(req.TaxRates)
			for line, v := range rates {
				emp.TaxRates[line] = v
			}
		}

		result = mapToEmployeeResponse(emp)
		return nil
	})
	return result, err
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.st.Write(ctx, func(st *state.AppState) error {
		if !st.RemoveEmployee(id) {
			return employee.ErrEmployeeNotFound
		}
		return nil
	})
}

func (s *EmployeeServiceImpl) AddDeduction(ctx context.Context, employeeID string, req employee.AddDeductionRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	effective := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveDate != nil && *req.EffectiveDate != "" {
		effective, _ = time.Parse("2006-01-02", *req.EffectiveDate)
	}

	var result employee.EmployeeResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		emp := st.Employee(employeeID)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		emp.Deductions = append(emp.Deductions, employee.Deduction{
			ID:            uuid.NewString(),
			Name:          req.Name,
			Type:          employee.DeductionType(req.Type),
			Amount:        payroll.CoerceAmount(req.Amount),
			EffectiveDate: &effective,
		})
		result = mapToEmployeeResponse(emp)
		return nil
	})
	return result, err
}

func (s *EmployeeServiceImpl) RemoveDeduction(ctx context.Context, employeeID, deductionID string) (employee.EmployeeResponse, error) {
	var result employee.EmployeeResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		emp := st.Employee(employeeID)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		for i := range emp.Deductions {
			if emp.Deductions[i].ID == deductionID {
				emp.Deductions = append(emp.Deductions[:i], emp.Deductions[i+1:]...)
				result = mapToEmployeeResponse(emp)
				return nil
			}
		}
		return employee.ErrDeductionNotFound
	})
	return result, err
}

// ========== HELPERS ==========

func coerceMultiplier(s, fallback string) decimal.Decimal {
	if s == "" {
		s = fallback
	}
	return payroll.CoerceAmount(s)
}

func coerceTaxRates(rates map[string]string) payroll.TaxSet {
	set := payroll.NewTaxSet()
	for _, line := range payroll.TaxLines {
		if v, ok := rates[string(line)]; ok {
			set[line] = payroll.CoerceAmount(v)
		}
	}
	return set
}

func mapToEmployeeResponse(emp *employee.Employee) employee.EmployeeResponse {
	rates := make(map[string]decimal.Decimal, len(payroll.TaxLines))
	for _, line := range payroll.TaxLines {
		rates[string(line)] = emp.TaxRates.Get(line)
	}

	deductions := emp.Deductions
	if deductions == nil {
		deductions = []employee.Deduction{}
	}

	return employee.EmployeeResponse{
		ID:                 emp.ID,
		Name:               emp.Name,
		HireDate:           emp.HireDate.Format("2006-01-02"),
		HourlyRate:         emp.HourlyRate,
		OvertimeMultiplier: emp.OvertimeMultiplier,
		HolidayMultiplier:  emp.HolidayMultiplier,
		TaxRates:           rates,
		PTOAccrualRate:     emp.PTOAccrualRate,
		PTOBalance:         emp.PTOBalance(),
		Deductions:         deductions,
		PeriodCount:        len(emp.Periods),
	}
}
