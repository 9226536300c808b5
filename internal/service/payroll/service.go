package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	registerService "github.com/paylite/payroll-backend-go/internal/service/register"
)

type PayrollServiceImpl struct {
	st        *appstate.Manager
	generator *PeriodGenerator
}

func NewPayrollService(st *appstate.Manager) payroll.PayrollService {
	return &PayrollServiceImpl{
		st:        st,
		generator: NewPeriodGenerator(),
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	var result payroll.SettingsResponse
	err := s.st.Read(func(st *state.AppState) error {
		result = mapToSettingsResponse(st.Settings)
		return nil
	})
	return result, err
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	var result payroll.SettingsResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		if req.PayFrequency != nil {
			st.Settings.PayFrequency = payroll.PayFrequency(*req.PayFrequency)
		}
		if req.FirstPeriodStart != nil {
			if *req.FirstPeriodStart == "" {
				st.Settings.FirstPeriodStart = nil
			} else {
				anchor, _ := time.Parse("2006-01-02", *req.FirstPeriodStart)
				st.Settings.FirstPeriodStart = &anchor
			}
		}
		if req.PayDateOffsetDays != nil {
			st.Settings.PayDateOffsetDays = *req.PayDateOffsetDays
		}
		if req.TaxYear != nil {
			st.Settings.TaxYear = *req.TaxYear
		}
		if req.SocialSecurityWageBase != nil {
			st.Settings.SocialSecurityWageBase = payroll.CoerceAmount(*req.SocialSecurityWageBase)
		}
		if req.FUTAWageBase != nil {
			st.Settings.FUTAWageBase = payroll.CoerceAmount(*req.FUTAWageBase)
		}
		if req.AdditionalMedicareThreshold != nil {
			st.Settings.AdditionalMedicareThreshold = payroll.CoerceAmount(*req.AdditionalMedicareThreshold)
		}
		result = mapToSettingsResponse(st.Settings)
		return nil
	})
	return result, err
}

// ========== PERIOD GENERATION ==========

func (s *PayrollServiceImpl) GeneratePeriods(ctx context.Context) (payroll.GenerateResponse, error) {
	var result payroll.GenerateResponse
	err := s.st.Write(ctx, func(st *state.AppState) error {
		result.TaxYear = st.Settings.TaxYear

		skeletons := s.generator.Generate(st.Settings)
		if len(skeletons) == 0 {
			// No anchor date configured: nothing to compute, not an error.
			return nil
		}
		result.PeriodsPerEmployee = len(skeletons)

		for i := range st.Employees {
			if len(st.Employees[i].Periods) > 0 {
				continue
			}
			st.Employees[i].Periods = clonePeriods(skeletons)
			st.Employees[i].Remainders = payroll.NewTaxSet()
			result.EmployeesGenerated++
		}
		return nil
	})
	return result, err
}

func (s *PayrollServiceImpl) Periods(ctx context.Context, employeeID string) ([]payroll.PayPeriod, error) {
	var result []payroll.PayPeriod
	err := s.st.Read(func(st *state.AppState) error {
		emp := st.Employee(employeeID)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		result = clonePeriods(emp.Periods)
		return nil
	})
	return result, err
}

// ========== RECALCULATION ==========

func (s *PayrollServiceImpl) Recalculate(ctx context.Context, employeeID string, seq int, hours payroll.Hours) ([]payroll.PayPeriod, error) {
	var result []payroll.PayPeriod
	err := s.st.Write(ctx, func(st *state.AppState) error {
		emp := st.Employee(employeeID)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		if len(emp.Periods) == 0 {
			return payroll.ErrPeriodsNotGenerated
		}

		// Stage on a clone; a failed replay must not leave remainders
		// correct for some periods and stale for others.
		staged := emp.Clone()
		recalc := NewRecalculator(st.Settings)
		rewritten, err := recalc.Apply(&staged, seq, hours)
		if err != nil {
			return err
		}
		*emp = staged

		for _, periodSeq := range rewritten {
			p := emp.Period(periodSeq)
			key := register.PayrollKey{
				EmployeeID: emp.ID,
				PeriodSeq:  periodSeq,
				TaxYear:    st.Settings.TaxYear,
			}
			description := fmt.Sprintf("Payroll: %s, period %d of %d", emp.Name, periodSeq, st.Settings.TaxYear)
			st.Register = registerService.SyncPeriodEntry(st.Register, key, p.PayDate, description, p.EmployerCost())
		}

		result = clonePeriods(emp.Periods)
		return nil
	})
	return result, err
}

// ========== YEAR TO DATE ==========

func (s *PayrollServiceImpl) YearToDate(ctx context.Context, employeeID string, throughSeq int) (payroll.YearToDate, error) {
	var result payroll.YearToDate
	err := s.st.Read(func(st *state.AppState) error {
		emp := st.Employee(employeeID)
		if emp == nil {
			return employee.ErrEmployeeNotFound
		}
		result = BuildYearToDate(st.Settings, emp, throughSeq)
		return nil
	})
	return result, err
}

// BuildYearToDate recomputes the aggregate from the chronological
// period history; no running totals are cached anywhere.
func BuildYearToDate(settings payroll.Settings, emp *employee.Employee, throughSeq int) payroll.YearToDate {
	if throughSeq <= 0 {
		for i := range emp.Periods {
			if emp.Periods[i].Seq > throughSeq {
				throughSeq = emp.Periods[i].Seq
			}
		}
	}

	ytd := payroll.YearToDate{
		EmployeeID:     emp.ID,
		ThroughSeq:     throughSeq,
		TaxesRounded:   payroll.NewTaxSet(),
		TaxesUnrounded: payroll.NewTaxSet(),
	}

	for i := range emp.Periods {
		p := &emp.Periods[i]
		if p.Seq > throughSeq {
			continue
		}

		ytd.GrossPay = ytd.GrossPay.Add(p.GrossPay)
		for _, line := range payroll.TaxLines {
			ytd.TaxesRounded[line] = ytd.TaxesRounded[line].Add(p.TaxesRounded.Get(line))
			ytd.TaxesUnrounded[line] = ytd.TaxesUnrounded[line].Add(p.TaxesUnrounded.Get(line))
		}
		ytd.TaxesWithheld = ytd.TaxesWithheld.Add(p.EmployeeTaxTotal)
		ytd.DeductionTotal = ytd.DeductionTotal.Add(p.DeductionTotal)
		ytd.NetPay = ytd.NetPay.Add(p.NetPay)

		ytd.SocialSecurityWages = ytd.SocialSecurityWages.Add(
			TaxableBelowCeiling(emp.Periods, p.Seq, settings.SocialSecurityWageBase))
		ytd.FUTAWages = ytd.FUTAWages.Add(
			TaxableBelowCeiling(emp.Periods, p.Seq, settings.FUTAWageBase))
		ytd.AdditionalMedicareWages = ytd.AdditionalMedicareWages.Add(
			TaxableAboveThreshold(emp.Periods, p.Seq, settings.AdditionalMedicareThreshold))

		ytd.PTOAccrued = ytd.PTOAccrued.Add(p.PTOAccrued)
		ytd.PTOUsed = ytd.PTOUsed.Add(p.Hours.PTO)
	}

	ytd.PTOBalance = ytd.PTOAccrued.Sub(ytd.PTOUsed)
	return ytd
}

// ========== HELPERS ==========

func mapToSettingsResponse(s payroll.Settings) payroll.SettingsResponse {
	var anchor *string
	if s.FirstPeriodStart != nil {
		str := s.FirstPeriodStart.Format("2006-01-02")
		anchor = &str
	}
	return payroll.SettingsResponse{
		PayFrequency:                string(s.PayFrequency),
		FirstPeriodStart:            anchor,
		PayDateOffsetDays:           s.PayDateOffsetDays,
		TaxYear:                     s.TaxYear,
		SocialSecurityWageBase:      s.SocialSecurityWageBase,
		FUTAWageBase:                s.FUTAWageBase,
		AdditionalMedicareThreshold: s.AdditionalMedicareThreshold,
	}
}

func clonePeriods(periods []payroll.PayPeriod) []payroll.PayPeriod {
	out := make([]payroll.PayPeriod, len(periods))
	for i, p := range periods {
		p.TaxesRounded = p.TaxesRounded.Clone()
		p.TaxesUnrounded = p.TaxesUnrounded.Clone()
		p.Deductions = append([]payroll.AppliedDeduction(nil), p.Deductions...)
		out[i] = p
	}
	return out
}
