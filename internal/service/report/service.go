package report

import (
	"context"

	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/domain/report"
	"github.com/paylite/payroll-backend-go/internal/domain/state"
	"github.com/paylite/payroll-backend-go/internal/pkg/appstate"
	payrollService "github.com/paylite/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

type ReportServiceImpl struct {
	st *appstate.Manager
}

func NewReportService(st *appstate.Manager) report.ReportService {
	return &ReportServiceImpl{st: st}
}

func (s *ReportServiceImpl) Quarterly(ctx context.Context, quarter int) (report.QuarterlyReport, error) {
	if quarter < 1 || quarter > 4 {
		return report.QuarterlyReport{}, report.ErrInvalidQuarter
	}

	result := report.QuarterlyReport{
		Quarter:        quarter,
		TaxesRounded:   payroll.NewTaxSet(),
		TaxesUnrounded: payroll.NewTaxSet(),
	}
	err := s.st.Read(func(st *state.AppState) error {
		result.TaxYear = st.Settings.TaxYear

		for i := range st.Employees {
			emp := &st.Employees[i]
			for j := range emp.Periods {
				p := &emp.Periods[j]
				if p.PayDate.Year() != st.Settings.TaxYear {
					continue
				}
				if (int(p.PayDate.Month())-1)/3+1 != quarter {
					continue
				}
				if !p.Computed() {
					continue
				}

				result.GrossPay = result.GrossPay.Add(p.GrossPay)
				for _, line := range payroll.TaxLines {
					result.TaxesRounded[line] = result.TaxesRounded[line].Add(p.TaxesRounded.Get(line))
					result.TaxesUnrounded[line] = result.TaxesUnrounded[line].Add(p.TaxesUnrounded.Get(line))
				}
				result.PeriodCount++
			}
		}

		ficaMedicareLines := []payroll.TaxLine{payroll.TaxFICA, payroll.TaxMedicare}
		reported := result.TaxesRounded.Sum(ficaMedicareLines).Mul(two)
		computed := result.TaxesUnrounded.Sum(ficaMedicareLines).Mul(two)
		result.FractionalCents = reported.Sub(computed)
		return nil
	})
	return result, err
}

func (s *ReportServiceImpl) Annual(ctx context.Context) (report.AnnualReport, error) {
	var result report.AnnualReport
	err := s.st.Read(func(st *state.AppState) error {
		result.TaxYear = st.Settings.TaxYear
		result.Employees = make([]report.AnnualEmployeeSummary, 0, len(st.Employees))

		for i := range st.Employees {
			emp := &st.Employees[i]
			ytd := payrollService.BuildYearToDate(st.Settings, emp, 0)

			result.Employees = append(result.Employees, report.AnnualEmployeeSummary{
				EmployeeID:              emp.ID,
				EmployeeName:            emp.Name,
				GrossPay:                ytd.GrossPay,
				SocialSecurityWages:     ytd.SocialSecurityWages,
				FUTAWages:               ytd.FUTAWages,
				AdditionalMedicareWages: ytd.AdditionalMedicareWages,
				TaxesRounded:            ytd.TaxesRounded,
				TaxesWithheld:           ytd.TaxesWithheld,
				NetPay:                  ytd.NetPay,
			})
			result.GrossPay = result.GrossPay.Add(ytd.GrossPay)
		}
		return nil
	})
	return result, err
}
