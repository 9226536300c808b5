package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylite/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Settings
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)

	// Periods
	GeneratePeriods(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	UpdateHours(w http.ResponseWriter, r *http.Request)
	GetYearToDate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== SETTINGS ==========

func (h *payrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) GeneratePeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GeneratePeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay periods generated", result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.Periods(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateHours(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	seq, err := strconv.Atoi(chi.URLParam(r, "seq"))
	if employeeID == "" || err != nil || seq < 1 {
		response.BadRequest(w, "Employee ID and period sequence number are required", nil)
		return
	}

	var req payroll.UpdateHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Recalculate(r.Context(), employeeID, seq, req.ToHours())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetYearToDate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	throughSeq := 0
	if v := r.URL.Query().Get("through_seq"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "through_seq must be a number", nil)
			return
		}
		throughSeq = parsed
	}

	result, err := h.payrollService.YearToDate(r.Context(), employeeID, throughSeq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
