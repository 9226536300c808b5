package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylite/payroll-backend-go/internal/domain/employee"
	"github.com/paylite/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AddDeduction(w http.ResponseWriter, r *http.Request)
	RemoveDeduction(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

func (h *employeeHandlerImpl) AddDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.AddDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.AddDeduction(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction added", result)
}

func (h *employeeHandlerImpl) RemoveDeduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deductionID := chi.URLParam(r, "deductionId")
	if id == "" || deductionID == "" {
		response.BadRequest(w, "Employee ID and deduction ID are required", nil)
		return
	}

	result, err := h.employeeService.RemoveDeduction(r.Context(), id, deductionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
