package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylite/payroll-backend-go/internal/domain/register"
	"github.com/paylite/payroll-backend-go/internal/handler/http/response"
)

type RegisterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	SetReconciled(w http.ResponseWriter, r *http.Request)
	DeleteManual(w http.ResponseWriter, r *http.Request)
}

type registerHandlerImpl struct {
	registerService register.RegisterService
}

func NewRegisterHandler(registerService register.RegisterService) RegisterHandler {
	return &registerHandlerImpl{registerService: registerService}
}

func (h *registerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.registerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *registerHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req register.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.registerService.CreateManual(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Register entry created", result)
}

func (h *registerHandlerImpl) SetReconciled(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	var req register.SetReconciledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.registerService.SetReconciled(r.Context(), id, req.Reconciled)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *registerHandlerImpl) DeleteManual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.registerService.DeleteManual(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Register entry deleted", nil)
}
