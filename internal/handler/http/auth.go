package http

import (
	"encoding/json"
	"net/http"

	"github.com/paylite/payroll-backend-go/internal/domain/auth"
	"github.com/paylite/payroll-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
