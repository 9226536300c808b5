package auth

import "github.com/paylite/payroll-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
