package auth

import (
	"context"

	"github.com/paylite/payroll-backend-go/internal/domain/auth"
	"github.com/paylite/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl authenticates the single operator of the engine and
// issues access tokens. There are no user records; one bcrypt hash from
// the configuration guards the whole API.
type AuthServiceImpl struct {
	passwordHash string
	jwtService   jwt.Service
}

func NewAuthService(passwordHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken("admin")
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
