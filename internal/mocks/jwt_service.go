package mocks

import (
	"context"

	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, subject string) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, subject string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// MockLoginService implements api.LoginService.
type MockLoginService struct {
	LoginFn func(ctx context.Context, username, password string) (string, error)
	Calls   int
}

// Login calls LoginFn.
func (m *MockLoginService) Login(ctx context.Context, username, password string) (string, error) {
	m.Calls++
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return "", nil
}
