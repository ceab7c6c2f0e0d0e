package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ccrayp/portfolio-api/internal/config"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
)

// PasswordVerifier compares a hashed password with a plaintext candidate.
// Compare returns nil on a match.
type PasswordVerifier interface {
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// Compare implements PasswordVerifier.
func (BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Authenticator checks login attempts against the single admin credential
// and issues tokens for successful ones.
type Authenticator struct {
	username     string
	passwordHash string
	verifier     PasswordVerifier
	tokens       JWTService
	logger       *slog.Logger
}

// NewAuthenticator creates an Authenticator for the admin credential in cfg.
// cfg.AdminPasswordHash must already be populated (config.Load does this).
func NewAuthenticator(
	cfg config.AuthConfig,
	tokens JWTService,
	verifier PasswordVerifier,
	logger *slog.Logger,
) (*Authenticator, error) {
	if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin username and password hash are required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("jwt service cannot be nil")
	}
	if verifier == nil {
		verifier = BcryptVerifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Authenticator{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		verifier:     verifier,
		tokens:       tokens,
		logger:       logger.With("component", "authenticator"),
	}, nil
}

// Login returns a signed access token when username and password match the
// admin credential, and ErrInvalidCredentials otherwise. The password hash is
// always checked so a wrong username costs as much as a wrong password.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passErr := a.verifier.Compare(a.passwordHash, password)

	if !userOK || passErr != nil {
		log.Warn("login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(ctx, a.username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("admin logged in")
	return token, nil
}

// Verify validates tokenString and returns the identity it was issued for.
func (a *Authenticator) Verify(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}
	claims, err := a.tokens.ValidateToken(ctx, tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
