package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

const (
	msgInvalidCredentials = "Error. Invalid credentials"
	msgProtectedRoute     = "Protected route"
)

// LoginService checks credentials and issues access tokens.
// *auth.Authenticator implements it.
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler serves /api/login and /api/protected.
type AuthHandler struct {
	login  LoginService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(login LoginService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		login:  login,
		logger: logger.With("handler", "auth"),
	}
}

// Login handles POST /api/login. Any credential mismatch is the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	token, err := h.login.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{AccessToken: token})
}

// Protected handles GET /api/protected and echoes the token subject.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	identity, ok := shared.GetIdentity(r.Context())
	if !ok {
		h.logger.Error("protected route reached without identity in context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Error. Missing authorization token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProtectedResponse{LoggedInAs: identity, Message: msgProtectedRoute})
}
