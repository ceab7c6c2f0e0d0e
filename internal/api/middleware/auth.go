package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/redact"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

// AccessTokenCookie is the cookie checked when no Authorization header is sent.
const AccessTokenCookie = "access_token_cookie"

const (
	msgMissingToken = "Error. Missing authorization token"
	msgInvalidToken = "Error. Invalid or expired token"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token and stores its subject in the
// request context. Requests without a valid token get a 401 and never reach
// next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := tokenFromRequest(r)
		if err != nil {
			msg := msgInvalidToken
			if errors.Is(err, auth.ErrMissingToken) {
				msg = msgMissingToken
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msg)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) && !errors.Is(err, auth.ErrExpiredToken) {
				logger.FromContext(r.Context()).Warn("unexpected token validation error",
					"error", redact.Error(err))
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := shared.WithIdentity(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest reads "Authorization: Bearer <token>", falling back to
// the access token cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", auth.ErrInvalidToken
		}
		return strings.TrimSpace(token), nil
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", auth.ErrMissingToken
}
