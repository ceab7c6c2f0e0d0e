package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/mocks"
	"github.com/ccrayp/portfolio-api/internal/service/auth"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "cookie fallback", cookie: "from-cookie", want: "from-cookie"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "other", want: "abc"},
		{name: "nothing sent", wantErr: auth.ErrMissingToken},
		{name: "wrong scheme", header: "Basic abc", wantErr: auth.ErrInvalidToken},
		{name: "empty token", header: "Bearer ", wantErr: auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}

			got, err := tokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "good":
				return &auth.Claims{Subject: "admin"}, nil
			case "old":
				return nil, auth.ErrExpiredToken
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
	m := NewAuthMiddleware(jwtService)

	var identity string
	var reached bool
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		identity, _ = shared.GetIdentity(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid", "Bearer good", http.StatusNoContent, ""},
		{"expired", "Bearer old", http.StatusUnauthorized, msgInvalidToken},
		{"forged", "Bearer forged", http.StatusUnauthorized, msgInvalidToken},
		{"missing", "", http.StatusUnauthorized, msgMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached, identity = false, ""
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.True(t, reached)
				assert.Equal(t, "admin", identity)
				return
			}
			assert.False(t, reached, "next handler must not run")
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
