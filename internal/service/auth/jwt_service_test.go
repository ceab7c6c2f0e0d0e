package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccrayp/portfolio-api/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(t *testing.T, secret string, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{JWTSecret: secret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)
	impl.timeFunc = now
	return impl
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, testSecret, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(60*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) func() time.Time {
		return func() time.Time { return fixedTime.Add(d) }
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		now     func() time.Time
		wantErr error
	}{
		{
			name: "valid token just before expiry",
			token: func(t *testing.T) string {
				tok, err := newTestJWTService(t, testSecret, at(0)).GenerateToken(context.Background(), "admin")
				require.NoError(t, err)
				return tok
			},
			now: at(59 * time.Minute),
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok, err := newTestJWTService(t, testSecret, at(0)).GenerateToken(context.Background(), "admin")
				require.NoError(t, err)
				return tok
			},
			now:     at(61 * time.Minute),
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other := "another-secret-that-is-long-enough-too"
				tok, err := newTestJWTService(t, other, at(0)).GenerateToken(context.Background(), "admin")
				require.NoError(t, err)
				return tok
			},
			now:     at(0),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   func(*testing.T) string { return "not.a.jwt" },
			now:     at(0),
			wantErr: ErrInvalidToken,
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "admin",
					ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
				}
				tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tok
			},
			now:     at(0),
			wantErr: ErrInvalidToken,
		},
		{
			name: "token without expiry",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).
					SignedString([]byte(testSecret))
				require.NoError(t, err)
				return tok
			},
			now:     at(0),
			wantErr: ErrInvalidToken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestJWTService(t, testSecret, tc.now)
			claims, err := svc.ValidateToken(context.Background(), tc.token(t))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
		})
	}
}

func TestNewJWTServiceRejectsBadConfig(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err)
}
