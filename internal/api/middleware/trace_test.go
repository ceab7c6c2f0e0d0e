package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	var traceID string
	var hasLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		hasLogger = logger.FromContext(r.Context()) != nil
	})

	t.Run("uses chi request id", func(t *testing.T) {
		h := chimw.RequestID(NewTraceMiddleware(nil)(next))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(chimw.RequestIDHeader, "req-123")

		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "req-123", traceID)
		assert.True(t, hasLogger)
	})

	t.Run("generates id without request id middleware", func(t *testing.T) {
		traceID = ""
		h := NewTraceMiddleware(nil)(next)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, traceID, 36)
	})
}
