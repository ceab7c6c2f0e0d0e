package keepalive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccrayp/portfolio-api/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPinger(t *testing.T, url string) *Pinger {
	t.Helper()
	p, err := NewPinger(config.KeepAliveConfig{URL: url, IntervalSeconds: 1}, quietLogger(),
		WithRetry(2, time.Millisecond))
	require.NoError(t, err)
	return p
}

func TestNewPingerRequiresURL(t *testing.T) {
	_, err := NewPinger(config.KeepAliveConfig{IntervalSeconds: 10}, nil)
	assert.Error(t, err)

	_, err = NewPinger(config.KeepAliveConfig{URL: "http://x", IntervalSeconds: 0}, nil)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			assert.Equal(t, "/api/ping", r.URL.Path)
			_, _ = w.Write([]byte(`{"message":"pong"}`))
		}))
		defer srv.Close()

		require.NoError(t, newTestPinger(t, srv.URL+"/api/ping").Ping(context.Background()))
		assert.EqualValues(t, 1, hits.Load())
	})

	t.Run("retries server errors", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, newTestPinger(t, srv.URL).Ping(context.Background()))
		assert.EqualValues(t, 3, hits.Load())
	})

	t.Run("gives up after retries", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := newTestPinger(t, srv.URL).Ping(context.Background())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.EqualValues(t, 3, hits.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		err := newTestPinger(t, srv.URL).Ping(context.Background())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.EqualValues(t, 1, hits.Load())
	})
}

func TestStartStop(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	p := newTestPinger(t, srv.URL)
	p.interval = 10 * time.Millisecond

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return hits.Load() >= 2 }, time.Second, 5*time.Millisecond)
	p.Stop()

	after := hits.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, hits.Load(), "no pings after Stop")
}
