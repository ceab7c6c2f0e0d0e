package keepalive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ccrayp/portfolio-api/internal/config"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultRetries   = 2
	defaultRetryBase = time.Second
)

// ErrUnexpectedStatus is returned when the target answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected keep-alive response status")

// Pinger requests a fixed URL on an interval.
type Pinger struct {
	url       string
	interval  time.Duration
	client    *http.Client
	retries   uint64
	retryBase time.Duration
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option customises a Pinger.
type Option func(*Pinger)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Pinger) { p.client = c }
}

// WithRetry sets how many extra attempts a failed ping gets and the base of
// the exponential backoff between them.
func WithRetry(retries uint64, base time.Duration) Option {
	return func(p *Pinger) {
		p.retries = retries
		p.retryBase = base
	}
}

// NewPinger creates a Pinger from cfg. It returns an error when cfg is not
// enabled.
func NewPinger(cfg config.KeepAliveConfig, logger *slog.Logger, opts ...Option) (*Pinger, error) {
	if !cfg.Enabled() {
		return nil, errors.New("keep-alive url is not configured")
	}
	if cfg.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("keep-alive interval must be positive, got %d", cfg.IntervalSeconds)
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pinger{
		url:       cfg.URL,
		interval:  time.Duration(cfg.IntervalSeconds) * time.Second,
		client:    &http.Client{Timeout: defaultTimeout},
		retries:   defaultRetries,
		retryBase: defaultRetryBase,
		logger:    logger.With("component", "keepalive"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Ping performs one request, retrying transport errors and 5xx answers.
func (p *Pinger) Ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(p.retries, retry.NewExponential(p.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
		if err != nil {
			return fmt.Errorf("failed to build keep-alive request: %w", err)
		}

		resp, err := p.client.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("keep-alive request failed: %w", err))
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		switch {
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
		case resp.StatusCode >= 300:
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return nil
	})
}

// Start runs the ping loop in the background until Stop is called or ctx
// is cancelled.
func (p *Pinger) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Stop ends the loop and waits for an in-flight ping to finish.
func (p *Pinger) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Pinger) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("keep-alive loop started", "url", p.url, "interval", p.interval.String())

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("keep-alive loop stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := p.Ping(ctx); err != nil {
				if ctx.Err() != nil {
					continue
				}
				p.logger.Warn("keep-alive ping failed", "error", err)
				continue
			}
			p.logger.Debug("keep-alive ping succeeded", "duration_ms", time.Since(start).Milliseconds())
		}
	}
}
