package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// newHTTPServer applies the configured port and timeouts to handler.
func (app *application) newHTTPServer(handler http.Handler) *http.Server {
	s := app.config.Server
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      handler,
		ReadTimeout:  time.Duration(s.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(s.IdleTimeoutSeconds) * time.Second,
	}
}

// startHTTPServer serves until ctx is cancelled or the listener fails, then
// drains in-flight requests and releases application resources.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := app.newHTTPServer(router)

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	case err := <-serveErr:
		if err != nil {
			app.logger.Error("Server failed", "error", err)
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		if runErr == nil {
			runErr = fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return runErr
}
