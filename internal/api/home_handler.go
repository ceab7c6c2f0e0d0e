package api

import (
	_ "embed"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/api/shared"
	"github.com/ccrayp/portfolio-api/internal/platform/logger"
)

//go:embed static/index.html
var indexHTML []byte

const msgPathNotFound = "path wasn't found"

// rootMethodResponse is the 404 body for non-GET requests to /.
type rootMethodResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Root serves the landing page. It answers GET only; every other method is
// a 404 rather than a 405.
func Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		shared.RespondWithJSON(w, r, http.StatusNotFound, rootMethodResponse{
			Status:  "error",
			Message: "incorrect method <" + r.Method + ">",
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		logger.FromContext(r.Context()).Error("failed to write index page", "error", err)
	}
}

// Ping is the unauthenticated liveness route the keep-alive loop hits.
func Ping(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithMessage(w, r, http.StatusOK, "pong")
}

// Health answers load balancer checks with a plain OK.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write health check response", "error", err)
	}
}

// NotFound is the router-wide 404 handler.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgPathNotFound)
}

// MethodNotAllowed is the router-wide 405 handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
