package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ccrayp/portfolio-api/internal/platform/logger"
	"github.com/ccrayp/portfolio-api/internal/redact"
)

// MessageResponse is the body of every error and of the update/delete
// acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// InvalidIDResponse echoes the rejected id back to the client.
type InvalidIDResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if traceID := GetTraceID(r.Context()); traceID != "" {
		w.Header().Set(TraceIDHeader, traceID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithMessage writes {"message": message} with status.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithError writes a JSON error response and logs it at debug level.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithMessage(w, r, status, message)
}

// RespondWithInternalError reports an unexpected failure as
// "Internal error. <detail>". The detail is redacted before it is logged or
// sent, so connection strings and secrets never leave the process.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	detail := redact.Error(err)

	logger.FromContext(r.Context()).LogAttrs(r.Context(), slog.LevelError, "API error response",
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", http.StatusInternalServerError),
		slog.String("error", detail),
		slog.String("error_type", fmt.Sprintf("%T", err)))

	RespondWithMessage(w, r, http.StatusInternalServerError, "Internal error. "+detail)
}
