package shared

import (
	"context"
)

// ContextKey is the type of the context keys set by the API layer.
type ContextKey string

const (
	// IdentityContextKey holds the subject of the validated access token.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID on every response.
	TraceIDHeader = "X-Trace-ID"
)

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// WithIdentity returns a copy of ctx carrying the authenticated subject.
func WithIdentity(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, IdentityContextKey, subject)
}

// GetIdentity returns the authenticated subject, if any.
func GetIdentity(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(IdentityContextKey).(string)
	return subject, ok
}
