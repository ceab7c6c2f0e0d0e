// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: a JSON handler with a
// configurable level is installed as the process default, and a request-scoped
// logger travels through context.Context so stores and services log with the
// caller's trace id attached.
package logger
