// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: JSON output for
// production and a colorized console handler (tint) for local development.
// Request-scoped loggers travel through context.Context.
package logger
