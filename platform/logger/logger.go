// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with context values extracted.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}

	return l
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// DatabaseError logs database errors
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// ClassifierFallback logs a degraded AI classification for a single lead.
// Degraded results carry a neutral score, so without this entry they would
// be indistinguishable from genuine Medium classifications.
func (l *Logger) ClassifierFallback(leadID string, err error) {
	l.Warn("classifier_fallback",
		slog.String("lead_id", leadID),
		slog.String("error", err.Error()),
	)
}

// ScoringRun logs the summary of a completed scoring run.
func (l *Logger) ScoringRun(offerID string, leadsScored, fallbacks int, durationMs float64) {
	l.Info("scoring_run",
		slog.String("offer_id", offerID),
		slog.Int("leads_scored", leadsScored),
		slog.Int("ai_fallbacks", fallbacks),
		slog.Float64("duration_ms", durationMs),
	)
}

// IngestionResult logs the outcome of a lead CSV ingestion.
func (l *Logger) IngestionResult(accepted, rejected int) {
	l.Info("lead_ingestion",
		slog.Int("accepted", accepted),
		slog.Int("rejected", rejected),
	)
}
