// Package logger provides slog-based structured logging with per-call context
// extraction and optional Sentry error reporting.
//
// Every log line is JSON on stdout. Context extractors pull request-scoped
// values (request IDs and the like) out of the context at log time, so
// handlers never need to thread those attributes manually:
//
//	log := logger.New(server.RequestIDExtractor())
//	log.InfoContext(ctx, "email dispatched", slog.String("email_id", id))
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor extracts a slog attribute from context. Returning false
// skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// New creates a JSON-formatted stdout logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(newExtractorHandler(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// extractorHandler wraps a slog.Handler and injects context-extracted
// attributes during logging. Extraction happens per log call so fresh
// request-scoped values are captured.
type extractorHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// newExtractorHandler filters nil extractors to prevent runtime panics from
// misconfigured options.
func newExtractorHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &extractorHandler{next: next, extractors: clean}
}

func (h *extractorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *extractorHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *extractorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &extractorHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *extractorHandler) WithGroup(name string) slog.Handler {
	return &extractorHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
