package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/google/uuid"

	"github.com/mailgate/resend-mcp/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// requestIDHeaders are the headers checked (in order) for an existing request ID.
var requestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// recoverStackSize caps the stack trace captured on panic.
const recoverStackSize = 4096

// requestID assigns a unique ID to each request. The ID is taken from inbound
// headers when present, generated otherwise, and echoed back in the
// X-Request-ID response header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		for _, name := range requestIDHeaders {
			if v := r.Header.Get(name); v != "" {
				id = v
				break
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDExtractor annotates log records with the request ID assigned by
// the request ID middleware. Pass it to logger.New or logger.NewWithSentry.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}

// recoverer converts handler panics into 500 responses and logs the stack.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					stack = stack[:runtime.Stack(stack, false)]
					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(stack)),
					)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
