package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/resend-mcp/pkg/logger"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var seen string
	h := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(requestIDKey{}).(string)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_InboundPreserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "request id header", header: "X-Request-ID"},
		{name: "correlation id header", header: "X-Correlation-ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(requestIDKey{}).(string)
			}))

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(tt.header, "inbound-id")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, "inbound-id", seen)
			assert.Equal(t, "inbound-id", rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extractor := RequestIDExtractor()

	var captured string
	h := requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attr, ok := extractor(r.Context())
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		captured = attr.Value.String()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.NotEmpty(t, captured)

	_, ok := extractor(t.Context())
	assert.False(t, ok)
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	h := recoverer(logger.NewNope())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServerHandler_Healthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&MockDispatcher{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
