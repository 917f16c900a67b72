package server

import (
	"context"
	"net/http"
	"strings"
)

// headersKey is the context key under which inbound HTTP headers are stored.
type headersKey struct{}

// apiKeyHeaders are the accepted credential header names, checked in order.
// http.Header.Get matches names case-insensitively.
var apiKeyHeaders = []string{"X-Api-Key", "X-Resend-Api-Key"}

// senderHeader carries the sender address when it is not passed as a tool argument.
const senderHeader = "X-Sender-Email"

// withInboundHeaders copies inbound HTTP headers into the request context so
// tool handlers can read per-call credentials. The credential lives only for
// the duration of the call; nothing is persisted.
func withInboundHeaders(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, headersKey{}, r.Header.Clone())
}

func inboundHeaders(ctx context.Context) http.Header {
	h, _ := ctx.Value(headersKey{}).(http.Header)
	return h
}

// apiKeyFromContext returns the bearer credential from the inbound headers,
// or "" when none was supplied.
func apiKeyFromContext(ctx context.Context) string {
	h := inboundHeaders(ctx)
	if h == nil {
		return ""
	}
	for _, name := range apiKeyHeaders {
		if v := strings.TrimSpace(h.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// senderFromContext returns the sender address from the inbound headers,
// or "" when none was supplied.
func senderFromContext(ctx context.Context) string {
	h := inboundHeaders(ctx)
	if h == nil {
		return ""
	}
	return strings.TrimSpace(h.Get(senderHeader))
}
