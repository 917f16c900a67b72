// Package resend implements the email dispatcher against the Resend HTTP API.
//
// The client is stateless with respect to credentials: the API key travels
// with each Send call and is never stored, so one Client can serve requests
// authenticated as different Resend accounts.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mailgate/resend-mcp/pkg/logger"
	"github.com/mailgate/resend-mcp/pkg/mailer"
)

// maxResponseBytes caps how much of a provider response is read.
const maxResponseBytes = 1 << 20

// Client issues single-attempt email dispatches to the Resend API.
type Client struct {
	http    *http.Client
	log     *slog.Logger
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the audit logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Intended for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// New creates a Resend client. Connections are not reused between dispatches:
// each call opens its own connection, used once and closed.
func New(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		log:     logger.NewNope(),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{DisableKeepAlives: true},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send validates the message and issues one POST to the provider's email-send
// endpoint. It returns the provider's response body unchanged on success. No
// retries: a failed dispatch is the terminal outcome of the invocation, and
// canceling ctx aborts the outbound call.
func (c *Client) Send(ctx context.Context, apiKey string, msg *mailer.Message) (*mailer.SendResult, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, mailer.ErrMissingAPIKey
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	dispatchID := uuid.NewString()
	c.log.InfoContext(ctx, "dispatching email",
		slog.String("dispatch_id", dispatchID),
		slog.Int("recipients", len(msg.To)),
		slog.String("subject", msg.Subject),
		slog.String("scheduled_at", msg.ScheduledAt),
		slog.Int("attachments", len(msg.Attachments)),
		slog.Int("tags", len(msg.Tags)),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "email dispatch failed",
			slog.String("dispatch_id", dispatchID),
			slog.Any("error", err),
		)
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
		c.log.ErrorContext(ctx, "provider rejected email",
			slog.String("dispatch_id", dispatchID),
			slog.Int("status", apiErr.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	result := &mailer.SendResult{Body: body}
	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		result.ID = parsed.ID
	}

	c.log.InfoContext(ctx, "email dispatched",
		slog.String("dispatch_id", dispatchID),
		slog.String("email_id", result.ID),
		slog.Int("status", resp.StatusCode),
	)

	return result, nil
}

// errorMessage extracts the provider error message from a response body,
// falling back to the raw text when the body is not the expected JSON shape.
func errorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}
