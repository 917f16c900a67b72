package server

import (
	"errors"

	"github.com/mailgate/resend-mcp/pkg/mailer"
	"github.com/mailgate/resend-mcp/pkg/mailer/resend"
)

// Caller-facing error kinds. Every dispatch failure is reported as exactly one
// of these, prefixed to the tool error message.
const (
	kindValidation = "validation_error"
	kindAuth       = "auth_error"
	kindProvider   = "provider_error"
	kindTransport  = "transport_error"
)

// errorKind buckets a dispatch failure. Anything that is neither a provider
// rejection, a missing credential, nor a transport failure came from
// Message.Validate.
func errorKind(err error) string {
	var apiErr *resend.APIError
	switch {
	case errors.As(err, &apiErr):
		return kindProvider
	case errors.Is(err, mailer.ErrMissingAPIKey), errors.Is(err, mailer.ErrMissingSender):
		return kindAuth
	case errors.Is(err, mailer.ErrSendFailed):
		return kindTransport
	default:
		return kindValidation
	}
}
