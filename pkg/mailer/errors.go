package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrTooManyRecipients indicates the recipient list exceeds the provider limit.
	ErrTooManyRecipients = errors.New("email exceeds the maximum of 50 recipients")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have html or text content")

	// ErrInvalidAddress indicates a recipient address is not a valid email.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrTagTooLong indicates a tag name or value exceeds the provider limit.
	ErrTagTooLong = errors.New("tag name and value must be at most 256 characters")

	// ErrMissingAPIKey indicates no Resend API key was supplied with the request.
	ErrMissingAPIKey = errors.New("missing Resend API key")

	// ErrMissingSender indicates no sender address was supplied with the request.
	ErrMissingSender = errors.New("missing sender email address")

	// ErrSendFailed indicates the outbound call to the provider failed in transit.
	ErrSendFailed = errors.New("failed to send email")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
