package mailer

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxRecipients is the provider's limit on the to list.
	MaxRecipients = 50

	// maxTagLength bounds tag names and values.
	maxTagLength = 256
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the invariants that must hold before a Message is handed to
// the provider: recipient list bounds, body presence, recipient address
// format, and tag length limits. From is exempt from format checks because it
// may use the "Name <email>" display form.
func (m *Message) Validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	if len(m.To) > MaxRecipients {
		return fmt.Errorf("%w: got %d", ErrTooManyRecipients, len(m.To))
	}
	if m.HTML == "" && m.Text == "" {
		return ErrNoContent
	}

	for _, list := range [][]string{m.To, m.CC, m.BCC, m.ReplyTo} {
		for _, addr := range list {
			if err := validate.Var(addr, "required,email"); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
			}
		}
	}

	for _, tag := range m.Tags {
		if len(tag.Name) > maxTagLength || len(tag.Value) > maxTagLength {
			return fmt.Errorf("%w: %q", ErrTagTooLong, tag.Name)
		}
	}

	return nil
}
