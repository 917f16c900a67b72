package mailer

import (
	"encoding/json"
	"fmt"
)

// Message represents a fully-prepared email ready for dispatch. Field order
// and JSON tags follow the Resend /emails payload; optional fields are tagged
// omitempty so unset values are absent from the wire, never null or empty.
type Message struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html,omitempty"`
	Text        string       `json:"text,omitempty"`
	CC          []string     `json:"cc,omitempty"`
	BCC         []string     `json:"bcc,omitempty"`
	ReplyTo     StringList   `json:"reply_to,omitempty"`
	ScheduledAt string       `json:"scheduled_at,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
}

// Attachment represents a file attachment. Content is the base64-encoded file
// body as supplied by the caller; it is forwarded verbatim, not decoded.
type Attachment struct {
	Content     string `json:"content,omitempty"`
	Filename    string `json:"filename,omitempty"`
	Path        string `json:"path,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

// Tag is provider-side key/value metadata attached to a sent message for
// later filtering and analytics.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StringList decodes from either a single JSON string or an array of strings.
// It always marshals as an array, which keeps the outbound payload shape
// deterministic (Resend accepts both forms for reply_to).
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = StringList(list)
	return nil
}

// SendResult is the provider's answer to a successful dispatch. Body holds the
// response exactly as received; ID is the provider-assigned email identifier
// parsed out of it for convenience.
type SendResult struct {
	ID   string
	Body json.RawMessage
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
