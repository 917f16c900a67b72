// Package mailer defines the email domain model shared by the MCP surface and
// the Resend provider client: the outbound Message with its JSON wire shape,
// validation of the minimal invariants the provider enforces, and a markdown
// template renderer used by the static template resource.
//
// # Message
//
// Message mirrors the Resend /emails payload. Optional fields carry omitempty
// tags so the serialized payload contains only the keys the caller supplied:
//
//	msg := &mailer.Message{
//		From:    "team@example.com",
//		To:      []string{"user@example.com"},
//		Subject: "Hi",
//		Text:    "hello",
//	}
//	// marshals to {"from":...,"to":[...],"subject":"Hi","text":"hello"}
//
// ReplyTo is a StringList: it decodes from either a single JSON string or an
// array of strings, matching what MCP clients actually send.
//
// # Validation
//
// Message.Validate checks the invariants that must hold before any outbound
// call: at least one recipient (at most 50), at least one of HTML or Text,
// well-formed recipient addresses, and tag name/value length limits. All
// failures unwrap to package-level sentinel errors.
//
// # Templates
//
// Renderer converts markdown templates with YAML frontmatter into a subject
// line, plain text, and HTML. Template parsing is cached; rendering is safe
// for concurrent use.
package mailer
