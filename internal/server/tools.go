package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mailgate/resend-mcp/pkg/mailer"
)

// sendEmailArgs mirrors the send_email tool argument schema.
type sendEmailArgs struct {
	ToEmails    []string            `json:"to_emails"`
	Subject     string              `json:"subject"`
	SenderEmail string              `json:"sender_email,omitempty"`
	HTMLContent string              `json:"html_content,omitempty"`
	TextContent string              `json:"text_content,omitempty"`
	CCEmails    []string            `json:"cc_emails,omitempty"`
	BCCEmails   []string            `json:"bcc_emails,omitempty"`
	ReplyTo     mailer.StringList   `json:"reply_to,omitempty"`
	ScheduledAt string              `json:"scheduled_at,omitempty"`
	Attachments []mailer.Attachment `json:"attachments,omitempty"`
	Tags        []mailer.Tag        `json:"tags,omitempty"`
}

func newSendEmailTool() mcp.Tool {
	stringItems := map[string]any{"type": "string"}
	objectItems := map[string]any{"type": "object"}

	return mcp.NewTool("send_email",
		mcp.WithDescription("Send emails via the Resend API. IMPORTANT: always include BOTH html_content AND text_content to avoid delivery issues."),
		mcp.WithArray("to_emails", mcp.Required(),
			mcp.Description("List of recipient email addresses (max 50)"),
			mcp.Items(stringItems)),
		mcp.WithString("subject", mcp.Required(),
			mcp.Description("Email subject line")),
		mcp.WithString("sender_email",
			mcp.Description("Sender email address, must be verified in your Resend account. Falls back to the x-sender-email request header when omitted.")),
		mcp.WithString("html_content",
			mcp.Description("HTML content of the email (required if text_content not provided)")),
		mcp.WithString("text_content",
			mcp.Description("Plain text version of the email (required if html_content not provided)")),
		mcp.WithArray("cc_emails",
			mcp.Description("List of CC recipient email addresses"),
			mcp.Items(stringItems)),
		mcp.WithArray("bcc_emails",
			mcp.Description("List of BCC recipient email addresses"),
			mcp.Items(stringItems)),
		mcp.WithArray("reply_to",
			mcp.Description("Reply-to email address(es) - a single address or a list"),
			mcp.Items(stringItems)),
		mcp.WithString("scheduled_at",
			mcp.Description("Schedule email for later delivery - natural language (e.g. 'in 1 min') or ISO 8601 format")),
		mcp.WithArray("attachments",
			mcp.Description("List of attachments (max 40MB total). Each with: content (base64 string), filename, optional path/content_type/content_id"),
			mcp.Items(objectItems)),
		mcp.WithArray("tags",
			mcp.Description("Custom tags as name/value pairs, each at most 256 characters"),
			mcp.Items(objectItems)),
	)
}

// handleSendEmail extracts the per-call credential and sender, builds the
// outbound message, and forwards it through the dispatcher. All failures come
// back as tool errors with a kind prefix; success returns the provider's
// response body unchanged.
func (s *Server) handleSendEmail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args sendEmailArgs
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(kindValidation + ": " + err.Error()), nil
	}

	apiKey := apiKeyFromContext(ctx)
	if apiKey == "" {
		s.log.ErrorContext(ctx, "missing API key header")
		return mcp.NewToolResultError(kindAuth + ": " + mailer.ErrMissingAPIKey.Error() +
			": provide it via the x-api-key or x-resend-api-key request header"), nil
	}

	sender := strings.TrimSpace(args.SenderEmail)
	if sender == "" {
		sender = senderFromContext(ctx)
	}
	if sender == "" {
		s.log.ErrorContext(ctx, "missing sender email")
		return mcp.NewToolResultError(kindAuth + ": " + mailer.ErrMissingSender.Error() +
			": pass sender_email or set the x-sender-email request header"), nil
	}

	msg := &mailer.Message{
		From:        sender,
		To:          args.ToEmails,
		Subject:     args.Subject,
		HTML:        args.HTMLContent,
		Text:        args.TextContent,
		CC:          args.CCEmails,
		BCC:         args.BCCEmails,
		ReplyTo:     args.ReplyTo,
		ScheduledAt: args.ScheduledAt,
		Attachments: args.Attachments,
		Tags:        args.Tags,
	}

	result, err := s.dispatcher.Send(ctx, apiKey, msg)
	if err != nil {
		return mcp.NewToolResultError(errorKind(err) + ": " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(result.Body)), nil
}
