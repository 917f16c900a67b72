package server

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mailgate/resend-mcp/pkg/mailer/templates"
)

// templateURIPrefix addresses the property inquiry template; the path suffix
// is the property link token.
const templateURIPrefix = "email-template://property-inquiry/"

func newPropertyInquiryResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		templateURIPrefix+"{property_link}",
		"Property Inquiry Email Template",
		mcp.WithTemplateDescription("Email template with subject, text, and html for property inquiries. Replace the placeholders with the actual values."),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// templateDocument is the JSON shape served by the template resource.
type templateDocument struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// handlePropertyInquiry renders the property inquiry template for the token
// embedded in the resource URI. Any token string is valid; escaped tokens are
// decoded, undecodable ones are used as-is.
func (s *Server) handlePropertyInquiry(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	token := strings.TrimPrefix(request.Params.URI, templateURIPrefix)
	if unescaped, err := url.PathUnescape(token); err == nil {
		token = unescaped
	}

	result, err := s.renderer.Render(templates.PropertyInquiry, map[string]string{"PropertyLink": token})
	if err != nil {
		return nil, err
	}

	doc, err := json.MarshalIndent(templateDocument{
		Subject: result.Subject,
		Text:    result.Text,
		HTML:    result.HTML,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{mcp.TextResourceContents{
		URI:      request.Params.URI,
		MIMEType: "application/json",
		Text:     string(doc),
	}}, nil
}
