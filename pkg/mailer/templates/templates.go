// Package templates embeds the email templates served by the template
// resource. Templates are markdown files with YAML frontmatter, rendered by
// mailer.Renderer.
package templates

import "embed"

// PropertyInquiry is the template for property inquiry emails. Its body
// interpolates {{.PropertyLink}} and carries a [SENDER_NAME] placeholder for
// the caller to fill in.
const PropertyInquiry = "property_inquiry.md"

//go:embed *.md
var FS embed.FS
