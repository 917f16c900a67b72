package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is a parsed template file: YAML frontmatter metadata plus the
// markdown body that follows it.
type Template struct {
	Metadata map[string]any
	Body     string
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate splits template file content into frontmatter metadata and
// markdown body. Content without a leading "---" is treated as a body with no
// metadata.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metadata := map[string]any{}
	if raw := bytes.TrimSpace(rest[:end]); len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(frontmatterDelimiter):]
	body = bytes.TrimPrefix(bytes.TrimPrefix(body, []byte("\r")), []byte("\n"))

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
