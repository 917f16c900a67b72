package mailer

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown templates with YAML frontmatter into a subject
// line, plain text, and HTML. Parsed templates are cached; rendering executes
// them with fresh data on every call, so a single Renderer is safe for
// concurrent use.
type Renderer struct {
	fs    fs.FS
	md    goldmark.Markdown
	cache map[string]*parsedTemplate
	mu    sync.RWMutex
}

// parsedTemplate holds the parsed subject and body templates for reuse.
type parsedTemplate struct {
	subject *template.Template
	body    *template.Template
}

// RenderResult is the rendered output of a template.
type RenderResult struct {
	Subject string
	Text    string
	HTML    string
}

// NewRenderer creates a Renderer reading templates from the given filesystem.
func NewRenderer(filesystem fs.FS) *Renderer {
	return &Renderer{
		fs:    filesystem,
		md:    goldmark.New(),
		cache: make(map[string]*parsedTemplate),
	}
}

// Render executes the named template with data. The subject comes from the
// frontmatter Subject field and supports {{.Variable}} interpolation; the text
// body is the executed markdown, and the HTML body its markdown conversion.
func (r *Renderer) Render(name string, data any) (*RenderResult, error) {
	parsed, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	var subject bytes.Buffer
	if err := parsed.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("%w: execute subject: %v", ErrRenderFailed, err)
	}

	var body bytes.Buffer
	if err := parsed.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("%w: execute body: %v", ErrRenderFailed, err)
	}
	text := strings.TrimSpace(body.String())

	var html bytes.Buffer
	if err := r.md.Convert([]byte(text), &html); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	return &RenderResult{
		Subject: subject.String(),
		Text:    text,
		HTML:    html.String(),
	}, nil
}

// getTemplate returns a cached parsed template or parses and caches it.
func (r *Renderer) getTemplate(name string) (*parsedTemplate, error) {
	r.mu.RLock()
	if parsed, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return parsed, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if parsed, ok := r.cache[name]; ok {
		return parsed, nil
	}

	content, err := fs.ReadFile(r.fs, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	tpl, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	subjectLine, _ := tpl.Metadata["Subject"].(string)
	subject, err := template.New(name + ":subject").Parse(subjectLine)
	if err != nil {
		return nil, fmt.Errorf("%w: parse subject: %v", ErrRenderFailed, err)
	}

	body, err := template.New(name).Parse(tpl.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse body: %v", ErrRenderFailed, err)
	}

	parsed := &parsedTemplate{subject: subject, body: body}
	r.cache[name] = parsed
	return parsed, nil
}
