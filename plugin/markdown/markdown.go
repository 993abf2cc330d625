// Package markdown renders note content to HTML.
package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Service converts markdown to sanitized-enough HTML for the web client.
type Service interface {
	RenderHTML(content string) (string, error)
}

type service struct {
	md goldmark.Markdown
}

// NewService creates a markdown service with GFM tables, strikethrough and
// task lists enabled. Raw HTML in the source is escaped, not passed through.
func NewService() Service {
	return &service{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (s *service) RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", errors.Wrap(err, "failed to render markdown")
	}
	return buf.String(), nil
}
