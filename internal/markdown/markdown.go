// Package markdown renders post bodies to HTML. Rendering happens at view
// time; the stored body stays in its authored form.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/quillpad-dev/quillpad/internal/logger"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	// UGCPolicy allows the formatting tags a post body legitimately uses and
	// strips scripts, event handlers and the rest.
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts markdown (or plain HTML-ish text) to sanitized HTML.
// On a parser failure the body is served escaped rather than lost.
func (r *Renderer) Render(body string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		logger.Log.Error("failed to render post body", "error", err)
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}
