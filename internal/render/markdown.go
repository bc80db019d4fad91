// Package render owns the fixed markdown-to-HTML pipeline used for article
// bodies. The plugin set is part of the site's contract and is not
// user-controllable: GFM extensions, raw HTML passthrough and highlighted
// fenced code blocks.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Markdown converts article markdown to HTML. Safe for concurrent use.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown builds the converter with the fixed plugin configuration.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				// Articles are authored content; embedded raw HTML is
				// passed through rather than escaped.
				gmhtml.WithUnsafe(),
			),
		),
	}
}

// ToHTML renders the given markdown source. The input is the raw document
// text exactly as fetched; no pre-processing happens here.
func (m *Markdown) ToHTML(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
