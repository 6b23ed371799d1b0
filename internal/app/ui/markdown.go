package ui

import (
	"bytes"

	"github.com/nilsiker/portfolio/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// Markdown renders an authored Markdown block. The HTML goldmark produces
// is sanitized before it is embedded.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(htmlsanitize.Sanitize(buf.String()))
}
