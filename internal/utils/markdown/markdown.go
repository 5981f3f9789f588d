// Package markdown renders article and history bodies from markdown to HTML
// and derives plain-text excerpts from them.
//
// Rendering uses goldmark with the GitHub Flavored Markdown extensions and
// hard line breaks, so a single newline in the source becomes <br>. Raw HTML
// embedded in the source is not passed through. A rendering failure never
// fails a page: the caller gets the unprocessed markdown back.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"butuhkidul/internal/utils/text"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultExcerptLength is the excerpt length, in runes, used when the
// caller does not ask for a positive one.
const DefaultExcerptLength = 150

// tagPattern matches anything between '<' and the next '>'. It is not an
// HTML parser: malformed markup such as "a < b > c" loses the text between
// the brackets. Content comes from the village's own API.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// converter is the part of goldmark.Markdown the renderer needs.
type converter interface {
	Convert(source []byte, writer io.Writer, opts ...parser.ParseOption) error
}

// Renderer converts markdown to HTML.
//
// Thread safety: Renderer is safe for concurrent use.
type Renderer struct {
	md     converter
	logger *slog.Logger
}

// NewRenderer creates a Renderer with GFM and hard line breaks enabled.
// A nil logger logs through whatever slog.Default() is at the time of use.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		logger: logger,
	}
}

// Parse renders src to HTML. An empty src yields "". If rendering fails the
// error is logged and src is returned unchanged.
func (r *Renderer) Parse(src string) (out string) {
	if src == "" {
		return ""
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log().Error("error parsing markdown", slog.Any("error", fmt.Errorf("panic: %v", rec)))
			out = src
		}
	}()

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		r.log().Error("error parsing markdown", slog.Any("error", err))
		return src
	}
	return buf.String()
}

func (r *Renderer) log() *slog.Logger {
	if r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Excerpt renders content, strips the markup and cuts the plain text to at
// most length runes. Cut text is trimmed and gets a trailing "...".
// A length <= 0 means DefaultExcerptLength.
func (r *Renderer) Excerpt(content string, length int) string {
	if content == "" {
		return ""
	}
	if length <= 0 {
		length = DefaultExcerptLength
	}

	plain := StripHTML(r.Parse(content))
	if text.CountRunes(plain) <= length {
		return plain
	}
	return strings.TrimSpace(text.TruncateRunes(plain, length)) + "..."
}

// StripHTML removes every tag from s in a single pass and trims the result.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

var defaultRenderer = NewRenderer(nil)

// Parse renders src with the default renderer.
func Parse(src string) string {
	return defaultRenderer.Parse(src)
}

// Excerpt derives an excerpt with the default renderer.
func Excerpt(content string, length int) string {
	return defaultRenderer.Excerpt(content, length)
}
