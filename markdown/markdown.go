// Package markdown renders draft bodies to HTML fragments.
//
// Conversion goes through goldmark (GFM, fenced code, hard wraps) with
// chroma highlighting for fenced code in a known language. Callout
// blocks are rewritten before conversion; diagram code blocks and image
// sources are rewritten on the produced HTML.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// DefaultPhotosPrefix is prepended to image sources that are bare filenames.
const DefaultPhotosPrefix = "../photos/"

// DiagramLanguage is the fenced code language unwrapped into a diagram container.
const DiagramLanguage = "mermaid"

var (
	reDiagram = regexp.MustCompile(`(?s)<pre><code class="language-` + DiagramLanguage + `">(.*?)</code></pre>`)
	reImgSrc  = regexp.MustCompile(`(<img\b[^>]*?\ssrc=)("|')([^"']*)("|')`)
	reScheme  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)
)

// ImageSizer reports the pixel dimensions of a photo referenced by a bare
// filename. ok is false when the size is unknown.
type ImageSizer func(name string) (width, height int, ok bool)

// Renderer converts Markdown to HTML. A Renderer is safe for reuse.
type Renderer struct {
	md           goldmark.Markdown
	photosPrefix string
	sizer        ImageSizer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPhotosPrefix sets the path prepended to bare image filenames.
func WithPhotosPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.photosPrefix = prefix
	}
}

// WithImageSizer adds width and height attributes to rewritten images whose
// dimensions the sizer knows.
func WithImageSizer(s ImageSizer) Option {
	return func(r *Renderer) {
		r.sizer = s
	}
}

// HighlightStyle is the chroma style used for fenced code.
const HighlightStyle = "github"

// New returns a Renderer with GFM tables, highlighted fenced code, hard line
// breaks and raw HTML passthrough enabled. Fences in a language chroma has
// no lexer for, diagrams included, keep goldmark's plain code block.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(HighlightStyle),
					highlighting.WithFormatOptions(),
				),
			),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithHardWraps(),
				goldmarkhtml.WithUnsafe(),
			),
		),
		photosPrefix: DefaultPhotosPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the HTML fragment for body.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(RewriteCallouts(body)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	out := UnwrapDiagrams(buf.String())
	return RewriteImagePaths(out, r.photosPrefix, r.sizer), nil
}

// Component returns a templ.Component that renders body as HTML.
func (r *Renderer) Component(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render(body)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// UnwrapDiagrams replaces diagram code blocks with a plain container holding
// the literal (unescaped) diagram source.
func UnwrapDiagrams(s string) string {
	return reDiagram.ReplaceAllStringFunc(s, func(m string) string {
		match := reDiagram.FindStringSubmatch(m)
		return `<div class="` + DiagramLanguage + `">` + html.UnescapeString(match[1]) + `</div>`
	})
}

// RewriteImagePaths prefixes every image source that is a bare filename with
// prefix. Sources with a URL scheme, a leading slash or a leading "../" are
// left alone. sizer may be nil.
func RewriteImagePaths(s, prefix string, sizer ImageSizer) string {
	return reImgSrc.ReplaceAllStringFunc(s, func(m string) string {
		match := reImgSrc.FindStringSubmatch(m)
		src := match[3]
		if !IsBareFilename(src) {
			return m
		}
		out := match[1] + match[2] + prefix + src + match[4]
		if sizer == nil {
			return out
		}
		name, err := url.PathUnescape(html.UnescapeString(src))
		if err != nil {
			name = src
		}
		if w, h, ok := sizer(name); ok {
			out += ` width="` + strconv.Itoa(w) + `" height="` + strconv.Itoa(h) + `"`
		}
		return out
	})
}

// IsBareFilename reports whether src is a relative reference that does not
// start with a URL scheme, "/" or "../".
func IsBareFilename(src string) bool {
	switch {
	case src == "":
		return false
	case strings.HasPrefix(src, "/"), strings.HasPrefix(src, "../"):
		return false
	case reScheme.MatchString(src):
		return false
	}
	return true
}
