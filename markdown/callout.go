package markdown

import (
	"regexp"
	"strings"
)

type calloutStyle struct {
	icon       string
	color      string
	background string
}

// calloutStyles maps each recognized callout type to its icon and colours.
var calloutStyles = map[string]calloutStyle{
	"NOTE":      {icon: "ℹ️", color: "#0969da", background: "#ddf4ff"},
	"TIP":       {icon: "💡", color: "#1a7f37", background: "#dafbe1"},
	"IMPORTANT": {icon: "📢", color: "#8250df", background: "#fbefff"},
	"WARNING":   {icon: "⚠️", color: "#9a6700", background: "#fff8c5"},
	"CAUTION":   {icon: "🛑", color: "#cf222e", background: "#ffebe9"},
}

// Quote markers may be indented at most three spaces; deeper lines are
// indented code or list content.
var (
	reCalloutOpen = regexp.MustCompile(`^ {0,3}>[ \t]*\[!([A-Za-z]+)\][ \t]*$`)
	reQuoted      = regexp.MustCompile(`^ {0,3}>[ \t]?(.*)$`)
	reFence       = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})(.*)$")
)

// fence tracks the open code fence, if any.
type fence struct {
	char byte
	size int
}

// update reports whether line is inside a fenced block, opening or closing
// the fence as needed. Only a run of the same character, at least as long
// as the opener and followed by nothing but spaces, closes it.
func (f *fence) update(line string) bool {
	m := reFence.FindStringSubmatch(line)
	if f.size == 0 {
		if m == nil || (m[1][0] == '`' && strings.Contains(m[2], "`")) {
			return false
		}
		f.char, f.size = m[1][0], len(m[1])
		return true
	}
	if m != nil && m[1][0] == f.char && len(m[1]) >= f.size && strings.TrimSpace(m[2]) == "" {
		f.size = 0
	}
	return true
}

// RewriteCallouts replaces blockquote callouts such as
//
//	> [!WARNING]
//	> Be careful
//
// with a styled container. The dequoted body stays Markdown so it is
// converted along with the rest of the document. Unknown types, type lines
// with trailing text, and type lines with no quoted body after them are left
// as they are. Fenced and indented code is never rewritten.
func RewriteCallouts(md string) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	var code fence

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if code.update(line) {
			out = append(out, lines[i])
			continue
		}

		m := reCalloutOpen.FindStringSubmatch(line)
		if m == nil {
			out = append(out, lines[i])
			continue
		}
		style, ok := calloutStyles[m[1]]
		if !ok {
			out = append(out, lines[i])
			continue
		}

		var body []string
		j := i + 1
		for ; j < len(lines); j++ {
			q := reQuoted.FindStringSubmatch(strings.TrimRight(lines[j], "\r"))
			if q == nil {
				break
			}
			body = append(body, q[1])
		}
		if len(body) == 0 {
			out = append(out, lines[i])
			continue
		}

		out = append(out, calloutBlock(m[1], style, body)...)
		i = j - 1
	}
	return strings.Join(out, "\n")
}

func calloutBlock(kind string, style calloutStyle, body []string) []string {
	lower := strings.ToLower(kind)
	block := []string{
		"",
		`<div class="callout callout-` + lower + `" style="border-left: 4px solid ` + style.color +
			`; background-color: ` + style.background + `; padding: 0.75rem 1rem; margin: 1rem 0; border-radius: 6px;">`,
		`<div class="callout-title" style="color: ` + style.color + `; font-weight: 600;">` +
			`<span class="callout-icon">` + style.icon + `</span> <span class="callout-label">` + kind + `</span></div>`,
		`<div class="callout-content">`,
		"",
	}
	block = append(block, body...)
	return append(block, "", "</div>", "</div>", "")
}
