package pubsite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrMalformedDraft is returned for drafts that cannot be read as UTF-8 text.
var ErrMalformedDraft = errors.New("malformed draft")

// reFrontmatter matches an opening "---" line, the header lines, the first
// closing "---" line and the rest of the document.
var reFrontmatter = regexp.MustCompile(`(?s)^---[ \t]*\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|$)(.*)`)

// Frontmatter is the flat key/value header of a draft.
type Frontmatter map[string]string

// Get returns the value for key, or fallback when the key is missing.
func (fm Frontmatter) Get(key, fallback string) string {
	if v, ok := fm[key]; ok {
		return v
	}
	return fallback
}

// Published reports whether the published flag is "true" (any case).
// def is used when the flag is absent.
func (fm Frontmatter) Published(def bool) bool {
	v, ok := fm["published"]
	if !ok {
		return def
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// ParseFrontmatter splits content into its header mapping and Markdown body.
// Content without a header is returned whole as the body.
func ParseFrontmatter(content []byte) (Frontmatter, string, error) {
	if !utf8.Valid(content) {
		return nil, "", fmt.Errorf("%w: not valid UTF-8", ErrMalformedDraft)
	}
	text := string(content)
	fm := Frontmatter{}

	m := reFrontmatter.FindStringSubmatch(text)
	if m == nil {
		return fm, text, nil
	}
	for _, line := range strings.Split(m[1], "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fm[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return fm, m[2], nil
}

// unquote removes one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}
