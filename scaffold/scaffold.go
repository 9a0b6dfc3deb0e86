// Package scaffold provides the embedded files pubsite writes when a site
// or a draft is created.
package scaffold

import "embed"

// Templates contains the default post template and the new draft body.
//
//go:embed all:templates
var Templates embed.FS

// PostTemplate returns the default post template.
func PostTemplate() []byte {
	b, err := Templates.ReadFile("templates/blog_template.html")
	if err != nil {
		panic("scaffold: missing embedded post template: " + err.Error())
	}
	return b
}

// DraftBody returns the Markdown body written below a new draft's frontmatter.
func DraftBody() []byte {
	b, err := Templates.ReadFile("templates/draft.md")
	if err != nil {
		panic("scaffold: missing embedded draft body: " + err.Error())
	}
	return b
}
