package pubsite

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// PageURL joins a base URL with path segments. Unlike directory URLs no
// trailing slash is added, since every page is a file.
func PageURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "/") + "/" + path.Join(pathSegments...)
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// PostURL returns the canonical URL of a rendered post.
func PostURL(base, blogPath, filename string) string {
	return PageURL(base, blogPath, filename)
}

// OutputName returns the rendered post filename for a draft path:
// the draft's base name with its extension replaced by ".html".
func OutputName(draftPath string) string {
	base := filepath.Base(draftPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
