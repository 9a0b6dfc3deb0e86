package pubsite

import (
	"encoding/xml"
	"io"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap writes a sitemap listing the static pages, then every post
// with its iso_date as lastmod.
func WriteSitemap(w io.Writer, posts []Post, cfg SiteConfig) error {
	base := cfg.URL
	urls := make([]sitemapURL, 0, len(cfg.StaticPages)+len(posts))
	for _, page := range cfg.StaticPages {
		urls = append(urls, sitemapURL{Loc: PageURL(base, page)})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     PostURL(base, cfg.BlogPath, p.Filename),
			LastMod: p.ISODate,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
