package pubsite

import (
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/eringen/pubsite/markdown"
)

// SiteConfig holds all configuration for a pubsite deployment.
type SiteConfig struct {
	Name        string // Site name used as the feed title (default "Blog")
	URL         string // Canonical base URL (default "https://mediumroast.dev")
	Description string // Feed description
	Language    string // Feed language (default "en-us")

	Root         string // Site root; relative paths below are joined onto it
	DraftsDir    string // Markdown drafts (default "drafts")
	OutputDir    string // Rendered posts (default "blog")
	BlogPath     string // URL path segment for posts (default "blog")
	TemplatePath string // Post template (default "blog_template.html")
	ManifestPath string // Post index script (default "blog_posts.js")
	SitemapPath  string // Sitemap (default "sitemap.xml")
	FeedPath     string // RSS feed (default "feed.xml")
	PhotosDir    string // Photo directory on disk (default "photos")
	PhotosPrefix string // Prefix for bare image filenames in posts (default "../photos/")

	StaticPages    []string // Pages listed in the sitemap ahead of posts
	WordsPerMinute int      // Reading speed (default 200)
}

// DefaultStaticPages are the non-post pages listed in the sitemap.
var DefaultStaticPages = []string{"index.html", "about.html", "work.html", "blog.html", "contact.html"}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "https://mediumroast.dev"
	}
	if c.Language == "" {
		c.Language = "en-us"
	}
	if c.DraftsDir == "" {
		c.DraftsDir = "drafts"
	}
	if c.OutputDir == "" {
		c.OutputDir = "blog"
	}
	if c.BlogPath == "" {
		c.BlogPath = "blog"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "blog_template.html"
	}
	if c.ManifestPath == "" {
		c.ManifestPath = "blog_posts.js"
	}
	if c.SitemapPath == "" {
		c.SitemapPath = "sitemap.xml"
	}
	if c.FeedPath == "" {
		c.FeedPath = "feed.xml"
	}
	if c.PhotosDir == "" {
		c.PhotosDir = "photos"
	}
	if c.PhotosPrefix == "" {
		c.PhotosPrefix = markdown.DefaultPhotosPrefix
	}
	if c.StaticPages == nil {
		c.StaticPages = DefaultStaticPages
	}
	if c.WordsPerMinute <= 0 {
		c.WordsPerMinute = 200
	}
}

// Path resolves p against the site root.
func (c SiteConfig) Path(p string) string {
	if c.Root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithLogger sets the logger used for per-draft diagnostics.
// A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Site) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.log = l
	}
}

// WithClock overrides the time source used for default dates and commit messages.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		s.now = now
	}
}

// WithVersionControl sets the client used to commit and push after a deploy.
// Without one, Deploy stops after refreshing the index.
func WithVersionControl(vc VersionControl) Option {
	return func(s *Site) {
		s.vcs = vc
	}
}

// WithRenderer replaces the Markdown renderer built from the config.
func WithRenderer(r *markdown.Renderer) Option {
	return func(s *Site) {
		s.renderer = r
	}
}
