// Package pubsite is a static blog publishing pipeline.
// It renders Markdown drafts with frontmatter into HTML posts through a fixed
// template, then rebuilds the post manifest (blog_posts.js), the sitemap and
// the RSS feed from the published HTML, and can commit and push the result.
//
// Deploy is the entry point: every draft is classified as unpublished, new,
// stale or current and only new or stale drafts are rendered.
package pubsite

import (
	"log"
	"os"
	"time"

	"github.com/eringen/pubsite/markdown"
)

// Site is the central pubsite pipeline. It wires the configuration, the
// Markdown renderer, logging and the optional version control client.
type Site struct {
	Config SiteConfig

	log      *log.Logger
	now      func() time.Time
	vcs      VersionControl
	renderer *markdown.Renderer
}

// New creates a Site with the given configuration and options.
func New(cfg SiteConfig, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config: cfg,
		log:    log.New(os.Stderr, "pubsite: ", 0),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = markdown.New(
			markdown.WithPhotosPrefix(cfg.PhotosPrefix),
			markdown.WithImageSizer(PhotoSizer(cfg.Path(cfg.PhotosDir))),
		)
	}
	return s
}

// Logger returns the logger diagnostics are written to.
func (s *Site) Logger() *log.Logger {
	return s.log
}
