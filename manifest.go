package pubsite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// manifestVar is the global the site's blog page reads posts from. A script
// assignment loads straight from file:// where a JSON fetch would be blocked.
const manifestVar = "window.BLOG_POSTS"

// SortPosts orders posts newest first by ISODate. Posts with equal dates
// keep their input order.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ISODate > posts[j].ISODate
	})
}

// WriteManifest writes posts as a script assigning the manifest global.
func WriteManifest(w io.Writer, posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(posts); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	_, err := fmt.Fprintf(w, "%s = %s;\n", manifestVar, bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

// BuildIndex rewrites the manifest, sitemap and feed for posts, which must
// already be in manifest order.
func BuildIndex(posts []Post, cfg SiteConfig) error {
	artifacts := []struct {
		path  string
		write func(io.Writer) error
	}{
		{cfg.Path(cfg.ManifestPath), func(w io.Writer) error { return WriteManifest(w, posts) }},
		{cfg.Path(cfg.SitemapPath), func(w io.Writer) error { return WriteSitemap(w, posts, cfg) }},
		{cfg.Path(cfg.FeedPath), func(w io.Writer) error { return WriteFeed(w, posts, cfg) }},
	}
	for _, a := range artifacts {
		var buf bytes.Buffer
		if err := a.write(&buf); err != nil {
			return fmt.Errorf("build %s: %w", filepath.Base(a.path), err)
		}
		if err := os.WriteFile(a.path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", a.path, err)
		}
	}
	return nil
}
