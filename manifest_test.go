package pubsite

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func testPosts() []Post {
	return []Post{
		{Title: "Newest", Date: "February 01, 2026", ISODate: "2026-02-01", Tags: "go", Summary: "N & <b>", ReadingTime: 2, Filename: "newest.html"},
		{Title: "Older", Date: "January 25, 2026", ISODate: "2026-01-25", Tags: "test", Summary: "O", ReadingTime: 1, Filename: "older.html"},
	}
}

func TestSortPosts(t *testing.T) {
	posts := []Post{
		{Filename: "undated-a.html", ISODate: EpochDate},
		{Filename: "old.html", ISODate: "2024-05-01"},
		{Filename: "same-1.html", ISODate: "2026-01-25"},
		{Filename: "undated-b.html", ISODate: EpochDate},
		{Filename: "same-2.html", ISODate: "2026-01-25"},
		{Filename: "new.html", ISODate: "2026-02-01"},
	}
	SortPosts(posts)
	var got []string
	for _, p := range posts {
		got = append(got, p.Filename)
	}
	want := []string{"new.html", "same-1.html", "same-2.html", "old.html", "undated-a.html", "undated-b.html"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortPosts order = %v, want %v", got, want)
	}
}

func TestWriteManifest(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteManifest(&buf, testPosts()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "window.BLOG_POSTS = [\n    {\n") || !strings.HasSuffix(out, "];\n") {
		t.Fatalf("manifest framing wrong: %q", out)
	}
	if !strings.Contains(out, `"summary": "N & <b>"`) {
		t.Errorf("manifest should not HTML-escape values: %q", out)
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(out, "window.BLOG_POSTS = "), ";\n")
	var got []Post
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("manifest JSON: %v", err)
	}
	if !reflect.DeepEqual(got, testPosts()) {
		t.Errorf("manifest posts = %+v", got)
	}
}

func TestWriteManifestFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteManifest(&buf, testPosts()[:1]); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"title", "date", "iso_date", "tags", "summary", "reading_time", "filename"} {
		if !strings.Contains(buf.String(), `"`+key+`": `) {
			t.Errorf("manifest missing key %q: %s", key, buf.String())
		}
	}
}

func TestWriteManifestEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteManifest(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "window.BLOG_POSTS = [];\n" {
		t.Errorf("empty manifest = %q", buf.String())
	}
}

func TestWriteSitemap(t *testing.T) {
	cfg := SiteConfig{}
	cfg.setDefaults()
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, testPosts(), cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("sitemap missing XML header: %q", out)
	}
	if !strings.Contains(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Errorf("sitemap missing namespace: %q", out)
	}

	order := []string{
		"<loc>https://mediumroast.dev/index.html</loc>",
		"<loc>https://mediumroast.dev/contact.html</loc>",
		"<loc>https://mediumroast.dev/blog/newest.html</loc>",
		"<lastmod>2026-02-01</lastmod>",
		"<loc>https://mediumroast.dev/blog/older.html</loc>",
		"<lastmod>2026-01-25</lastmod>",
	}
	last := -1
	for _, want := range order {
		i := strings.Index(out, want)
		if i < 0 {
			t.Fatalf("sitemap missing %q: %s", want, out)
		}
		if i < last {
			t.Errorf("sitemap entry %q out of order", want)
		}
		last = i
	}
	if n := strings.Count(out, "<lastmod>"); n != 2 {
		t.Errorf("lastmod count = %d, want one per post", n)
	}
	if n := strings.Count(out, "<url>"); n != len(DefaultStaticPages)+2 {
		t.Errorf("url count = %d", n)
	}
}

func TestWriteFeed(t *testing.T) {
	cfg := SiteConfig{Name: "Medium Roast", Description: "Notes"}
	cfg.setDefaults()
	var buf bytes.Buffer
	if err := WriteFeed(&buf, testPosts(), cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Medium Roast</title>",
		"<link>https://mediumroast.dev/</link>",
		"<description>Notes</description>",
		"<language>en-us</language>",
		"<title>Newest</title>",
		"<link>https://mediumroast.dev/blog/newest.html</link>",
		"<description>N &amp; &lt;b&gt;</description>",
		"<pubDate>Sun, 01 Feb 2026 00:00:00 +0000</pubDate>",
		`<guid isPermaLink="true">https://mediumroast.dev/blog/newest.html</guid>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("feed missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "newest.html") > strings.Index(out, "older.html") {
		t.Errorf("feed items should keep manifest order")
	}
}

func TestFeedDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2026-01-25", "Sun, 25 Jan 2026 00:00:00 +0000"},
		{EpochDate, "Thu, 01 Jan 1970 00:00:00 +0000"},
		{"garbage", "Thu, 01 Jan 1970 00:00:00 +0000"},
	}
	for _, tt := range tests {
		if got := FeedDate(tt.input); got != tt.expected {
			t.Errorf("FeedDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
