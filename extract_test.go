package pubsite

import (
	"strings"
	"testing"
)

const samplePost = `<html><body>
<h1 class="article-title">Hello <em>World</em></h1>
<span class="post-date">January 25, 2026</span>
<span class="post-tags">go, <a href="/t/test">test</a></span>
<div class="article-content">
<h1>Hi</h1>
<p>First <strong>para</strong> with a <a href="https://x">link</a>.</p>
<p>Second para.</p>
</div>
</body></html>`

func TestExtractPost(t *testing.T) {
	post, err := ExtractPost(strings.NewReader(samplePost), "hello.html", 200)
	if err != nil {
		t.Fatalf("ExtractPost error: %v", err)
	}
	want := Post{
		Title:       "Hello World",
		Date:        "January 25, 2026",
		ISODate:     "2026-01-25",
		Tags:        "go, test",
		Summary:     "First para with a link.",
		ReadingTime: 1,
		Filename:    "hello.html",
	}
	if post != want {
		t.Errorf("ExtractPost = %+v, want %+v", post, want)
	}
}

func TestExtractPostDefaults(t *testing.T) {
	post, err := ExtractPost(strings.NewReader("<html><body><p>stray</p></body></html>"), "bare.html", 200)
	if err != nil {
		t.Fatalf("ExtractPost error: %v", err)
	}
	want := Post{Title: "Untitled", ISODate: EpochDate, ReadingTime: 1, Filename: "bare.html"}
	if post != want {
		t.Errorf("ExtractPost = %+v, want %+v", post, want)
	}
}

func TestExtractPostReadingTime(t *testing.T) {
	words := strings.Repeat("word ", 1000)
	html := `<div class="article-content"><p>` + words + `</p><ul><li>` + words + `</li></ul></div>`
	post, err := ExtractPost(strings.NewReader(html), "long.html", 200)
	if err != nil {
		t.Fatal(err)
	}
	if post.ReadingTime != 10 {
		t.Errorf("ReadingTime = %d, want 10", post.ReadingTime)
	}
}

func TestISODate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"January 25, 2026", "2026-01-25"},
		{"January 05, 2026", "2026-01-05"},
		{"March 1, 2024", "2024-03-01"},
		{"2026-01-25", EpochDate},
		{"Jan 25, 2026", EpochDate},
		{"", EpochDate},
	}
	for _, tt := range tests {
		if got := ISODate(tt.input); got != tt.expected {
			t.Errorf("ISODate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
