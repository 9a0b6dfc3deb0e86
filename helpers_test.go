package pubsite

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Go: a Tour!  ", "go-a-tour"},
		{"already-slugged", "already-slugged"},
		{"***", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://mediumroast.dev", []string{"index.html"}, "https://mediumroast.dev/index.html"},
		{"https://mediumroast.dev/", []string{"blog", "hello.html"}, "https://mediumroast.dev/blog/hello.html"},
		{"https://example.com/site", []string{"blog", "a.html"}, "https://example.com/site/blog/a.html"},
		{"https://example.com", nil, "https://example.com/"},
	}
	for _, tt := range tests {
		if got := PageURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("PageURL(%q, %q) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"drafts/hello.md", "hello.html"},
		{"hello.markdown", "hello.html"},
		{"/abs/path/my.post.md", "my.post.html"},
		{"noext", "noext.html"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.input); got != tt.expected {
			t.Errorf("OutputName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
