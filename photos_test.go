package pubsite

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestPhotoSizer(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "small.png"), 40, 20)
	writePNG(t, filepath.Join(dir, "wide.png"), 1600, 900)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not an image")

	tests := []struct {
		name  string
		w, h  int
		found bool
	}{
		{"small.png", 40, 20, true},
		{"wide.png", 800, 450, true},
		{"missing.png", 0, 0, false},
		{"notes.txt", 0, 0, false},
		{"../small.png", 0, 0, false},
	}
	size := PhotoSizer(dir)
	for _, tt := range tests {
		w, h, ok := size(tt.name)
		if w != tt.w || h != tt.h || ok != tt.found {
			t.Errorf("PhotoSizer(%q) = %d, %d, %v, want %d, %d, %v", tt.name, w, h, ok, tt.w, tt.h, tt.found)
		}
	}
}

func TestDeployAddsPhotoDimensions(t *testing.T) {
	s, root := setupTestSite(t)
	if err := os.MkdirAll(filepath.Join(root, "photos"), 0o755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(root, "photos", "cat.png"), 320, 240)
	writeFile(t, filepath.Join(root, "drafts", "cats.md"), draft("Cats", "2026-01-25", "pets", "true", "![A cat](cat.png)\n\n![Remote](https://x/dog.png)"))

	deploy(t, s)
	page := readFile(t, filepath.Join(root, "blog", "cats.html"))
	if !strings.Contains(page, `src="../photos/cat.png" width="320" height="240"`) {
		t.Errorf("local photo should be rewritten and sized:\n%s", page)
	}
	if !strings.Contains(page, `src="https://x/dog.png"`) {
		t.Errorf("remote image should be unchanged:\n%s", page)
	}
}
