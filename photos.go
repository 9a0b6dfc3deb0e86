package pubsite

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/eringen/pubsite/markdown"
)

// maxPhotoWidth caps the width attribute written for large photos; the
// height is scaled to keep the aspect ratio.
const maxPhotoWidth = 800

// PhotoSizer returns an ImageSizer that reads photo dimensions from dir.
// Unknown, unreadable or undecodable photos report ok=false.
func PhotoSizer(dir string) markdown.ImageSizer {
	return func(name string) (int, int, bool) {
		if name == "" || strings.Contains(name, "..") {
			return 0, 0, false
		}
		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil {
			return 0, 0, false
		}
		defer f.Close()

		cfg, _, err := image.DecodeConfig(f)
		if err != nil || cfg.Width <= 0 {
			return 0, 0, false
		}
		w, h := cfg.Width, cfg.Height
		if w > maxPhotoWidth {
			h = h * maxPhotoWidth / w
			w = maxPhotoWidth
		}
		return w, h, true
	}
}
