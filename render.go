package pubsite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// renderPost renders body through the template and writes it to outPath.
func (s *Site) renderPost(ctx context.Context, tmpl string, fm Frontmatter, body, outPath string) error {
	var content strings.Builder
	if err := s.renderer.Component(body).Render(ctx, &content); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	page := Inject(tmpl, s.fields(fm, content.String(), filepath.Base(outPath)))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write post: %w", err)
	}
	return nil
}
