package pubsite

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eringen/pubsite/scaffold"
)

// draftHeader is the frontmatter written for new drafts.
type draftHeader struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Tags      string `yaml:"tags"`
	Meta      string `yaml:"meta"`
	Published bool   `yaml:"published"`
}

// NewDraft writes an unpublished draft named after title into the drafts
// directory and returns its path. Existing drafts are never overwritten.
func (s *Site) NewDraft(title string) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no usable characters", title)
	}
	path := filepath.Join(s.Config.Path(s.Config.DraftsDir), slug+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("draft %q already exists", path)
	}

	header, err := yaml.Marshal(draftHeader{
		Title: title,
		Date:  s.now().Format(isoLayout),
	})
	if err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.Write(scaffold.DraftBody())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create drafts dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write draft: %w", err)
	}
	return path, nil
}

// InitTemplate writes the default post template unless one already exists.
// It reports whether a file was written.
func (s *Site) InitTemplate() (string, bool, error) {
	path := s.Config.Path(s.Config.TemplatePath)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return path, false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(path, scaffold.PostTemplate(), 0o644); err != nil {
		return path, false, fmt.Errorf("write template: %w", err)
	}
	return path, true, nil
}
