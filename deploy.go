package pubsite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingDrafts is returned when the drafts directory does not exist.
var ErrMissingDrafts = errors.New("drafts directory not found")

// Report summarizes a deploy run.
type Report struct {
	Outcomes  []Outcome
	Posts     []Post
	IndexErr  error
	Committed bool
	Pushed    bool
	CommitErr error
	PushErr   error
}

// Changed reports whether any draft changed the output directory.
func (r *Report) Changed() bool {
	for _, o := range r.Outcomes {
		if o.Changed() {
			return true
		}
	}
	return false
}

// Failed reports whether any step of the run failed.
func (r *Report) Failed() bool {
	if r.IndexErr != nil || r.CommitErr != nil || r.PushErr != nil {
		return true
	}
	for _, o := range r.Outcomes {
		if o.Err != nil {
			return true
		}
	}
	return false
}

// Count returns how many outcomes took action a.
func (r *Report) Count(a Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == a {
			n++
		}
	}
	return n
}

// Deploy processes every draft, refreshes the index and, when something
// changed and a version control client is set, commits and pushes.
//
// A missing drafts directory or template aborts the run before anything is
// written. Per-draft failures are recorded in the report and do not stop
// the remaining drafts.
func (s *Site) Deploy(ctx context.Context) (*Report, error) {
	draftsDir := s.Config.Path(s.Config.DraftsDir)
	if !isDir(draftsDir) {
		return nil, fmt.Errorf("%w: %s", ErrMissingDrafts, draftsDir)
	}
	tmpl, err := LoadTemplate(s.Config.Path(s.Config.TemplatePath))
	if err != nil {
		return nil, err
	}
	drafts, err := listFiles(draftsDir, "*.md")
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, draft := range drafts {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Outcomes = append(report.Outcomes, s.processDraft(ctx, tmpl, draft))
	}

	// Always rebuilt: removals are not reflected anywhere else.
	report.Posts, report.IndexErr = s.RefreshIndex(ctx)
	if report.IndexErr != nil {
		s.log.Printf("index refresh failed: %v", report.IndexErr)
	}

	if !report.Changed() {
		s.log.Printf("no changes to deploy")
		return report, nil
	}
	if s.vcs == nil {
		return report, nil
	}

	msg := "Blog update " + s.now().Format("2006-01-02 15:04:05")
	if err := s.vcs.Commit(ctx, msg); err != nil {
		s.log.Printf("commit failed: %v", err)
		report.CommitErr = err
	} else {
		report.Committed = true
	}
	if err := s.vcs.Push(ctx); err != nil {
		s.log.Printf("push failed: %v", err)
		report.PushErr = err
	} else {
		report.Pushed = true
	}
	return report, nil
}

// RefreshIndex extracts metadata from every rendered post and rewrites the
// manifest, sitemap and feed. Posts that cannot be read are logged and left
// out.
func (s *Site) RefreshIndex(ctx context.Context) ([]Post, error) {
	files, err := listFiles(s.Config.Path(s.Config.OutputDir), "*.html")
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := s.readPost(path)
		if err != nil {
			s.log.Printf("failed to parse %s: %v", filepath.Base(path), err)
			continue
		}
		posts = append(posts, post)
	}
	SortPosts(posts)

	if err := BuildIndex(posts, s.Config); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Site) readPost(path string) (Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return Post{}, err
	}
	defer f.Close()
	return ExtractPost(f, filepath.Base(path), s.Config.WordsPerMinute)
}
