package pubsite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotPublished is returned by Publish for drafts whose published flag is not true.
var ErrNotPublished = errors.New("draft is not published")

// State is the publish state of a single draft.
type State int

const (
	StateUnpublished State = iota // published flag absent or not true
	StateNew                      // published, no rendered post yet
	StateStale                    // published, rendered post older than the draft
	StateCurrent                  // published, rendered post at least as new as the draft
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new post"
	case StateStale:
		return "draft updated"
	case StateCurrent:
		return "up to date"
	default:
		return "not published"
	}
}

// Classify returns the publish state of a draft.
func Classify(published bool, draftMod time.Time, outputExists bool, outputMod time.Time) State {
	switch {
	case !published:
		return StateUnpublished
	case !outputExists:
		return StateNew
	case draftMod.After(outputMod):
		return StateStale
	}
	return StateCurrent
}

// Action is what the orchestrator did with a draft.
type Action int

const (
	ActionNone     Action = iota
	ActionRendered        // post written
	ActionRemoved         // post deleted after unpublishing
	ActionSkipped         // draft could not be parsed
	ActionFailed          // render or delete failed
)

func (a Action) String() string {
	switch a {
	case ActionRendered:
		return "rendered"
	case ActionRemoved:
		return "removed"
	case ActionSkipped:
		return "skipped"
	case ActionFailed:
		return "failed"
	default:
		return "none"
	}
}

// Outcome records the result of processing one draft.
type Outcome struct {
	Draft  string
	Output string
	State  State
	Action Action
	Err    error
}

// Changed reports whether the outcome modified the output directory.
func (o Outcome) Changed() bool {
	return o.Action == ActionRendered || o.Action == ActionRemoved
}

// processDraft classifies one draft and renders, removes or leaves its post.
// Failures are recorded on the Outcome, never returned.
func (s *Site) processDraft(ctx context.Context, tmpl, draftPath string) Outcome {
	name := filepath.Base(draftPath)
	out := Outcome{
		Draft:  draftPath,
		Output: filepath.Join(s.Config.Path(s.Config.OutputDir), OutputName(draftPath)),
	}

	info, err := os.Stat(draftPath)
	if err != nil {
		return s.skip(out, fmt.Errorf("stat draft: %w", err))
	}
	content, err := os.ReadFile(draftPath)
	if err != nil {
		return s.skip(out, fmt.Errorf("read draft: %w", err))
	}
	fm, body, err := ParseFrontmatter(content)
	if err != nil {
		return s.skip(out, err)
	}

	var outputMod time.Time
	outInfo, err := os.Stat(out.Output)
	exists := err == nil
	if exists {
		outputMod = outInfo.ModTime()
	}

	out.State = Classify(fm.Published(false), info.ModTime(), exists, outputMod)
	switch out.State {
	case StateNew, StateStale:
		s.log.Printf("publishing %s (%s)", name, out.State)
		if err := s.renderPost(ctx, tmpl, fm, body, out.Output); err != nil {
			s.log.Printf("failed %s: %v", name, err)
			out.Action, out.Err = ActionFailed, err
			return out
		}
		out.Action = ActionRendered
	case StateUnpublished:
		if !exists {
			break
		}
		s.log.Printf("unpublishing %s (removing %s)", name, out.Output)
		if err := os.Remove(out.Output); err != nil {
			s.log.Printf("failed %s: %v", name, err)
			out.Action, out.Err = ActionFailed, fmt.Errorf("remove post: %w", err)
			return out
		}
		out.Action = ActionRemoved
	}
	return out
}

func (s *Site) skip(out Outcome, err error) Outcome {
	s.log.Printf("error parsing %s: %v", filepath.Base(out.Draft), err)
	out.Action, out.Err = ActionSkipped, err
	return out
}

// Publish renders a single draft regardless of its modification time and
// refreshes the index. Unlike Deploy, a draft without a published flag
// counts as published.
func (s *Site) Publish(ctx context.Context, draftPath string) (string, error) {
	content, err := os.ReadFile(draftPath)
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	tmpl, err := LoadTemplate(s.Config.Path(s.Config.TemplatePath))
	if err != nil {
		return "", err
	}
	fm, body, err := ParseFrontmatter(content)
	if err != nil {
		return "", err
	}
	if !fm.Published(true) {
		return "", fmt.Errorf("%w: %s", ErrNotPublished, filepath.Base(draftPath))
	}

	outPath := filepath.Join(s.Config.Path(s.Config.OutputDir), OutputName(draftPath))
	if err := s.renderPost(ctx, tmpl, fm, body, outPath); err != nil {
		return "", err
	}
	s.log.Printf("published %s", outPath)

	if _, err := s.RefreshIndex(ctx); err != nil {
		return outPath, err
	}
	return outPath, nil
}
