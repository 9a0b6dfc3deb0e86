package pubsite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// VersionControl stages, commits and pushes the site tree.
type VersionControl interface {
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// Git runs the git command line client in Dir.
type Git struct {
	Dir    string
	Stdout io.Writer // command output; discarded when nil
}

// Commit stages every change and commits it with message.
func (g *Git) Commit(ctx context.Context, message string) error {
	if err := g.run(ctx, "add", "."); err != nil {
		return err
	}
	return g.run(ctx, "commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (g *Git) Push(ctx context.Context) error {
	return g.run(ctx, "push")
}

func (g *Git) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	var stderr bytes.Buffer
	cmd.Stdout = g.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
