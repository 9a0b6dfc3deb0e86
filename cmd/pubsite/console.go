package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/eringen/pubsite"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Width(32)
)

// printReport writes one line per draft followed by a summary. Quiet mode
// prints only failures and the summary.
func printReport(w io.Writer, r *pubsite.Report, quiet bool) {
	if !quiet {
		fmt.Fprintln(w, headingStyle.Render("Drafts"))
	}
	for _, o := range r.Outcomes {
		if quiet && o.Err == nil {
			continue
		}
		name := nameStyle.Render(filepath.Base(o.Draft))
		switch o.Action {
		case pubsite.ActionRendered:
			fmt.Fprintf(w, "  %s %s\n", name, okStyle.Render("rendered ("+o.State.String()+")"))
		case pubsite.ActionRemoved:
			fmt.Fprintf(w, "  %s %s\n", name, warnStyle.Render("removed"))
		case pubsite.ActionSkipped, pubsite.ActionFailed:
			fmt.Fprintf(w, "  %s %s\n", name, errStyle.Render(o.Action.String()+": "+o.Err.Error()))
		default:
			fmt.Fprintf(w, "  %s %s\n", name, dimStyle.Render(o.State.String()))
		}
	}

	if r.IndexErr != nil {
		fmt.Fprintln(w, errStyle.Render("index: "+r.IndexErr.Error()))
	} else {
		fmt.Fprintf(w, "%s %d posts indexed\n", okStyle.Render("✓"), len(r.Posts))
	}
	switch {
	case r.CommitErr != nil:
		fmt.Fprintln(w, errStyle.Render("commit: "+r.CommitErr.Error()))
	case r.Committed:
		fmt.Fprintf(w, "%s committed\n", okStyle.Render("✓"))
	}
	switch {
	case r.PushErr != nil:
		fmt.Fprintln(w, errStyle.Render("push: "+r.PushErr.Error()))
	case r.Pushed:
		fmt.Fprintf(w, "%s pushed\n", okStyle.Render("✓"))
	case !r.Changed():
		fmt.Fprintln(w, dimStyle.Render("No changes to deploy."))
	}

	summary := fmt.Sprintf("%d rendered, %d removed, %d skipped, %d failed",
		r.Count(pubsite.ActionRendered), r.Count(pubsite.ActionRemoved),
		r.Count(pubsite.ActionSkipped), r.Count(pubsite.ActionFailed))
	if r.Failed() {
		fmt.Fprintln(w, errStyle.Render(summary))
		return
	}
	fmt.Fprintln(w, headingStyle.Render(summary))
}
