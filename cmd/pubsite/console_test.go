package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eringen/pubsite"
)

func TestPrintReport(t *testing.T) {
	r := &pubsite.Report{
		Outcomes: []pubsite.Outcome{
			{Draft: "drafts/hello.md", State: pubsite.StateNew, Action: pubsite.ActionRendered},
			{Draft: "drafts/old.md", State: pubsite.StateUnpublished, Action: pubsite.ActionRemoved},
			{Draft: "drafts/same.md", State: pubsite.StateCurrent},
			{Draft: "drafts/bad.md", Action: pubsite.ActionSkipped, Err: errors.New("malformed draft")},
		},
		Posts:     []pubsite.Post{{Filename: "hello.html"}},
		Committed: true,
		PushErr:   errors.New("remote rejected"),
	}

	var buf bytes.Buffer
	printReport(&buf, r, false)
	out := buf.String()
	for _, want := range []string{
		"hello.md", "rendered (new post)",
		"old.md", "removed",
		"same.md", "up to date",
		"bad.md", "skipped: malformed draft",
		"1 posts indexed", "committed", "push: remote rejected",
		"1 rendered, 1 removed, 1 skipped, 0 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printReport(&buf, r, true)
	if strings.Contains(buf.String(), "hello.md") || !strings.Contains(buf.String(), "bad.md") {
		t.Errorf("quiet report should list only failures:\n%s", buf.String())
	}
}

func TestPrintReportNoChanges(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &pubsite.Report{}, false)
	if !strings.Contains(buf.String(), "No changes to deploy.") {
		t.Errorf("report = %q", buf.String())
	}
}
