package ui

import (
	"strings"
	"testing"
)

func TestPadOrTrim_PadsShortValues(t *testing.T) {
	if got := PadOrTrim("abc", 6); got != "abc   " {
		t.Fatalf("expected padded value, got %q", got)
	}
}

func TestPadOrTrim_TruncatesWithEllipsis(t *testing.T) {
	got := PadOrTrim("abcdefgh", 5)
	if len([]rune(got)) != 5 {
		t.Fatalf("expected width 5, got %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestRenderCommitList_MarksCursorRow(t *testing.T) {
	rows := []CommitRow{
		{ShortHash: "aaa1111", Subject: "first", When: "1 hour ago", Author: "Ana"},
		{ShortHash: "bbb2222", Subject: "second", When: "2 hours ago", Author: "Bo"},
	}
	out := RenderCommitList(rows, 1, "", Styles{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "  ") || !strings.HasPrefix(lines[2], "> ") {
		t.Fatalf("expected cursor on second row, got %q / %q", lines[1], lines[2])
	}
	if !strings.Contains(lines[2], "bbb2222") {
		t.Fatalf("expected second commit under cursor, got %q", lines[2])
	}
}

func TestRenderCommitList_AppendsFooter(t *testing.T) {
	out := RenderCommitList(nil, 0, "copied aaa1111", Styles{})
	if !strings.Contains(out, "copied aaa1111") {
		t.Fatalf("expected footer in output, got %q", out)
	}
}

func TestRenderStashList_OneLinePerStash(t *testing.T) {
	rows := []StashRow{
		{Ref: "stash@{0}", Message: "On main: foo", When: "2 hours ago"},
		{Ref: "stash@{1}", Message: "On dev: bar", When: "1 day ago"},
	}
	out := RenderStashList(rows, Styles{})
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("expected header plus 2 rows, got %q", out)
	}
	if !strings.Contains(out, "stash@{1}") {
		t.Fatalf("expected second stash ref, got %q", out)
	}
}

func TestRenderStashPurgePreview_UsesDangerStyle(t *testing.T) {
	rows := []StashRow{{Ref: "stash@{0}", Message: "On main: foo", When: "1 hour ago"}}
	out := RenderStashPurgePreview(rows, Styles{Danger: func(s string) string { return "!" + s }})
	if !strings.Contains(out, "!These stashes will be destroyed:") {
		t.Fatalf("expected danger-styled header, got %q", out)
	}
	if !strings.Contains(out, "!stash@{0}") {
		t.Fatalf("expected danger-styled rows, got %q", out)
	}
}

func TestRenderOverview_ListsCommands(t *testing.T) {
	out := RenderOverview([]OverviewRow{
		{Name: "pull", Description: "Pull the current branch"},
		{Name: "reset", Description: "Interactive reset"},
	}, Styles{})
	if !strings.Contains(out, "pull") || !strings.Contains(out, "Interactive reset") {
		t.Fatalf("expected both commands rendered, got %q", out)
	}
}
