package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir string, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}
}

func TestReadScripts_MissingManifestIsEmpty(t *testing.T) {
	scripts, err := readScripts(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scripts) != 0 {
		t.Fatalf("expected no scripts, got %v", scripts)
	}
}

func TestReadScripts_MalformedManifestFails(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "{not json")
	if _, err := readScripts(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestScriptChoices_SortedWithCommandPreview(t *testing.T) {
	choices := scriptChoices(map[string]string{
		"test":  "vitest run",
		"build": "vite build",
		"dev":   "vite",
	})
	got := make([]string, len(choices))
	for i, c := range choices {
		got[i] = c.Value
	}
	want := []string{"build", "dev", "test"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sorted names %v, got %v", want, got)
		}
	}
	if !strings.Contains(choices[0].Label, "(vite build)") {
		t.Fatalf("expected parenthesised command preview in label, got %q", choices[0].Label)
	}
}

func TestRunScriptPicker_ExecutesSelection(t *testing.T) {
	fake := newFakeGit()
	prompt := newScriptedPrompter(t)
	prompt.selects = []string{"build"}
	a, out := newTestApp(t, fake, prompt)
	writeManifest(t, a.root, `{"scripts":{"build":"vite build","dev":"vite"}}`)

	var gotDir, gotRunner, gotScript string
	err := runScriptPicker(a, func(dir string, runner string, script string) error {
		gotDir, gotRunner, gotScript = dir, runner, script
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDir != a.root || gotRunner != "npm" || gotScript != "build" {
		t.Fatalf("expected npm run build at repo root, got %s run %s in %s", gotRunner, gotScript, gotDir)
	}
	if !strings.Contains(out.String(), "npm run build") {
		t.Fatalf("expected echoed command, got %q", out.String())
	}
}

func TestRunScriptPicker_NoScriptsSkipsPrompt(t *testing.T) {
	fake := newFakeGit()
	prompt := newScriptedPrompter(t) // any prompt call fails the test
	a, out := newTestApp(t, fake, prompt)
	writeManifest(t, a.root, `{"scripts":{}}`)

	err := runScriptPicker(a, func(string, string, string) error {
		t.Fatalf("unexpected execution")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No npm scripts") {
		t.Fatalf("expected empty report, got %q", out.String())
	}
}

func TestRunScriptPicker_HonoursConfiguredRunner(t *testing.T) {
	fake := newFakeGit()
	prompt := newScriptedPrompter(t)
	prompt.selects = []string{"dev"}
	a, _ := newTestApp(t, fake, prompt)
	a.cfg.PackageRunner = "pnpm"
	writeManifest(t, a.root, `{"scripts":{"dev":"vite"}}`)

	var gotRunner string
	err := runScriptPicker(a, func(_ string, runner string, _ string) error {
		gotRunner = runner
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRunner != "pnpm" {
		t.Fatalf("expected configured runner, got %q", gotRunner)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	got := truncate("0123456789", 6)
	if len([]rune(got)) != 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected 6-rune ellipsised string, got %q", got)
	}
}
