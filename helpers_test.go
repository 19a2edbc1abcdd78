package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gx-cli/gx/git"
)

type fakeGit struct {
	outputs map[string]string
	fails   map[string]string
	calls   [][]string
}

func newFakeGit() *fakeGit {
	return &fakeGit{outputs: map[string]string{}, fails: map[string]string{}}
}

func argKey(args []string) string {
	return strings.Join(args, " ")
}

func (f *fakeGit) Run(args ...string) error {
	f.calls = append(f.calls, args)
	if msg, ok := f.fails[argKey(args)]; ok {
		return &git.CommandError{Args: args, Stderr: msg, Err: errors.New("exit status 1")}
	}
	return nil
}

func (f *fakeGit) Output(args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if msg, ok := f.fails[argKey(args)]; ok {
		return "", &git.CommandError{Args: args, Stderr: msg, Err: errors.New("exit status 1")}
	}
	return f.outputs[argKey(args)], nil
}

func (f *fakeGit) callsWithPrefix(prefix ...string) [][]string {
	var matched [][]string
	for _, call := range f.calls {
		if len(call) < len(prefix) {
			continue
		}
		ok := true
		for i, p := range prefix {
			if call[i] != p {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, call)
		}
	}
	return matched
}

type recordedSelect struct {
	title   string
	choices []choice
}

// scriptedPrompter pops pre-seeded answers per prompt kind and fails the
// test when a flow asks for more input than the script provides.
type scriptedPrompter struct {
	t           *testing.T
	selects     []string
	multis      [][]string
	inputs      []string
	confirms    []bool
	typedValues []string
	seenSelects []recordedSelect
}

func newScriptedPrompter(t *testing.T) *scriptedPrompter {
	return &scriptedPrompter{t: t}
}

func (p *scriptedPrompter) Select(title string, choices []choice) (string, error) {
	p.seenSelects = append(p.seenSelects, recordedSelect{title: title, choices: choices})
	if len(p.selects) == 0 {
		p.t.Fatalf("unexpected Select(%q)", title)
	}
	value := p.selects[0]
	p.selects = p.selects[1:]
	return value, nil
}

func (p *scriptedPrompter) MultiSelectAll(title string, _ string, _ []choice) ([]string, error) {
	if len(p.multis) == 0 {
		p.t.Fatalf("unexpected MultiSelectAll(%q)", title)
	}
	values := p.multis[0]
	p.multis = p.multis[1:]
	return values, nil
}

func (p *scriptedPrompter) Input(title string, _ string, validate func(string) error) (string, error) {
	if len(p.inputs) == 0 {
		p.t.Fatalf("unexpected Input(%q)", title)
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	if validate != nil {
		if err := validate(value); err != nil {
			p.t.Fatalf("scripted input %q rejected: %v", value, err)
		}
	}
	return value, nil
}

func (p *scriptedPrompter) Confirm(title string, _ string, _ bool) (bool, error) {
	if len(p.confirms) == 0 {
		p.t.Fatalf("unexpected Confirm(%q)", title)
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func (p *scriptedPrompter) ConfirmTyped(title string, token string) (bool, error) {
	if len(p.typedValues) == 0 {
		p.t.Fatalf("unexpected ConfirmTyped(%q)", title)
	}
	value := p.typedValues[0]
	p.typedValues = p.typedValues[1:]
	return strings.TrimSpace(value) == token, nil
}

func testRepoRoot(t *testing.T, config string) string {
	t.Helper()
	root := t.TempDir()
	dotGit := filepath.Join(root, ".git")
	for _, dir := range []string{dotGit, filepath.Join(dotGit, "objects"), filepath.Join(dotGit, "refs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dotGit, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dotGit, "config"), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root
}

func newTestApp(t *testing.T, fake *fakeGit, prompt *scriptedPrompter) (*app, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a := &app{
		root:   testRepoRoot(t, ""),
		git:    fake,
		insp:   git.NewInspector(fake),
		prompt: prompt,
		out:    out,
		cfg:    Config{}.withDefaults(),
	}
	return a, out
}
