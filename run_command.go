package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Pick and run an npm script from package.json",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runScriptPicker(a, execScript)
		},
	}
}

type packageManifest struct {
	Scripts map[string]string `json:"scripts"`
}

// readScripts loads the scripts table from package.json at dir; a missing
// manifest is an empty result, not an error.
func readScripts(dir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse package.json: %w", err)
	}
	return manifest.Scripts, nil
}

func scriptChoices(scripts map[string]string) []choice {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	choices := make([]choice, len(names))
	for i, name := range names {
		choices[i] = choice{
			Value: name,
			Label: name + mutedStyle.Render(" ("+truncate(scripts[name], 60)+")"),
		}
	}
	return choices
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-1]) + "…"
}

func runScriptPicker(a *app, execute func(dir string, runner string, script string) error) error {
	scripts, err := readScripts(a.root)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		fmt.Fprintln(a.out, "No npm scripts found.")
		return nil
	}
	picked, err := a.prompt.Select("Run which script?", scriptChoices(scripts))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, mutedStyle.Render(fmt.Sprintf("%s run %s", a.cfg.PackageRunner, picked)))
	return execute(a.root, a.cfg.PackageRunner, picked)
}

func execScript(dir string, runner string, script string) error {
	bin, err := exec.LookPath(runner)
	if err != nil {
		return fmt.Errorf("%s not installed", runner)
	}
	cmd := exec.Command(bin, "run", script)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
