package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gx-cli/gx/git"
)

// app bundles what every interactive flow needs: the repository root, a git
// runner, read-only inspection over it, and a prompter. Flows never call
// os.Exit; they return results (or cancellation sentinels) to run().
type app struct {
	root   string
	git    git.Commander
	insp   *git.Inspector
	prompt prompter
	out    io.Writer
	cfg    Config
}

func newApp() (*app, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := git.FindRepoRoot(wd)
	if err != nil {
		return nil, err
	}
	shell, err := git.NewShell(root)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig()
	if err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("config not loaded, using defaults")
	}
	return &app{
		root:   root,
		git:    shell,
		insp:   git.NewInspector(shell),
		prompt: newHuhPrompter(),
		out:    os.Stdout,
		cfg:    cfg.withDefaults(),
	}, nil
}
