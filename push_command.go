package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/git"
)

func newPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push the current branch, offering to set the upstream",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runPush(a)
		},
	}
}

func runPush(a *app) error {
	branch := a.insp.CurrentBranch()
	if branch == "" {
		return errors.New("detached HEAD; no branch to push")
	}
	if git.HasUpstream(a.root, branch) {
		return a.git.Run("push")
	}

	tracking := git.TrackingFor(a.root, branch)
	ok, err := a.prompt.Confirm(
		fmt.Sprintf("%s has no upstream", branch),
		fmt.Sprintf("Push and set upstream to %s?", tracking.RemoteRef()),
		true,
	)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	return a.git.Run("push", "--set-upstream", tracking.Remote, tracking.LocalBranch)
}
