package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/git"
)

func newBranchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Switch, copy or delete local branches",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runBranch(a)
		},
	}
}

func runBranch(a *app) error {
	branches := a.insp.LocalBranches()
	if len(branches) == 0 {
		fmt.Fprintln(a.out, "No local branches.")
		return nil
	}
	current := a.insp.CurrentBranch()

	choices := make([]choice, len(branches))
	for i, b := range branches {
		label := b
		if b == current {
			label = b + mutedStyle.Render(" (current)")
		}
		choices[i] = choice{Value: b, Label: label}
	}
	picked, err := a.prompt.Select("Branch", choices)
	if err != nil {
		return err
	}

	actions := []choice{
		{Value: "copy", Label: "Copy the branch name"},
		{Value: "delete", Label: "Delete branches", Danger: true},
	}
	if picked != current {
		actions = append([]choice{{Value: "switch", Label: "Switch to " + picked, Default: true}}, actions...)
	}
	action, err := a.prompt.Select("What do you want to do?", actions)
	if err != nil {
		return err
	}

	switch action {
	case "switch":
		if err := a.git.Run("checkout", picked); err != nil {
			return err
		}
		fmt.Fprintln(a.out, successStyle.Render("Switched to "+picked+"."))
		return nil
	case "copy":
		if err := clipboard.WriteAll(picked); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, successStyle.Render("Copied "+picked+" to the clipboard."))
		return nil
	case "delete":
		return runBranchDelete(a, branches, current)
	default:
		return fmt.Errorf("unknown branch action: %s", action)
	}
}

func runBranchDelete(a *app, branches []string, current string) error {
	deletable := make([]choice, 0, len(branches))
	for _, b := range branches {
		if b == current {
			continue
		}
		deletable = append(deletable, choice{Value: b, Label: b})
	}
	if len(deletable) == 0 {
		fmt.Fprintln(a.out, "Only the current branch exists; nothing to delete.")
		return nil
	}

	picked, err := a.prompt.MultiSelectAll("Select branches to delete", "All branches except the current one", deletable)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		fmt.Fprintln(a.out, "Nothing selected.")
		return nil
	}

	ok, err := a.prompt.Confirm(
		fmt.Sprintf("Delete %d branch(es)?", len(picked)),
		strings.Join(picked, ", "),
		false,
	)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	deleted, failed := deleteLocalBranches(a, picked)
	if len(deleted) == 0 {
		return fmt.Errorf("no branches were deleted (%d failed)", len(failed))
	}

	if err := maybeDeleteRemoteBranches(a, deleted); err != nil {
		// Local deletions already happened, so a cancel here is no longer a
		// clean no-op.
		if errors.Is(err, errCancelled) {
			return errCancelledPartial
		}
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to delete %d of %d branch(es): %s", len(failed), len(picked), strings.Join(failed, ", "))
	}
	return nil
}

// deleteLocalBranches attempts every branch even when some fail; unmerged
// branches get an individual force-delete offer.
func deleteLocalBranches(a *app, picked []string) (deleted []string, failed []string) {
	for _, branch := range picked {
		if _, err := a.git.Output("branch", "-d", branch); err == nil {
			fmt.Fprintln(a.out, successStyle.Render("✓ deleted "+branch))
			deleted = append(deleted, branch)
			continue
		}
		force, err := a.prompt.Confirm(
			fmt.Sprintf("%s is not fully merged", branch),
			"Force delete it? Unmerged commits will be lost.",
			false,
		)
		if err != nil || !force {
			failed = append(failed, branch)
			fmt.Fprintln(a.out, warnStyle.Render("skipped "+branch))
			continue
		}
		if _, err := a.git.Output("branch", "-D", branch); err != nil {
			failed = append(failed, branch)
			fmt.Fprintln(a.out, errorStyle.Render(fmt.Sprintf("✗ %s: %v", branch, err)))
			continue
		}
		fmt.Fprintln(a.out, successStyle.Render("✓ force-deleted "+branch))
		deleted = append(deleted, branch)
	}
	return deleted, failed
}

// Remote deletion goes through each branch's configured tracking remote
// instead of matching remote refs by name suffix, which over-matches when
// two remotes carry same-named branches.
func maybeDeleteRemoteBranches(a *app, deleted []string) error {
	ok, err := a.prompt.Confirm(
		"Also delete the remote branches?",
		"Each branch's configured tracking remote is used.",
		false,
	)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for _, branch := range deleted {
		tracking := git.TrackingFor(a.root, branch)
		if _, err := a.git.Output("push", tracking.Remote, "--delete", tracking.RemoteBranch); err != nil {
			fmt.Fprintln(a.out, errorStyle.Render(fmt.Sprintf("✗ %s: %v", tracking.RemoteRef(), err)))
			continue
		}
		fmt.Fprintln(a.out, successStyle.Render("✓ deleted "+tracking.RemoteRef()))
	}
	return nil
}
