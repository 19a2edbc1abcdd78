package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/git"
)

type resetMode string

const (
	modeSoft  resetMode = "soft"
	modeMixed resetMode = "mixed"
	modeHard  resetMode = "hard"
)

const hardResetToken = "yes"

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Rewind commits, unstage files or sync to the remote",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runReset(a)
		},
	}
}

func runReset(a *app) error {
	op, err := a.prompt.Select("What do you want to reset?", []choice{
		{Value: "rewind", Label: "Rewind the last commits"},
		{Value: "unstage", Label: "Unstage files"},
		{Value: "sync", Label: "Sync this branch to its remote"},
		{Value: "commit", Label: "Reset to a specific commit"},
	})
	if err != nil {
		return err
	}
	switch op {
	case "rewind":
		return runRewind(a)
	case "unstage":
		return runUnstage(a)
	case "sync":
		return runSyncToRemote(a)
	case "commit":
		return runResetToCommit(a)
	default:
		return fmt.Errorf("unknown reset operation: %s", op)
	}
}

func resetArgs(mode resetMode, target string) []string {
	return []string{"reset", "--" + string(mode), target}
}

func runRewind(a *app) error {
	count, err := promptRewindCount(a)
	if err != nil {
		return err
	}

	commits := a.insp.RecentCommits(count)
	if len(commits) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("These commits will be rewound:"))
		for _, c := range commits {
			fmt.Fprintln(a.out, "  "+c.Label())
		}
	}

	mode, err := promptResetMode(a)
	if err != nil {
		return err
	}
	if mode == modeHard {
		ok, err := a.prompt.ConfirmTyped(
			fmt.Sprintf("Hard reset discards all uncommitted changes. Type %q to proceed", hardResetToken),
			hardResetToken,
		)
		if err != nil {
			return err
		}
		if !ok {
			return errCancelled
		}
	}

	target := fmt.Sprintf("HEAD~%d", count)
	if err := a.git.Run(resetArgs(mode, target)...); err != nil {
		return err
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Rewound %d commit(s) (%s).", count, mode)))
	return nil
}

func promptRewindCount(a *app) (int, error) {
	picked, err := a.prompt.Select("How many commits to rewind?", []choice{
		{Value: "1", Label: "1 commit", Default: true},
		{Value: "2", Label: "2 commits"},
		{Value: "3", Label: "3 commits"},
		{Value: "5", Label: "5 commits"},
		{Value: "10", Label: "10 commits"},
		{Value: "custom", Label: "Custom count"},
	})
	if err != nil {
		return 0, err
	}
	if picked != "custom" {
		return strconv.Atoi(picked)
	}
	value, err := a.prompt.Input("Number of commits (1-99)", "1", validateRewindCount)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func validateRewindCount(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errors.New("enter a number")
	}
	if n < 1 || n > 99 {
		return errors.New("count must be between 1 and 99")
	}
	return nil
}

func promptResetMode(a *app) (resetMode, error) {
	picked, err := a.prompt.Select("Reset mode", []choice{
		{Value: string(modeSoft), Label: "soft (keep changes staged)"},
		{Value: string(modeMixed), Label: "mixed (keep changes unstaged)", Default: true},
		{Value: string(modeHard), Label: "hard (discard all changes)", Danger: true},
	})
	if err != nil {
		return "", err
	}
	return resetMode(picked), nil
}

func runUnstage(a *app) error {
	files := a.insp.StagedFiles()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No staged files.")
		return nil
	}
	choices := make([]choice, len(files))
	for i, f := range files {
		choices[i] = choice{Value: f.Path, Label: f.Label()}
	}
	picked, err := a.prompt.MultiSelectAll("Select files to unstage", "All staged files", choices)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		fmt.Fprintln(a.out, "Nothing selected.")
		return nil
	}

	var failed []string
	for _, path := range picked {
		if _, err := a.git.Output("reset", "HEAD", "--", path); err != nil {
			failed = append(failed, path)
			fmt.Fprintln(a.out, errorStyle.Render(fmt.Sprintf("✗ %s: %v", path, err)))
			continue
		}
		fmt.Fprintln(a.out, successStyle.Render("✓ unstaged "+path))
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to unstage %d of %d file(s): %s", len(failed), len(picked), strings.Join(failed, ", "))
	}
	return nil
}

func runSyncToRemote(a *app) error {
	branch := a.insp.CurrentBranch()
	if branch == "" {
		return errors.New("detached HEAD; no branch to sync")
	}
	tracking := git.TrackingFor(a.root, branch)
	fmt.Fprintln(a.out, "Tracking "+remoteLabel(a.root, tracking))

	stop := startDelayedSpinner("Fetching "+tracking.RemoteRef(), fetchSpinnerDelay)
	divergence, err := a.insp.Divergence(tracking)
	stop()
	if err != nil {
		return err
	}

	if divergence.InSync() {
		fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("%s is already in sync with %s.", branch, tracking.RemoteRef())))
		return nil
	}

	if divergence.Ahead > 0 {
		fmt.Fprintln(a.out, headerStyle.Render(fmt.Sprintf("Local commits not on %s (%d):", tracking.RemoteRef(), divergence.Ahead)))
		for _, c := range divergence.AheadCommits {
			fmt.Fprintln(a.out, "  "+c.Label())
		}
	}
	if divergence.Behind > 0 {
		fmt.Fprintln(a.out, headerStyle.Render(fmt.Sprintf("Remote commits not on %s (%d):", branch, divergence.Behind)))
		for _, c := range divergence.BehindCommits {
			fmt.Fprintln(a.out, "  "+c.Label())
		}
	}

	mode, err := promptResetMode(a)
	if err != nil {
		return err
	}
	ok, err := a.prompt.Confirm(
		fmt.Sprintf("Reset %s to %s?", branch, tracking.RemoteRef()),
		fmt.Sprintf("git reset --%s %s", mode, tracking.RemoteRef()),
		false,
	)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := a.git.Run(resetArgs(mode, tracking.RemoteRef())...); err != nil {
		return err
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("%s now matches %s.", branch, tracking.RemoteRef())))
	return nil
}

func runResetToCommit(a *app) error {
	source, err := a.prompt.Select("How do you want to pick the commit?", []choice{
		{Value: "recent", Label: "Choose from the last 10 commits", Default: true},
		{Value: "hash", Label: "Type a commit hash"},
	})
	if err != nil {
		return err
	}

	var target string
	switch source {
	case "recent":
		commits := a.insp.RecentCommits(10)
		if len(commits) == 0 {
			fmt.Fprintln(a.out, "No commits found.")
			return nil
		}
		choices := make([]choice, len(commits))
		for i, c := range commits {
			choices[i] = choice{Value: c.Hash, Label: c.Label()}
		}
		target, err = a.prompt.Select("Reset to which commit?", choices)
		if err != nil {
			return err
		}
	case "hash":
		target, err = a.prompt.Input("Commit hash (at least 6 characters)", "", validateCommitHash)
		if err != nil {
			return err
		}
	}

	commit, ok := a.insp.CommitAt(target)
	if !ok {
		return fmt.Errorf("cannot resolve commit %q", target)
	}
	fmt.Fprintln(a.out, headerStyle.Render("Target commit:"))
	fmt.Fprintln(a.out, "  "+commit.Label())

	mode, err := promptResetMode(a)
	if err != nil {
		return err
	}
	ok, err = a.prompt.Confirm(
		fmt.Sprintf("Reset to %s?", commit.ShortHash),
		fmt.Sprintf("git reset --%s %s", mode, commit.ShortHash),
		false,
	)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := a.git.Run(resetArgs(mode, commit.Hash)...); err != nil {
		return err
	}
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Reset to %s (%s).", commit.ShortHash, mode)))
	return nil
}

func validateCommitHash(value string) error {
	value = strings.TrimSpace(value)
	if len(value) < 6 {
		return errors.New("hash must be at least 6 characters")
	}
	for _, r := range value {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return errors.New("hash must be hexadecimal")
		}
	}
	return nil
}
