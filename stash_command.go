package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/git"
	"github.com/gx-cli/gx/ui"
)

// The manage menu mixes stash refs with one synthetic entry. Stash refs
// always look like "stash@{n}", so the sentinel value cannot collide.
const clearAllValue = "clear-all"

func newStashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stash",
		Short: "Create, inspect and manage stashes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runStash(a)
		},
	}
}

func runStash(a *app) error {
	status := a.insp.Status()
	stashes := a.insp.Stashes()

	var choices []choice
	if status.HasChanges() {
		choices = append(choices, choice{
			Value: "push",
			Label: fmt.Sprintf("Stash changes (%d staged, %d modified, %d untracked)",
				status.Staged, status.Modified, status.Untracked),
		})
	}
	if len(stashes) > 0 {
		choices = append(choices,
			choice{Value: "manage", Label: fmt.Sprintf("Manage a stash (%d stashed)", len(stashes))},
			choice{Value: "list", Label: "List stashes"},
		)
	}
	if len(choices) == 0 {
		fmt.Fprintln(a.out, "Nothing to stash and no stashes to manage.")
		return nil
	}

	op, err := a.prompt.Select("Stash", choices)
	if err != nil {
		return err
	}
	switch op {
	case "push":
		return runStashPush(a)
	case "manage":
		return runStashManage(a, stashes)
	case "list":
		printStashList(a, stashes)
		return nil
	default:
		return fmt.Errorf("unknown stash operation: %s", op)
	}
}

func stashRows(stashes []git.Stash) []ui.StashRow {
	rows := make([]ui.StashRow, len(stashes))
	for i, s := range stashes {
		rows[i] = ui.StashRow{Ref: s.Ref, Message: s.Message, When: s.When}
	}
	return rows
}

func printStashList(a *app, stashes []git.Stash) {
	fmt.Fprint(a.out, ui.RenderStashList(stashRows(stashes), ui.Styles{
		Header: func(s string) string { return headerStyle.Render(s) },
		Muted:  func(s string) string { return mutedStyle.Render(s) },
	}))
}

func stashPushArgs(variant string, message string) []string {
	args := []string{"stash", "push"}
	switch variant {
	case "message":
		args = append(args, "-m", message)
	case "untracked":
		args = append(args, "--include-untracked")
	case "keep-index":
		args = append(args, "--keep-index")
	case "all":
		args = append(args, "--all")
	}
	return args
}

func runStashPush(a *app) error {
	variant, err := a.prompt.Select("How do you want to stash?", []choice{
		{Value: "default", Label: "Stash tracked changes", Default: true},
		{Value: "message", Label: "Stash with a message"},
		{Value: "untracked", Label: "Include untracked files"},
		{Value: "keep-index", Label: "Keep the index staged"},
		{Value: "all", Label: "Include untracked and ignored files"},
	})
	if err != nil {
		return err
	}

	var message string
	if variant == "message" {
		message, err = a.prompt.Input("Stash message", "", validateStashMessage)
		if err != nil {
			return err
		}
	}

	if err := a.git.Run(stashPushArgs(variant, message)...); err != nil {
		return err
	}
	reportStashCount(a)
	return nil
}

func validateStashMessage(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("message must not be empty")
	}
	return nil
}

func runStashManage(a *app, stashes []git.Stash) error {
	choices := make([]choice, 0, len(stashes)+1)
	for _, s := range stashes {
		choices = append(choices, choice{Value: s.Ref, Label: s.Label()})
	}
	choices = append(choices, choice{Value: clearAllValue, Label: "Clear ALL stashes", Danger: true})

	picked, err := a.prompt.Select("Which stash?", choices)
	if err != nil {
		return err
	}
	if picked == clearAllValue {
		return runStashClear(a, stashes)
	}
	return runStashOperation(a, picked)
}

func runStashOperation(a *app, ref string) error {
	for {
		op, err := a.prompt.Select(fmt.Sprintf("What to do with %s?", ref), []choice{
			{Value: "pop", Label: "Pop (apply and remove)"},
			{Value: "apply", Label: "Apply (keep in the list)"},
			{Value: "show", Label: "Show the diff"},
			{Value: "drop", Label: "Drop (remove without applying)", Danger: true},
		})
		if err != nil {
			return err
		}

		switch op {
		case "pop", "apply":
			if !a.insp.IsClean() {
				ok, err := a.prompt.Confirm(
					"Working tree has changes",
					fmt.Sprintf("Applying %s may conflict with them. Continue?", ref),
					false,
				)
				if err != nil {
					return err
				}
				if !ok {
					return errCancelled
				}
			}
			if err := a.git.Run("stash", op, ref); err != nil {
				return err
			}
		case "show":
			diff, err := a.insp.StashDiff(ref)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, diff)
			again, err := a.prompt.Confirm(fmt.Sprintf("Do something else with %s?", ref), "", true)
			if err != nil {
				return err
			}
			if !again {
				return nil
			}
			continue
		case "drop":
			ok, err := a.prompt.Confirm(
				fmt.Sprintf("Drop %s?", ref),
				"The stashed changes cannot be recovered.",
				false,
			)
			if err != nil {
				return err
			}
			if !ok {
				return errCancelled
			}
			if err := a.git.Run("stash", "drop", ref); err != nil {
				return err
			}
		}

		reportStashCount(a)
		return nil
	}
}

func runStashClear(a *app, stashes []git.Stash) error {
	fmt.Fprint(a.out, ui.RenderStashPurgePreview(stashRows(stashes), ui.Styles{
		Danger: func(s string) string { return dangerStyle.Render(s) },
	}))
	ok, err := a.prompt.ConfirmTyped(
		fmt.Sprintf("Clearing cannot be undone. Type %q to proceed", hardResetToken),
		hardResetToken,
	)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	if err := a.git.Run("stash", "clear"); err != nil {
		return err
	}
	reportStashCount(a)
	return nil
}

// Stash state is re-queried after every mutation so the count shown is never
// stale.
func reportStashCount(a *app) {
	fmt.Fprintln(a.out, mutedStyle.Render(fmt.Sprintf("%d stash(es) now.", len(a.insp.Stashes()))))
}
