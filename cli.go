package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/ui"
)

func newRootCommand(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "gx",
		Short:         "Interactive git helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printOverview(cmd)
			return nil
		},
	}

	root.AddCommand(
		newPullCommand(),
		newPushCommand(),
		newBranchCommand(),
		newLogCommand(),
		newStashCommand(),
		newResetCommand(),
		newRunCommand(),
	)

	if len(args) > 1 {
		root.SetArgs(args[1:])
	}
	return root
}

func usageError(cmd *cobra.Command, message string) error {
	return fmt.Errorf("%s\n\n%s", message, strings.TrimSpace(cmd.UsageString()))
}

func printOverview(cmd *cobra.Command) {
	fmt.Println(bannerStyle.Render("GX"))
	fmt.Println()
	rows := make([]ui.OverviewRow, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		rows = append(rows, ui.OverviewRow{Name: sub.Name(), Description: sub.Short})
	}
	fmt.Print(ui.RenderOverview(rows, ui.Styles{
		Header: func(s string) string { return headerStyle.Render(s) },
		Normal: func(s string) string { return s },
		Muted:  func(s string) string { return mutedStyle.Render(s) },
	}))
}
