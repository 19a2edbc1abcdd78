package main

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gx-cli/gx/git"
	"github.com/gx-cli/gx/ui"
)

func newLogCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "log [count]",
		Short: "Browse recent commits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 || n > 999 {
					return usageError(cmd, "count must be a number between 1 and 999")
				}
				count = n
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			if count == 0 {
				count = a.cfg.LogCount
			}
			return runLog(a, count, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the log without the interactive browser")
	return cmd
}

func runLog(a *app, count int, plain bool) error {
	commits := a.insp.RecentCommits(count)
	if len(commits) == 0 {
		fmt.Fprintln(a.out, "No commits.")
		return nil
	}
	if plain || !stdoutIsTTY() {
		for _, c := range commits {
			fmt.Fprintln(a.out, ui.FormatCommitLine(commitRow(c)))
		}
		return nil
	}
	p := tea.NewProgram(newLogModel(commits))
	_, err := p.Run()
	return err
}

func commitRow(c git.Commit) ui.CommitRow {
	return ui.CommitRow{ShortHash: c.ShortHash, Subject: c.Subject, When: c.When, Author: c.Author}
}

type logModel struct {
	commits []git.Commit
	cursor  int
	footer  string
}

func newLogModel(commits []git.Commit) logModel {
	return logModel{commits: commits, footer: "j/k move · enter copies the hash · q quits"}
}

func (m logModel) Init() tea.Cmd {
	return nil
}

func (m logModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.commits)-1 {
			m.cursor++
		}
	case "enter":
		hash := m.commits[m.cursor].Hash
		if err := clipboard.WriteAll(hash); err != nil {
			m.footer = "copy failed: " + err.Error()
		} else {
			m.footer = "copied " + m.commits[m.cursor].ShortHash + " to the clipboard"
		}
	}
	return m, nil
}

func (m logModel) View() string {
	rows := make([]ui.CommitRow, len(m.commits))
	for i, c := range m.commits {
		rows[i] = commitRow(c)
	}
	return ui.RenderCommitList(rows, m.cursor, m.footer, ui.Styles{
		Header:   func(s string) string { return headerStyle.Render(s) },
		Selected: func(s string) string { return bannerStyle.Render(s) },
		Muted:    func(s string) string { return mutedStyle.Render(s) },
	})
}
