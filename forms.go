package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type choice struct {
	Value   string
	Label   string
	Danger  bool
	Default bool
}

// prompter is the blocking terminal-input surface; every method suspends the
// flow until the operator answers or aborts. The interactive flows only talk
// to this interface so tests can script answers.
type prompter interface {
	Select(title string, choices []choice) (string, error)
	MultiSelectAll(title string, allLabel string, choices []choice) ([]string, error)
	Input(title string, placeholder string, validate func(string) error) (string, error)
	Confirm(title string, description string, def bool) (bool, error)
	ConfirmTyped(title string, token string) (bool, error)
}

func gxHuhTheme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("#7D56F4"))
	t.Focused.Next = t.Focused.FocusedButton
	return &t
}

type huhPrompter struct{}

func newHuhPrompter() huhPrompter {
	return huhPrompter{}
}

func (huhPrompter) ready() error {
	if promptsDisabled() || !stdinIsTTY() {
		return errNoTerminal
	}
	return nil
}

func mapPromptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errCancelled
	}
	return err
}

// Options carry list indices instead of raw values so synthetic entries like
// "select all" can never collide with a real branch, file or stash name.
const selectAllIndex = -1

func optionLabel(c choice) string {
	if c.Danger {
		return dangerStyle.Render(c.Label)
	}
	return c.Label
}

func (p huhPrompter) Select(title string, choices []choice) (string, error) {
	if err := p.ready(); err != nil {
		return "", err
	}
	opts := make([]huh.Option[int], len(choices))
	picked := 0
	for i, c := range choices {
		opts[i] = huh.NewOption(optionLabel(c), i)
		if c.Default {
			picked = i
		}
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title(title).Options(opts...).Value(&picked),
	)).WithTheme(gxHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return choices[picked].Value, nil
}

func (p huhPrompter) MultiSelectAll(title string, allLabel string, choices []choice) ([]string, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	opts := make([]huh.Option[int], 0, len(choices)+1)
	if allLabel != "" {
		opts = append(opts, huh.NewOption(allLabel, selectAllIndex))
	}
	for i, c := range choices {
		opts = append(opts, huh.NewOption(optionLabel(c), i))
	}
	var picked []int
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().Title(title).Options(opts...).Value(&picked),
	)).WithTheme(gxHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return nil, mapPromptErr(err)
	}
	return expandSelection(picked, choices), nil
}

// expandSelection resolves the select-all sentinel and keeps results in the
// same relative order the choices were listed in.
func expandSelection(picked []int, choices []choice) []string {
	for _, idx := range picked {
		if idx == selectAllIndex {
			values := make([]string, len(choices))
			for i, c := range choices {
				values[i] = c.Value
			}
			return values
		}
	}
	sorted := append([]int(nil), picked...)
	sort.Ints(sorted)
	values := make([]string, 0, len(sorted))
	for _, idx := range sorted {
		if idx >= 0 && idx < len(choices) {
			values = append(values, choices[idx].Value)
		}
	}
	return values
}

func (p huhPrompter) Input(title string, placeholder string, validate func(string) error) (string, error) {
	if err := p.ready(); err != nil {
		return "", err
	}
	var value string
	input := huh.NewInput().Title(title).Placeholder(placeholder).Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	form := huh.NewForm(huh.NewGroup(input)).WithTheme(gxHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", mapPromptErr(err)
	}
	return strings.TrimSpace(value), nil
}

func (p huhPrompter) Confirm(title string, description string, def bool) (bool, error) {
	if err := p.ready(); err != nil {
		return false, err
	}
	result := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&result),
	)).WithTheme(gxHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, mapPromptErr(err)
	}
	return result, nil
}

// ConfirmTyped asks once and only succeeds on the exact token. Anything else
// counts as a refusal, it never re-prompts.
func (p huhPrompter) ConfirmTyped(title string, token string) (bool, error) {
	if err := p.ready(); err != nil {
		return false, err
	}
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Placeholder(token).Value(&value),
	)).WithTheme(gxHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, mapPromptErr(err)
	}
	return strings.TrimSpace(value) == token, nil
}
