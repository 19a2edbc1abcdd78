package ui

import "strings"

// Styles keeps rendering functions injectable so the views stay pure and
// testable with identity styles.
type Styles struct {
	Header   func(string) string
	Normal   func(string) string
	Selected func(string) string
	Muted    func(string) string
	Danger   func(string) string
}

func (s Styles) orIdentity() Styles {
	identity := func(v string) string { return v }
	if s.Header == nil {
		s.Header = identity
	}
	if s.Normal == nil {
		s.Normal = identity
	}
	if s.Selected == nil {
		s.Selected = identity
	}
	if s.Muted == nil {
		s.Muted = identity
	}
	if s.Danger == nil {
		s.Danger = identity
	}
	return s
}

func PadOrTrim(value string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return value + strings.Repeat(" ", width-len(runes))
}
