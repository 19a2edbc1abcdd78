package main

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD700"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)
