package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Question lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
}

var DefaultTheme = Theme{
	Question: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Hint:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
}
