package cmd

import (
	"charm.land/lipgloss/v2"
)

// Output styles for the CLI commands.
var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	incorrectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

func outcomeMark(correct bool) string {
	if correct {
		return correctStyle.Render("✓")
	}
	return incorrectStyle.Render("✗")
}
