package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mori5600/scoop-gui/internal/ui"
)

func RenderHeader(title, activity string, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(" " + title)

	right := ""
	if activity != "" {
		right = lipgloss.NewStyle().Foreground(ui.ColorWarning).
			Render(activity + " ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
