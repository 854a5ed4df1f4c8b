package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/query"
)

func renderStatusBar(shown int, stats query.Stats, filterLabel string, width int, searching bool, note string) string {
	left := fmt.Sprintf(" %d/%d prompts · %d high · %d categories",
		shown, stats.Total, stats.HighEngagement, stats.CategoryCount)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if note != "" {
		noteStyle := lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
		left += " · " + noteStyle.Render(note)
	}

	right := " / search  f filter  y copy  o open  q quit "
	if searching {
		right = " esc clear  enter done "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
