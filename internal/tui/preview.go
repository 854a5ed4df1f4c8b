package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/corpus"
)

func renderPreview(item *corpus.Item, meta func(string) corpus.Meta, width, height, scroll int) string {
	if item == nil {
		return lipglossCenter("Select a prompt", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	var tags []string
	for _, c := range item.Categories {
		tags = append(tags, categoryBadge(meta(c)))
	}
	header := strings.Join(tags, " ") + "  " + engagementBadge(item.Engagement)
	if item.Date != "" {
		header += "  " + previewDateStyle.Render(item.Date)
	}

	body := previewBodyStyle.Width(contentWidth).Render(wrapText(item.Content, contentWidth))

	sections := []string{header, "", body}
	if item.Source != "" {
		sections = append(sections, "", previewLinkStyle.Width(contentWidth).Render("Source: "+item.Source))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
