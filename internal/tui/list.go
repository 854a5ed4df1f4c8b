package tui

import (
	"strings"

	"promptdeck/internal/corpus"
)

func renderListItem(item corpus.Item, meta func(string) corpus.Meta, selected, showBadge bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(item.Content, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(item.Content, width-4))
	}

	var tags []string
	for _, c := range item.Categories {
		tags = append(tags, categoryBadge(meta(c)))
	}
	line := "  " + strings.Join(tags, " ")
	if showBadge {
		line += " " + engagementBadge(item.Engagement)
	}
	if item.Date != "" {
		line += " " + itemTimeStyle.Render("· "+item.Date)
	}

	return title + "\n" + line
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(items []corpus.Item, meta func(string) corpus.Meta, cursor, height, width int, showBadges bool) string {
	if len(items) == 0 {
		return lipglossCenter("No matching prompts", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], meta, i == cursor, showBadges, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
