package tui

import (
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/corpus"
	"promptdeck/internal/query"
)

// categoryBar is the single-select category tab row. active is query.All when
// no category filter is applied.
type categoryBar struct {
	categories []string
	active     string
	filterMode bool
	cursor     int
}

func newCategoryBar(categories []string, active string) categoryBar {
	if active == "" {
		active = query.All
	}
	return categoryBar{categories: categories, active: active}
}

// selectKey activates a category; selecting the active one clears back to All.
func (b *categoryBar) selectKey(key string) {
	if b.active == key {
		b.active = query.All
		return
	}
	b.active = key
}

func (b *categoryBar) selectCurrent() {
	if b.cursor < len(b.categories) {
		b.selectKey(b.categories[b.cursor])
	}
}

func (b *categoryBar) clear() {
	b.active = query.All
}

func (b *categoryBar) activeLabel(meta func(string) corpus.Meta) string {
	if b.active == query.All {
		return "All"
	}
	return meta(b.active).Label
}

func (b *categoryBar) render(width int, meta func(string) corpus.Meta) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	// "All" tab
	if b.active == query.All {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, key := range b.categories {
		style := tabInactiveStyle
		if b.active == key {
			style = tabActiveStyle
		}
		label := meta(key).Label
		if b.filterMode && i == b.cursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
