package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptdeck/internal/browser"
	"promptdeck/internal/clipboard"
	"promptdeck/internal/config"
	"promptdeck/internal/corpus"
	"promptdeck/internal/query"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHelp
)

type App struct {
	cfg    *config.Config
	store  *corpus.Store
	engine *query.Engine

	// Derived once per corpus load; the corpus is immutable for the session.
	taxonomy []string
	stats    query.Stats

	// Current filter output, recomputed synchronously on every state change.
	items []corpus.Item

	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	searchInput   textinput.Model
	categoryBar   categoryBar
	previewScroll int
	note          string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg      *config.Config
	Store    *corpus.Store
	Category string
	Search   string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search prompts..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.SetValue(opts.Search)

	engine := query.New(opts.Store)

	a := &App{
		cfg:         opts.Cfg,
		store:       opts.Store,
		engine:      engine,
		taxonomy:    engine.Taxonomy(),
		stats:       engine.Stats(),
		searchInput: ti,
	}
	a.categoryBar = newCategoryBar(a.taxonomy, opts.Category)
	a.requery()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// requery re-runs the filter against the engine. It is cheap enough to run on
// every keystroke, so no debouncing.
func (a *App) requery() {
	a.items = a.engine.Filter(a.categoryBar.active, a.searchInput.Value())
	if a.cursor >= len(a.items) {
		a.cursor = max(0, len(a.items)-1)
	}
	a.previewScroll = 0
}

func (a *App) copyCurrentCmd() tea.Cmd {
	if len(a.items) == 0 || a.cursor >= len(a.items) {
		return nil
	}
	content := a.items[a.cursor].Content
	return func() tea.Msg {
		return copiedMsg{err: clipboard.Copy(content)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func expireNoteCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return noteExpiredMsg{}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case copiedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.note = "copied"
		return a, expireNoteCmd()

	case noteExpiredMsg:
		a.note = ""
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.items)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "g":
		if a.focus == focusList {
			a.cursor = 0
			a.previewScroll = 0
		}
		return a, nil
	case "G":
		if a.focus == focusList && len(a.items) > 0 {
			a.cursor = len(a.items) - 1
			a.previewScroll = 0
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "y", "c":
		return a, a.copyCurrentCmd()
	case "o", "enter":
		if len(a.items) > 0 && a.cursor < len(a.items) {
			if src := a.items[a.cursor].Source; src != "" {
				return a, openBrowserCmd(src)
			}
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		a.categoryBar.filterMode = true
		return a, nil
	case "a":
		a.categoryBar.clear()
		a.cursor = 0
		a.requery()
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.requery()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-query on actual value changes, not cursor moves etc.
	if a.searchInput.Value() != before {
		a.requery()
	}
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.categoryBar.filterMode = false
		return a, nil
	case "left", "h":
		if a.categoryBar.cursor > 0 {
			a.categoryBar.cursor--
		}
		return a, nil
	case "right", "l":
		if a.categoryBar.cursor < len(a.categoryBar.categories)-1 {
			a.categoryBar.cursor++
		}
		return a, nil
	case "a":
		a.categoryBar.clear()
		a.cursor = 0
		a.requery()
		return a, nil
	case " ", "enter":
		a.categoryBar.selectCurrent()
		a.cursor = 0
		a.requery()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.categoryBar.categories) {
			a.categoryBar.selectKey(a.categoryBar.categories[idx])
			a.cursor = 0
			a.requery()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  promptdeck")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	meta := a.store.CategoryMeta

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.45)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("promptdeck")
	headerRight := headerDateStyle.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Category bar (search input replaces it while searching)
	filter := a.categoryBar.render(a.width, meta)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.items, meta, a.cursor, contentHeight, innerListW, a.cfg.BadgesEnabled())

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	var selected *corpus.Item
	if len(a.items) > 0 && a.cursor < len(a.items) {
		selected = &a.items[a.cursor]
	}
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(selected, meta, innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	// Join panes
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	// Status bar
	status := renderStatusBar(
		len(a.items),
		a.stats,
		a.categoryBar.activeLabel(meta),
		a.width,
		a.mode == modeSearch,
		a.note,
	)

	// Error display
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("promptdeck")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate prompt list\n" +
		"  g/G           Jump to top/bottom\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Actions") + "\n" +
		"  y, c          Copy prompt to clipboard\n" +
		"  o, enter      Open source link in browser\n" +
		"  /             Search prompts\n" +
		"  f             Toggle category filter mode\n" +
		"  a             Show all categories\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between categories\n" +
		"  space/enter   Select category (again to clear)\n" +
		"  1-9           Select category by number\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
