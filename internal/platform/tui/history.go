package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

const maxHistoryRuns = 100

// historyView selects which runs the history screen lists.
type historyView int

const (
	viewBest   historyView = iota // Top runs of one variant
	viewRecent                    // Latest runs of every variant
)

// HistoryKeyMap defines the key bindings for the run history screen.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevVariant key.Binding
	NextVariant key.Binding
	ToggleView  key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextVariant, k.ToggleView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevVariant, k.NextVariant, k.ToggleView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev variant"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next variant"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the run history screen.
// It lists either the best runs of one variant or the latest runs of all.
type HistoryModel struct {
	store    *storage.Store // Nil shows an empty history
	variants []registry.GameInfo
	variant  int // Index into variants, used by viewBest
	view     historyView

	runs  []storage.Run
	stats map[string]*storage.GameStats

	table table.Model
	help  help.Model
	keys  HistoryKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a run history screen.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:    store,
		variants: registry.List(),
		keys:     DefaultHistoryKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// reload queries the store for the current view and rebuilds the table.
// Query errors leave the list empty; the screen is informational.
func (m *HistoryModel) reload() {
	m.runs = nil
	m.stats = nil

	if m.store != nil {
		var runs []storage.Run
		var err error
		if m.view == viewRecent {
			runs, err = m.store.RecentRuns(maxHistoryRuns)
		} else if id := m.variantID(); id != "" {
			runs, err = m.store.TopRuns(id, maxHistoryRuns)
		}
		if err == nil {
			m.runs = runs
		}

		if stats, statsErr := m.store.GetAllGamesStats(); statsErr == nil {
			m.stats = stats
		}
	}

	m.table = m.buildTable()
}

// variantID returns the selected variant's game ID.
func (m HistoryModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.variant].ID
}

// variantTitle returns the display title for a game ID.
func (m HistoryModel) variantTitle(id string) string {
	for _, v := range m.variants {
		if v.ID == id {
			return v.Title
		}
	}
	return id
}

// buildTable lays the loaded runs out for the current view.
func (m HistoryModel) buildTable() table.Model {
	var columns []table.Column
	rows := make([]table.Row, 0, len(m.runs))

	switch m.view {
	case viewRecent:
		columns = []table.Column{
			{Title: "Played", Width: 12},
			{Title: "Variant", Width: 16},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 8},
			{Title: "New", Width: 3},
		}
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				m.variantTitle(r.GameID),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Ticks),
				newHighMark(r),
			})
		}
	default:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 8},
			{Title: "New", Width: 3},
			{Title: "Played", Width: 12},
		}
		for i, r := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Ticks),
				newHighMark(r),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // Title, tabs, stats, border and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func newHighMark(r storage.Run) string {
	if r.NewHigh {
		return "*"
	}
	return ""
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			if m.view == viewBest {
				m.view = viewRecent
			} else {
				m.view = viewBest
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			if m.view == viewBest && len(m.variants) > 0 {
				m.variant = (m.variant + 1) % len(m.variants)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if m.view == viewBest && len(m.variants) > 0 {
				m.variant = (m.variant + len(m.variants) - 1) % len(m.variants)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.buildTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	// Scrolling is handled by the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(titleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n")
	b.WriteString(center(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(center(dimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = dimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nFinish a game to start the history!")
	}
	b.WriteString(center(boxStyle.Render(body), m.width))
	b.WriteString("\n")

	b.WriteString(center(dimStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// tabs renders the variant tabs, or the recent marker.
func (m HistoryModel) tabs() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	idleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)

	if m.view == viewRecent {
		return activeStyle.Render("Recent - all variants")
	}

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.variant {
			tabs[i] = activeStyle.Render(v.Title)
		} else {
			tabs[i] = idleStyle.Render(v.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes the selected variant, or every variant in the
// recent view.
func (m HistoryModel) statsLine() string {
	if len(m.stats) == 0 {
		return ""
	}

	if m.view == viewBest {
		st, ok := m.stats[m.variantID()]
		if !ok {
			return "not played yet"
		}
		return fmt.Sprintf("%d games  |  best %d  |  avg %.1f  |  last %s",
			st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("Jan 02 15:04"))
	}

	games, best := 0, 0
	for _, st := range m.stats {
		games += st.GamesCount
		best = max(best, st.HighScore)
	}
	return fmt.Sprintf("%d games  |  best %d", games, best)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the run history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
