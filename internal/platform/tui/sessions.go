package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skies-of-pongora/internal/registry"
	"github.com/vovakirdan/skies-of-pongora/internal/storage"
)

// maxSessions is how many sessions the history screen loads per game.
const maxSessions = 100

// SessionsKeyMap defines the key bindings for the session history.
type SessionsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for the session history screen.
type SessionsModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	sessions   []storage.SessionSummary
	totals     storage.Totals
	loadErr    error
	table      table.Model
	help       help.Model
	keys       SessionsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewSessionsModel creates a session history model.
func NewSessionsModel(store *storage.Store, width, height int) SessionsModel {
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultSessionsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}
	return m
}

// sessionColumns returns the table columns.
func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 13},
		{Title: "Score", Width: 6},
		{Title: "Bricks", Width: 7},
		{Title: "Flips", Width: 6},
		{Title: "Rainbow", Width: 8},
		{Title: "Bounces", Width: 8},
		{Title: "Portals", Width: 8},
		{Title: "Time", Width: 8},
	}
}

// createTable creates a new table sized to the window.
func (m *SessionsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(sessionColumns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Title, tabs, totals, help
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

// load reads sessions and totals for the given game.
func (m *SessionsModel) load(gameID string) {
	m.sessions = nil
	m.totals = storage.Totals{GameID: gameID}
	m.loadErr = nil

	if m.store != nil {
		if m.sessions, m.loadErr = m.store.RecentSessions(gameID, maxSessions); m.loadErr == nil {
			m.totals, m.loadErr = m.store.Totals(gameID)
		}
	}
	m.table.SetRows(sessionRows(m.sessions))
	m.table.GotoTop()
}

// sessionRows formats sessions as table rows.
func sessionRows(sessions []storage.SessionSummary) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.BricksDestroyed),
			fmt.Sprintf("%d", s.Flips),
			fmt.Sprintf("%d", s.RainbowToggles),
			fmt.Sprintf("%d", s.Bounces+s.WallBounces),
			fmt.Sprintf("%d", s.PortalTransitions),
			s.Duration.Round(time.Second).String(),
		}
	}
	return rows
}

// Init initializes the session history model.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session history.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(sessionRows(m.sessions))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session history.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION HISTORY", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.renderTotals())
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per registered game.
func (m SessionsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTotals renders the aggregate line for the selected game.
func (m SessionsModel) renderTotals() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.loadErr != nil {
		return style.Render("Could not load sessions: " + m.loadErr.Error())
	}
	t := m.totals
	return style.Render(fmt.Sprintf("%d sessions, best score %d, %d bricks, %d flips, played %s",
		t.Sessions, t.BestScore, t.BricksDestroyed, t.Flips, t.PlayTime.Round(time.Second)))
}

// renderTableContent renders the table or an empty message.
func (m SessionsModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a round to start the history!")
	}
	return m.table.View()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if width <= textWidth {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunSessions runs the session history screen until the user quits.
func RunSessions(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewSessionsModel(store, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
