package tui

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
	"github.com/vovakirdan/skies-of-pongora/internal/render"
	"github.com/vovakirdan/skies-of-pongora/internal/storage"
)

// maxElapsed caps one simulation step so a stalled terminal does not
// tunnel the ball through the walls when it wakes up.
const maxElapsed = 0.1

// Model is the Bubble Tea model that hosts one game session.
type Model struct {
	game     registry.Game
	raster   *render.Raster
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	renderer *lipgloss.Renderer
	keys     *KeyMapper
	config   core.RuntimeConfig

	window     core.WindowSettings
	title      *string
	gameState  core.GameState
	lastTick   time.Time
	showStatus bool
	quitting   bool
	saved      bool // Whether the current session has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		raster:     render.NewRaster(0, 0),
		screen:     core.NewScreen(0, 0),
		store:      store,
		logger:     logger,
		renderer:   lipgloss.DefaultRenderer(),
		keys:       NewKeyMapper(),
		config:     cfg,
		showStatus: true,
	}
	game.SetBackend(m.raster)
	m.resize(cfg.ScreenW, cfg.ScreenH)

	game.Reset(m.config)
	m.window = game.InitialWindow()
	m.gameState = game.State()
	return m
}

// WithRenderer returns a copy of the model that styles output with r.
// SSH sessions pass a renderer bound to the remote terminal.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case ActionRestart:
		m.finish()
		m.restart()
	case ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case ActionToggleStatus:
		m.showStatus = !m.showStatus
		m.resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

// handleMouse forwards pointer motion to the game. A cell maps to the
// center of its two half-block pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := core.PointerMove(float32(msg.X)+0.5, float32(msg.Y*2)+1)
	m.game.HandleEvent(ev, m.drawable())
	return m, nil
}

// handleTick advances the game by the real time since the previous tick,
// then draws it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	elapsed := 1 / float32(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = min(float32(now.Sub(m.lastTick).Seconds()), maxElapsed)
	}
	m.lastTick = now

	prev := m.gameState
	m.game.Update(elapsed, &m.window)
	m.gameState = m.game.State()
	m.logTransitions(prev, m.gameState)

	m.game.Draw(m.drawable())
	paintScreen(m.raster, m.screen)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.window.Title != m.title {
		m.title = m.window.Title
		cmds = append(cmds, tea.SetWindowTitle(m.window.TitleString()))
	}
	return m, tea.Batch(cmds...)
}

// logTransitions logs mode changes observed between two frames.
func (m Model) logTransitions(prev, cur core.GameState) {
	if prev.Flipped != cur.Flipped {
		m.logger.Debug("orientation changed", "flipped", cur.Flipped)
	}
	if prev.Rainbow != cur.Rainbow {
		m.logger.Debug("rainbow changed", "rainbow", cur.Rainbow)
	}
	if cur.Score > prev.Score {
		m.logger.Debug("score", "score", cur.Score)
	}
}

// resize adapts the raster and screen to a terminal of cols by rows cells.
func (m *Model) resize(cols, rows int) {
	m.config.ScreenW = cols
	m.config.ScreenH = rows
	d := m.drawable()
	m.raster.Resize(d.X, d.Y)
	m.screen.Resize(d.X, d.Y/2)
}

// drawable returns the pixel area the game renders into: every cell
// row except the status line holds two pixels.
func (m Model) drawable() image.Point {
	rows := m.config.ScreenH
	if m.showStatus {
		rows--
	}
	return image.Pt(max(m.config.ScreenW, 0), max(rows, 0)*2)
}

// restart begins a new session with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.window = m.game.InitialWindow()
	m.gameState = m.game.State()
	m.lastTick = time.Time{}
	m.saved = false
	m.logger.Info("session restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// finish records the current session once.
func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true

	stats := m.game.Stats()
	m.logger.Info("session ended",
		"game", m.game.ID(),
		"frames", stats.Frames,
		"bricks", stats.BricksDestroyed,
		"score", m.gameState.Score,
	)

	if m.store == nil || stats.Frames == 0 {
		return
	}
	sum := storage.NewSessionSummary(m.game.ID(), m.config.Seed, m.gameState.Score, stats)
	if _, err := m.store.SaveSession(sum); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot writes the current raster to a PNG file.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".pongora", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))

	f, err := os.Create(path) // #nosec G304 -- path built from home dir and timestamp
	if err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, m.raster.Image()); err != nil {
		return "", fmt.Errorf("tui: cannot encode screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	faint := m.window.Opacity < faintOpacity
	out := RenderScreen(m.renderer, m.screen, faint)
	if !m.showStatus {
		return out
	}

	status := statusLine(m.game.Title(), m.gameState, m.window)
	if w := m.config.ScreenW; w > 0 && len(status) > w {
		status = status[:w]
	}
	return out + "\n" + m.renderer.NewStyle().Faint(true).Render(status)
}

// Saved reports whether the session has been recorded.
func (m Model) Saved() bool {
	return m.saved
}

// Run starts the Bubble Tea program with the given game and blocks until
// it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(Model); ok && !fm.saved {
		fm.finish()
	}
	return nil
}
