// Package window hosts a game in a desktop window with Ebitengine. The host
// owns the window: it forwards the cursor, runs the game once per tick and
// applies whatever size, position, title and opacity the game asks for.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
	"github.com/vovakirdan/skies-of-pongora/internal/render"
	"github.com/vovakirdan/skies-of-pongora/internal/storage"
)

// maxBatch is the largest vertex count one DrawTriangles call can index
// with uint16, rounded down to whole triangles.
const maxBatch = 65535

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	recorder *render.Recorder
	window   core.WindowSettings
	applied  core.WindowSettings
	cursor   image.Point
	drawable image.Point

	source   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	saved    bool
	placed   bool
}

// NewHost creates a window host and starts a session. store may be nil.
func NewHost(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &Host{
		game:     game,
		store:    store,
		logger:   logger,
		config:   cfg,
		recorder: &render.Recorder{},
		cursor:   image.Pt(-1, -1),
	}
	game.SetBackend(h.recorder)
	game.Reset(cfg)
	h.window = game.InitialWindow()
	return h
}

// Update runs one simulation step at the configured tick rate.
func (h *Host) Update() error {
	if !h.placed {
		h.place(ebiten.WindowPosition())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.finish()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.finish()
		h.restart()
	}

	if x, y := ebiten.CursorPosition(); x != h.cursor.X || y != h.cursor.Y {
		h.cursor = image.Pt(x, y)
		h.game.HandleEvent(core.PointerMove(float32(x), float32(y)), h.drawable)
	}

	h.game.Update(1/float32(ebiten.TPS()), &h.window)
	h.apply()
	return nil
}

// place adopts the OS window position, which is only known once the
// window exists. Position requests are relative to it from then on.
func (h *Host) place(x, y int) {
	h.window.Position = image.Pt(x, y)
	h.applied.Position = h.window.Position
	h.placed = true
}

// apply pushes any window changes the game requested to the OS window.
func (h *Host) apply() {
	if h.window.Size != h.applied.Size && h.window.Size.X > 0 && h.window.Size.Y > 0 {
		ebiten.SetWindowSize(h.window.Size.X, h.window.Size.Y)
	}
	if h.window.Position != h.applied.Position {
		ebiten.SetWindowPosition(h.window.Position.X, h.window.Position.Y)
	}
	if h.window.Title != h.applied.Title {
		ebiten.SetWindowTitle(h.window.TitleString())
	}
	h.applied = h.window
}

// Draw asks the game for a frame and draws its triangles.
func (h *Host) Draw(screen *ebiten.Image) {
	size := screen.Bounds().Size()
	h.game.Draw(size)
	frame := h.recorder.Last()

	opacity := min(max(h.window.Opacity, 0), 1)
	screen.Fill(withOpacity(frame.Clear, opacity))

	if h.source == nil {
		h.source = whitePixel()
	}
	h.vertices = appendVertices(h.vertices[:0], frame, size, opacity)

	for start := 0; start < len(h.vertices); start += maxBatch {
		end := min(start+maxBatch, len(h.vertices))
		batch := h.vertices[start:end]
		h.indices = h.indices[:0]
		for i := range batch {
			h.indices = append(h.indices, uint16(i)) // #nosec G115 -- batch is capped at maxBatch
		}
		screen.DrawTriangles(batch, h.indices, h.source, &ebiten.DrawTrianglesOptions{})
	}
}

// Layout uses the window size as the logical screen size, so drawable
// pixels and cursor coordinates agree.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.drawable = image.Pt(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// whitePixel returns a 1x1 white region used as the triangle source.
func whitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// withOpacity scales a color's alpha by opacity.
func withOpacity(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(float32(c.A) * opacity)
	return c
}

// appendVertices converts a frame into screen-space ebiten vertices.
// Vertex alpha is multiplied by opacity.
func appendVertices(dst []ebiten.Vertex, frame render.Frame, size image.Point, opacity float32) []ebiten.Vertex {
	n := frame.Triangles() * 3
	for _, v := range frame.Vertices[:n] {
		p := render.ToPixel(frame.Transform, v.Position, size.X, size.Y)
		dst = append(dst, ebiten.Vertex{
			DstX:   p.X(),
			DstY:   p.Y(),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255 * opacity,
		})
	}
	return dst
}

// restart begins a new session with a fresh seed.
func (h *Host) restart() {
	h.config.Seed = time.Now().UnixNano()
	h.game.Reset(h.config)
	h.window = h.game.InitialWindow()
	h.window.Position = h.applied.Position
	h.saved = false
	h.logger.Info("session restarted", "game", h.game.ID(), "seed", h.config.Seed)
}

// finish records the current session once.
func (h *Host) finish() {
	if h.saved {
		return
	}
	h.saved = true

	stats := h.game.Stats()
	state := h.game.State()
	h.logger.Info("session ended", "game", h.game.ID(), "frames", stats.Frames, "score", state.Score)

	if h.store == nil || stats.Frames == 0 {
		return
	}
	sum := storage.NewSessionSummary(h.game.ID(), h.config.Seed, state.Score, stats)
	if _, err := h.store.SaveSession(sum); err != nil {
		h.logger.Warn("could not save session", "error", err)
	}
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	h := NewHost(game, store, cfg, logger)

	ebiten.SetTPS(h.config.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if s := h.window.Size; s.X > 0 && s.Y > 0 {
		ebiten.SetWindowSize(s.X, s.Y)
	}
	ebiten.SetWindowTitle(h.window.TitleString())
	h.applied = h.window

	h.logger.Info("session started", "game", game.ID(), "seed", h.config.Seed)

	err := ebiten.RunGameWithOptions(h, &ebiten.RunGameOptions{ScreenTransparent: true})
	h.finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
