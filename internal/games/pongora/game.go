// Package pongora implements Skies of Pongora: a ball bouncing between four
// pointer-driven paddles inside a ring of bricks, with POIs that flip the
// world or turn on a rainbow palette, and an arena that grows every time
// the ball hits its outer walls.
package pongora

import (
	"image"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/config"
	"github.com/vovakirdan/skies-of-pongora/internal/core"
	"github.com/vovakirdan/skies-of-pongora/internal/registry"
	"github.com/vovakirdan/skies-of-pongora/internal/render"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Paddle indices.
const (
	PaddleLeft = iota
	PaddleRight
	PaddleBottom
	PaddleTop
)

// poiSegments is how many slices a POI circle is drawn with.
const poiSegments = 100

// Game implements the Pongora simulation. It is single-threaded: a host
// calls HandleEvent for each input event, then Update, then Draw, once
// per frame.
type Game struct {
	id    string
	cfg   config.PongoraConfig
	fixed bool // cfg was supplied by the caller and is never reloaded

	runtime core.RuntimeConfig
	layout  Layout
	paddles [4]Paddle

	ball       mgl32.Vec2
	velocity   mgl32.Vec2
	ballRadius mgl32.Vec2

	orientation Orientation
	rainbow     bool

	trail  *Trail
	camera Camera
	target mgl32.Vec2 // Pointer in camera-relative world space
	titles []string

	rng          *rand.Rand
	base         Palette
	rainbowPal   Palette
	rainbowClock float32

	score int
	stats core.SessionStats

	backend render.Backend
	batch   *render.Batch
}

// New creates the classic Pongora variant.
func New() *Game {
	return &Game{id: config.IDPongora}
}

// NewExtended creates the extended variant with portals, the rainbow POI
// and paddles at the arena edge.
func NewExtended() *Game {
	return &Game{id: config.IDExtended}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(id string, cfg config.PongoraConfig) *Game {
	return &Game{id: id, cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == config.IDExtended {
		return "Skies of Pongora (Extended)"
	}
	return "Skies of Pongora"
}

// SetBackend sets where Draw submits frames. A nil backend discards them.
func (g *Game) SetBackend(b render.Backend) {
	g.backend = b
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadPongora(configPath, g.id)
		if err != nil {
			cfg = config.DefaultFor(g.id)
		}
		if difficultyPreset != "" {
			config.ApplyPongoraPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	cfg := g.cfg

	colors, err := cfg.Palette.Colors()
	if err != nil {
		colors, _ = config.DefaultPongoraConfig().Palette.Colors()
	}
	g.base = newPalette(colors)
	g.rainbowPal = g.base
	g.rainbowClock = 0

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.layout = BuildLayout(cfg.Layout)
	g.buildPaddles()

	g.ball = mgl32.Vec2{}
	g.velocity = cfg.Physics.BallVelocity
	g.ballRadius = cfg.Physics.BallRadius
	g.orientation = Normal
	g.rainbow = false

	g.trail = NewTrail(cfg.Physics.TrailLength, g.ball)
	g.camera = NewCamera(cfg.Camera.Bounds, cfg.Camera.Velocity)
	g.target = mgl32.Vec2{}

	// Fresh storage so title pointers from the last session no longer
	// match the cycle.
	g.titles = append([]string(nil), cfg.Window.Titles...)

	g.score = 0
	g.stats = core.SessionStats{}

	if g.batch == nil {
		g.batch = render.NewBatch(mgl32.Vec2{}, 4096)
	}
}

// buildPaddles places the four paddles around the court, or at the arena
// edge when the layout asks for far paddles.
func (g *Game) buildPaddles() {
	bound := g.cfg.Layout.CourtRadius
	if g.cfg.Layout.PaddleReach == config.ReachFar {
		bound = g.cfg.Layout.ExtremeRadius
	}
	inset := g.cfg.Physics.PaddleInset
	vert := g.cfg.Physics.VertPaddleRadius
	horiz := g.cfg.Physics.HorizPaddleRadius

	g.paddles[PaddleLeft] = Paddle{Box: core.NewBox(mgl32.Vec2{-bound.X() + inset, 0}, vert), Axis: 1, Bound: bound.Y()}
	g.paddles[PaddleRight] = Paddle{Box: core.NewBox(mgl32.Vec2{bound.X() - inset, 0}, vert), Axis: 1, Bound: bound.Y()}
	g.paddles[PaddleBottom] = Paddle{Box: core.NewBox(mgl32.Vec2{0, -bound.Y() + inset}, horiz), Axis: 0, Bound: bound.X()}
	g.paddles[PaddleTop] = Paddle{Box: core.NewBox(mgl32.Vec2{0, bound.Y() - inset}, horiz), Axis: 0, Bound: bound.X()}
}

// InitialWindow returns the window the game wants when a session starts.
func (g *Game) InitialWindow() core.WindowSettings {
	ws := core.NewWindowSettings(image.Pt(g.cfg.Window.Width, g.cfg.Window.Height), image.Point{})
	if len(g.titles) > 0 {
		ws.Title = &g.titles[0]
	}
	return ws
}

// HandleEvent observes one input event. Pointer moves retarget the paddles
// through the most recent camera transform. Events are never consumed.
func (g *Game) HandleEvent(ev core.Event, windowSize image.Point) bool {
	if ev.Kind != core.EventPointerMove || windowSize.X <= 0 || windowSize.Y <= 0 {
		return false
	}
	clip := ClipFromPixel(mgl32.Vec2{ev.X, ev.Y}, windowSize)
	g.target = g.camera.ClipToWorld(clip)
	return false
}

// Update advances the simulation by elapsed seconds and writes any window
// changes into ws.
func (g *Game) Update(elapsed float32, ws *core.WindowSettings) {
	g.camera.follow(elapsed, g.cfg.Camera.FollowBall, g.ball)

	target := g.target.Add(g.camera.Pos)
	for i := range g.paddles {
		g.paddles[i].follow(target)
		g.paddles[i].clamp()
	}

	multiplier := g.cfg.Physics.Speed.Multiplier(g.score)
	g.ball = g.ball.Add(g.velocity.Mul(elapsed * multiplier))

	g.collide(ws)
	g.enforceBounds(ws)

	g.trail.Step(elapsed, g.ball)

	if g.rainbow {
		g.rainbowClock += elapsed
		if g.rainbowClock >= g.cfg.Palette.RainbowPeriod {
			g.rollRainbow()
		}
	}

	g.stats.Frames++
	g.stats.Elapsed += float64(elapsed)
}

// rollRainbow picks a new random palette.
func (g *Game) rollRainbow() {
	g.rainbowPal = randomized(g.rng, g.base)
	g.rainbowClock = 0
}

// palette returns the colors for the current modes.
func (g *Game) palette() Palette {
	p := g.base
	if g.rainbow {
		p = g.rainbowPal
	}
	if g.orientation == Flipped {
		p = p.Inverted()
	}
	return p
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:           g.score,
		Flipped:         g.orientation == Flipped,
		Rainbow:         g.rainbow,
		BricksRemaining: g.layout.LiveBricks(g.orientation),
	}
}

// Stats returns the session counters.
func (g *Game) Stats() core.SessionStats {
	return g.stats
}

// Ball returns the ball position.
func (g *Game) Ball() mgl32.Vec2 {
	return g.ball
}

// Velocity returns the ball velocity before the speed multiplier.
func (g *Game) Velocity() mgl32.Vec2 {
	return g.velocity
}

// Paddles returns the four paddles: left, right, bottom, top.
func (g *Game) Paddles() [4]Paddle {
	return g.paddles
}

// Trail returns the ball trail.
func (g *Game) Trail() *Trail {
	return g.trail
}

// Camera returns the camera.
func (g *Game) Camera() *Camera {
	return &g.camera
}

// Layout returns the level geometry.
func (g *Game) Layout() *Layout {
	return &g.layout
}

// Config returns the configuration in use.
func (g *Game) Config() config.PongoraConfig {
	return g.cfg
}

func init() {
	registry.Register(config.IDPongora, func() registry.Game {
		return New()
	})
	registry.Register(config.IDExtended, func() registry.Game {
		return NewExtended()
	})
}
