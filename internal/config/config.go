// Package config provides YAML-based game configuration loading and
// difficulty presets for the Pongora variants.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

// PongoraConfig contains all configuration for one Pongora variant.
type PongoraConfig struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Camera   CameraConfig   `yaml:"camera"`
	Window   WindowConfig   `yaml:"window"`
	Palette  PaletteConfig  `yaml:"palette"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// LayoutConfig describes the static level geometry.
type LayoutConfig struct {
	BrickWidth    float32     `yaml:"brick_width"`
	BrickHeight   float32     `yaml:"brick_height"`
	BrickPadding  float32     `yaml:"brick_padding"`
	LayerRows     int         `yaml:"layer_rows"`     // Brick rows per layer
	CourtRadius   mgl32.Vec2  `yaml:"court_radius"`   // Half-extent of the paddle court
	ExtremeRadius mgl32.Vec2  `yaml:"extreme_radius"` // Half-extent of the walled arena
	PaddleReach   string      `yaml:"paddle_reach"`   // "court" or "far"
	POIs          []POISpec   `yaml:"pois"`
	Blocks        []BlockSpec `yaml:"blocks"`
}

// POISpec places one point of interest.
type POISpec struct {
	Position  mgl32.Vec2 `yaml:"position"`
	Radius    float32    `yaml:"radius"`
	Flip      bool       `yaml:"flip"`
	Rainbow   bool       `yaml:"rainbow"`
	Starting  bool       `yaml:"starting"`   // Arrival marker for portals, never collides
	EndPortal bool       `yaml:"end_portal"` // Sends the ball back to the starting marker
}

// BlockSpec places one fixed, indestructible rectangle.
type BlockSpec struct {
	Position mgl32.Vec2 `yaml:"position"`
	Radius   mgl32.Vec2 `yaml:"radius"`
	Warp     bool       `yaml:"warp"` // Paddle-style velocity warp on bounce
}

// PhysicsConfig defines ball, paddle and trail parameters.
type PhysicsConfig struct {
	BallRadius        mgl32.Vec2 `yaml:"ball_radius"`
	BallVelocity      mgl32.Vec2 `yaml:"ball_velocity"`
	VertPaddleRadius  mgl32.Vec2 `yaml:"vert_paddle_radius"`
	HorizPaddleRadius mgl32.Vec2 `yaml:"horiz_paddle_radius"`
	PaddleInset       float32    `yaml:"paddle_inset"` // Distance from the bound to the paddle center
	Speed             SpeedCurve `yaml:"speed"`
	TrailLength       float32    `yaml:"trail_length"` // Seconds
	POIOpacityInner   float32    `yaml:"poi_opacity_inner"`
	POIOpacityOuter   float32    `yaml:"poi_opacity_outer"`
}

// CameraConfig defines how the view tracks the ball and grows on bounces.
type CameraConfig struct {
	FollowBall      bool       `yaml:"follow_ball"`
	Velocity        mgl32.Vec2 `yaml:"velocity"` // Used when not following the ball
	Bounds          mgl32.Vec2 `yaml:"bounds"`   // Initial half-extent of the visible area
	BoundsPerBounce float32    `yaml:"bounds_per_bounce"`
}

// WindowConfig defines the requested host window.
type WindowConfig struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	SizePerBounce int      `yaml:"size_per_bounce"`
	Titles        []string `yaml:"titles"`
}

// PaletteConfig holds colors as "#rrggbb" or "#rrggbbaa" strings.
type PaletteConfig struct {
	Background    string   `yaml:"background"`
	Foreground    string   `yaml:"foreground"`
	Brick         string   `yaml:"brick"`
	Trail         []string `yaml:"trail"` // Newest to oldest
	RainbowPeriod float32  `yaml:"rainbow_period"`
}

// GameplayConfig defines scoring.
type GameplayConfig struct {
	BricksPerPoint int `yaml:"bricks_per_point"`
}

// Colors is a parsed PaletteConfig.
type Colors struct {
	Background color.RGBA
	Foreground color.RGBA
	Brick      color.RGBA
	Trail      []color.RGBA
}

// Paddle reach values.
const (
	ReachCourt = "court"
	ReachFar   = "far"
)

// Colors parses every palette entry.
func (p PaletteConfig) Colors() (Colors, error) {
	var c Colors
	var err error
	if c.Background, err = core.ParseHexColor(p.Background); err != nil {
		return c, fmt.Errorf("config: palette background: %w", err)
	}
	if c.Foreground, err = core.ParseHexColor(p.Foreground); err != nil {
		return c, fmt.Errorf("config: palette foreground: %w", err)
	}
	if c.Brick, err = core.ParseHexColor(p.Brick); err != nil {
		return c, fmt.Errorf("config: palette brick: %w", err)
	}
	c.Trail = make([]color.RGBA, len(p.Trail))
	for i, s := range p.Trail {
		if c.Trail[i], err = core.ParseHexColor(s); err != nil {
			return c, fmt.Errorf("config: palette trail[%d]: %w", i, err)
		}
	}
	return c, nil
}

// Validate rejects configurations the engine cannot run with.
func (c PongoraConfig) Validate() error {
	var errs []error
	l := c.Layout
	if l.BrickWidth <= 0 || l.BrickHeight <= 0 || l.BrickPadding < 0 {
		errs = append(errs, errors.New("brick dimensions must be positive"))
	}
	if l.LayerRows < 1 {
		errs = append(errs, errors.New("layer_rows must be at least 1"))
	}
	if l.CourtRadius.X() <= 0 || l.CourtRadius.Y() <= 0 {
		errs = append(errs, errors.New("court_radius must be positive"))
	}
	if l.ExtremeRadius.X() < l.CourtRadius.X() || l.ExtremeRadius.Y() < l.CourtRadius.Y() {
		errs = append(errs, errors.New("extreme_radius must contain court_radius"))
	}
	if l.PaddleReach != ReachCourt && l.PaddleReach != ReachFar {
		errs = append(errs, fmt.Errorf("unknown paddle_reach %q", l.PaddleReach))
	}
	for i, p := range l.POIs {
		if p.Radius <= 0 {
			errs = append(errs, fmt.Errorf("poi %d: radius must be positive", i))
		}
	}
	if c.Physics.TrailLength <= 0 {
		errs = append(errs, errors.New("trail_length must be positive"))
	}
	if c.Physics.POIOpacityOuter <= c.Physics.POIOpacityInner {
		errs = append(errs, errors.New("poi_opacity_outer must exceed poi_opacity_inner"))
	}
	if c.Camera.Bounds.X() <= 0 || c.Camera.Bounds.Y() <= 0 {
		errs = append(errs, errors.New("camera bounds must be positive"))
	}
	if len(c.Window.Titles) == 0 {
		errs = append(errs, errors.New("window titles must not be empty"))
	}
	if len(c.Palette.Trail) == 0 {
		errs = append(errs, errors.New("palette trail must not be empty"))
	}
	if c.Gameplay.BricksPerPoint < 1 {
		errs = append(errs, errors.New("bricks_per_point must be at least 1"))
	}
	if _, err := c.Palette.Colors(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
