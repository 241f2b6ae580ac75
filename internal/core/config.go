package core

import "image"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Drawable width in host units (cells or pixels)
	ScreenH  int   // Drawable height in host units
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WindowSettings is the side channel a game uses to ask the host to change
// its window. The game overwrites any subset of fields during Update; the
// host owns the window and decides how to apply them.
type WindowSettings struct {
	Size     image.Point
	Position image.Point
	Opacity  float32 // 0 = invisible, 1 = opaque
	Title    *string // nil until the game picks a title
}

// NewWindowSettings returns settings for a fully opaque window with no title.
func NewWindowSettings(size, position image.Point) WindowSettings {
	return WindowSettings{
		Size:     size,
		Position: position,
		Opacity:  1,
	}
}

// TitleString returns the requested title, or "" when none is set.
func (w WindowSettings) TitleString() string {
	if w.Title == nil {
		return ""
	}
	return *w.Title
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score           int  // Current score
	Flipped         bool // Flipped orientation active
	Rainbow         bool // Rainbow palette active
	BricksRemaining int  // Live bricks in the active set
}

// SessionStats counts what happened during one play session.
// Hosts persist it when the session ends.
type SessionStats struct {
	Frames            uint64
	Elapsed           float64 // Simulated seconds
	BricksDestroyed   int
	Flips             int
	RainbowToggles    int
	Bounces           int // Paddle and block bounces
	WallBounces       int
	PortalTransitions int
}
