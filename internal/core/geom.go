// Package core provides fundamental types and utilities for the arcade platform.
// It contains no terminal or window dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned box stored as a center and half-extents,
// the same shape the game uses for paddles, bricks and the ball.
type Box struct {
	Center mgl32.Vec2
	Radius mgl32.Vec2 // Half-extents
}

// NewBox creates a box centered at c with half-extents r.
func NewBox(c, r mgl32.Vec2) Box {
	return Box{Center: c, Radius: r}
}

// Min returns the lower-left corner.
func (b Box) Min() mgl32.Vec2 {
	return b.Center.Sub(b.Radius)
}

// Max returns the upper-right corner.
func (b Box) Max() mgl32.Vec2 {
	return b.Center.Add(b.Radius)
}

// Overlap returns the intersection rectangle of two boxes.
// ok is false when the boxes do not touch on either axis.
// Touching edges count as an overlap of zero width.
func (b Box) Overlap(other Box) (lo, hi mgl32.Vec2, ok bool) {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	lo = mgl32.Vec2{max(bMin.X(), oMin.X()), max(bMin.Y(), oMin.Y())}
	hi = mgl32.Vec2{min(bMax.X(), oMax.X()), min(bMax.Y(), oMax.Y())}
	if lo.X() > hi.X() || lo.Y() > hi.Y() {
		return lo, hi, false
	}
	return lo, hi, true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of a float32.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
