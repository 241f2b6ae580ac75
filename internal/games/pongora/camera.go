package pongora

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera tracks the visible world rectangle and the transforms between
// world and clip space. World geometry is drawn relative to Pos, so the
// transforms map camera-relative coordinates.
type Camera struct {
	Pos       mgl32.Vec2
	Velocity  mgl32.Vec2
	BoundsMin mgl32.Vec2
	BoundsMax mgl32.Vec2

	toClip  mgl32.Mat4
	toWorld mgl32.Mat3
}

// NewCamera returns a camera at the origin showing [-bounds, bounds].
// Both transforms are identity until the first Recompute.
func NewCamera(bounds, velocity mgl32.Vec2) Camera {
	return Camera{
		Velocity:  velocity,
		BoundsMin: bounds.Mul(-1),
		BoundsMax: bounds,
		toClip:    mgl32.Ident4(),
		toWorld:   mgl32.Ident3(),
	}
}

// Recompute rebuilds the forward transform for a drawable of the given
// pixel size and derives the inverse from it. The visible rectangle is
// letterboxed, never cropped; flipped negates the scale. A drawable with
// no area keeps the previous transforms and reports false.
func (c *Camera) Recompute(drawable image.Point, flipped bool) bool {
	if drawable.X <= 0 || drawable.Y <= 0 {
		return false
	}
	aspect := float32(drawable.X) / float32(drawable.Y)
	size := c.BoundsMax.Sub(c.BoundsMin)
	scale := min(2*aspect/size.X(), 2/size.Y())
	if flipped {
		scale = -scale
	}
	center := c.BoundsMax.Add(c.BoundsMin).Mul(0.5)

	c.toClip = mgl32.Mat4{
		scale / aspect, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, 1, 0,
		-center.X() * (scale / aspect), -center.Y() * scale, 0, 1,
	}

	inv := c.toClip.Inv()
	c.toWorld = mgl32.Mat3{
		inv[0], inv[1], 0,
		inv[4], inv[5], 0,
		inv[12], inv[13], 1,
	}
	return true
}

// ToClip returns the camera-relative world to clip transform.
func (c *Camera) ToClip() mgl32.Mat4 {
	return c.toClip
}

// ToWorld returns the clip to camera-relative world transform.
func (c *Camera) ToWorld() mgl32.Mat3 {
	return c.toWorld
}

// ClipToWorld maps a clip-space point to camera-relative world space.
func (c *Camera) ClipToWorld(clip mgl32.Vec2) mgl32.Vec2 {
	return c.toWorld.Mul3x1(clip.Vec3(1)).Vec2()
}

// follow moves the camera for one frame: it integrates its velocity and
// then snaps to target when tracking.
func (c *Camera) follow(elapsed float32, track bool, target mgl32.Vec2) {
	c.Pos = c.Pos.Add(c.Velocity.Mul(elapsed))
	if track {
		c.Pos = target
	}
}
