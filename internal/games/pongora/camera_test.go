package pongora

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraIdentityBeforeRecompute(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})

	if c.ToClip() != mgl32.Ident4() {
		t.Error("ToClip() should be identity before the first Recompute")
	}
	p := mgl32.Vec2{0.3, -0.7}
	if got := c.ClipToWorld(p); !got.ApproxEqual(p) {
		t.Errorf("ClipToWorld(%v) = %v, expected identity", p, got)
	}
}

func TestCameraRecomputeScale(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})
	if !c.Recompute(image.Pt(800, 600), false) {
		t.Fatal("Recompute should succeed for a non-empty drawable")
	}

	// Bounds exactly fill a 4:3 drawable
	corner := c.ToClip().Mul4x1(mgl32.Vec4{8, 6, 0, 1})
	if !corner.Vec2().ApproxEqualThreshold(mgl32.Vec2{1, 1}, 1e-5) {
		t.Errorf("corner maps to %v, expected (1, 1)", corner.Vec2())
	}
}

func TestCameraLetterbox(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})
	// Very wide drawable: height limits the scale
	c.Recompute(image.Pt(1600, 600), false)

	top := c.ToClip().Mul4x1(mgl32.Vec4{0, 6, 0, 1})
	right := c.ToClip().Mul4x1(mgl32.Vec4{8, 0, 0, 1})
	if !mgl32.FloatEqualThreshold(top.Y(), 1, 1e-5) {
		t.Errorf("top edge maps to y = %v, expected 1", top.Y())
	}
	if right.X() > 1 {
		t.Errorf("right edge maps to x = %v, should stay inside clip space", right.X())
	}
}

func TestCameraFlippedNegatesScale(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})
	c.Recompute(image.Pt(800, 600), true)

	corner := c.ToClip().Mul4x1(mgl32.Vec4{8, 6, 0, 1})
	if !corner.Vec2().ApproxEqualThreshold(mgl32.Vec2{-1, -1}, 1e-5) {
		t.Errorf("flipped corner maps to %v, expected (-1, -1)", corner.Vec2())
	}
}

func TestCameraInverseConsistent(t *testing.T) {
	tests := []struct {
		name     string
		drawable image.Point
		flipped  bool
		min, max mgl32.Vec2
	}{
		{"square", image.Pt(500, 500), false, mgl32.Vec2{-8, -6}, mgl32.Vec2{8, 6}},
		{"wide flipped", image.Pt(1920, 1080), true, mgl32.Vec2{-8, -6}, mgl32.Vec2{8, 6}},
		{"grown bounds", image.Pt(640, 480), false, mgl32.Vec2{-9.5, -6.25}, mgl32.Vec2{8.75, 7}},
		{"tall", image.Pt(300, 900), true, mgl32.Vec2{-8.25, -6}, mgl32.Vec2{8, 6.5}},
	}

	points := []mgl32.Vec2{{0, 0}, {3, -2}, {-7.5, 5.5}, {12, 12}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})
			c.BoundsMin, c.BoundsMax = tt.min, tt.max
			c.Recompute(tt.drawable, tt.flipped)

			for _, p := range points {
				clip := c.ToClip().Mul4x1(p.Vec4(0, 1)).Vec2()
				back := c.ClipToWorld(clip)
				if !back.ApproxEqualThreshold(p, 1e-3) {
					t.Errorf("round trip of %v = %v", p, back)
				}
			}
		})
	}
}

func TestCameraZeroDrawableKeepsTransform(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{})
	c.Recompute(image.Pt(800, 600), false)
	before := c.ToClip()

	if c.Recompute(image.Pt(0, 600), false) {
		t.Error("Recompute should report false for a zero-width drawable")
	}
	if c.ToClip() != before {
		t.Error("zero drawable should keep the previous transform")
	}
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(mgl32.Vec2{8, 6}, mgl32.Vec2{2, 0})

	c.follow(0.5, false, mgl32.Vec2{9, 9})
	if c.Pos != (mgl32.Vec2{1, 0}) {
		t.Errorf("drifting camera Pos = %v, expected (1, 0)", c.Pos)
	}

	c.follow(0.5, true, mgl32.Vec2{9, 9})
	if c.Pos != (mgl32.Vec2{9, 9}) {
		t.Errorf("tracking camera Pos = %v, expected (9, 9)", c.Pos)
	}
}

func TestClipFromPixel(t *testing.T) {
	size := image.Pt(100, 50)

	tests := []struct {
		pixel    mgl32.Vec2
		expected mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{-0.99, 0.98}},
		{mgl32.Vec2{49.5, 24.5}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{99, 49}, mgl32.Vec2{0.99, -0.98}},
	}

	for _, tt := range tests {
		got := ClipFromPixel(tt.pixel, size)
		if !got.ApproxEqualThreshold(tt.expected, 1e-5) {
			t.Errorf("ClipFromPixel(%v) = %v, expected %v", tt.pixel, got, tt.expected)
		}
	}
}
