package render

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var red = color.RGBA{R: 255, A: 255}

func TestBatchRect(t *testing.T) {
	b := NewBatch(mgl32.Vec2{1, 1}, 6)
	b.Rect(mgl32.Vec2{2, 3}, mgl32.Vec2{1, 0.5}, red)

	vs := b.Vertices()
	if len(vs) != 6 {
		t.Fatalf("Rect should emit 6 vertices, got %d", len(vs))
	}

	// Shifted by -origin
	if !vs[0].Position.ApproxEqual(mgl32.Vec3{0, 1.5, 0}) {
		t.Errorf("first vertex = %v, expected (0, 1.5, 0)", vs[0].Position)
	}
	if !vs[2].Position.ApproxEqual(mgl32.Vec3{2, 2.5, 0}) {
		t.Errorf("third vertex = %v, expected (2, 2.5, 0)", vs[2].Position)
	}
	for i, v := range vs {
		if v.Color != red {
			t.Errorf("vertex %d color = %v, expected red", i, v.Color)
		}
		if v.TexCoord != whiteTexel {
			t.Errorf("vertex %d texcoord = %v, expected %v", i, v.TexCoord, whiteTexel)
		}
	}
}

func TestBatchEllipse(t *testing.T) {
	b := NewBatch(mgl32.Vec2{}, 0)
	b.Ellipse(mgl32.Vec2{0, 10}, mgl32.Vec2{5, 5}, red, 100)

	if b.Len() != 101*3 {
		t.Fatalf("Ellipse(100) should emit %d vertices, got %d", 101*3, b.Len())
	}
	for i, v := range b.Vertices() {
		d := v.Position.Vec2().Sub(mgl32.Vec2{0, 10}).Len()
		if i%3 == 0 {
			if d > 1e-5 {
				t.Errorf("fan vertex %d should be the center, got distance %f", i, d)
			}
			continue
		}
		if d < 5-1e-4 || d > 5+1e-4 {
			t.Errorf("rim vertex %d distance = %f, expected 5", i, d)
		}
	}
}

func TestBatchReset(t *testing.T) {
	b := NewBatch(mgl32.Vec2{}, 0)
	b.Rect(mgl32.Vec2{}, mgl32.Vec2{1, 1}, red)
	b.Reset(mgl32.Vec2{3, 3})

	if b.Len() != 0 {
		t.Errorf("Reset should empty the batch, got %d vertices", b.Len())
	}
	if b.Origin != (mgl32.Vec2{3, 3}) {
		t.Errorf("Reset should set origin, got %v", b.Origin)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Submit(Frame{Vertices: make([]Vertex, 6)})
	r.Submit(Frame{Vertices: make([]Vertex, 3)})

	if r.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", r.Frames())
	}
	if r.Last().Triangles() != 1 {
		t.Errorf("Last().Triangles() = %d, expected 1", r.Last().Triangles())
	}
}

func TestRasterFillsRect(t *testing.T) {
	r := NewRaster(10, 10)
	b := NewBatch(mgl32.Vec2{}, 6)
	// Left half of clip space
	b.Rect(mgl32.Vec2{-0.5, 0}, mgl32.Vec2{0.5, 1}, red)

	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	r.Submit(Frame{Vertices: b.Vertices(), Transform: mgl32.Ident4(), Clear: bg})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := r.At(x, y)
			if x < 5 && got != red {
				t.Fatalf("pixel (%d, %d) = %v, expected red", x, y, got)
			}
			if x >= 5 && got != bg {
				t.Fatalf("pixel (%d, %d) = %v, expected background", x, y, got)
			}
		}
	}
}

func TestRasterMirroredTransform(t *testing.T) {
	r := NewRaster(4, 4)
	b := NewBatch(mgl32.Vec2{}, 6)
	// Top-right quadrant in object space
	b.Rect(mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5}, red)

	// Negative scale mirrors both axes (reverses winding)
	flip := mgl32.Scale3D(-1, -1, 1)
	r.Submit(Frame{Vertices: b.Vertices(), Transform: flip})

	if r.At(0, 3) != red {
		t.Errorf("mirrored quad should land bottom-left, got %v", r.At(0, 3))
	}
	if r.At(3, 0) == red {
		t.Error("mirrored quad should not cover the top-right")
	}
}

func TestRasterOutOfBounds(t *testing.T) {
	r := NewRaster(2, 2)
	if r.At(-1, 0) != (color.RGBA{}) || r.At(2, 2) != (color.RGBA{}) {
		t.Error("out of bounds At should return transparent black")
	}

	r.Resize(0, 0)
	r.Submit(Frame{Vertices: make([]Vertex, 3), Transform: mgl32.Ident4()})
}

func TestRasterClipsOffscreen(t *testing.T) {
	r := NewRaster(4, 4)
	b := NewBatch(mgl32.Vec2{}, 6)
	b.Rect(mgl32.Vec2{}, mgl32.Vec2{3, 3}, red)

	r.Submit(Frame{Vertices: b.Vertices(), Transform: mgl32.Ident4()})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := r.At(x, y); got != red {
				t.Fatalf("pixel (%d, %d) = %v, expected red", x, y, got)
			}
		}
	}
}

func TestRasterPartialCoverage(t *testing.T) {
	r := NewRaster(4, 1)
	b := NewBatch(mgl32.Vec2{}, 6)
	// Spans pixels 0 to 2.5
	b.Rect(mgl32.Vec2{-0.5, 0}, mgl32.Vec2{0.75, 1}, red)

	black := color.RGBA{A: 255}
	r.Submit(Frame{Vertices: b.Vertices(), Transform: mgl32.Ident4(), Clear: black})

	tests := []struct {
		x      int
		lo, hi uint8
	}{
		{0, 255, 255},
		{1, 255, 255},
		{2, 120, 135},
		{3, 0, 0},
	}
	for _, tt := range tests {
		got := r.At(tt.x, 0)
		if got.R < tt.lo || got.R > tt.hi || got.A != 255 {
			t.Errorf("pixel %d = %v, expected red in [%d, %d] and opaque", tt.x, got, tt.lo, tt.hi)
		}
	}
}

func TestRasterTranslucentOver(t *testing.T) {
	r := NewRaster(2, 2)
	b := NewBatch(mgl32.Vec2{}, 6)
	b.Rect(mgl32.Vec2{}, mgl32.Vec2{1, 1}, color.RGBA{B: 255, A: 128})

	r.Submit(Frame{Vertices: b.Vertices(), Transform: mgl32.Ident4(), Clear: color.RGBA{A: 255}})

	got := r.At(1, 1)
	if got.B < 126 || got.B > 130 || got.A != 255 {
		t.Errorf("At(1, 1) = %v, expected half blue over black", got)
	}
	if r.Image().Bounds().Dx() != 2 {
		t.Errorf("Image() width = %d, expected 2", r.Image().Bounds().Dx())
	}
}
