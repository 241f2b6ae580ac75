package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// whiteTexel is the texture coordinate every solid shape samples:
// the center of a 1x1 white texture.
var whiteTexel = mgl32.Vec2{0.5, 0.5}

// Batch accumulates triangles for a frame.
// Every vertex is shifted by -Origin, so a batch can be drawn relative to a
// moving camera without touching the transform.
type Batch struct {
	Origin   mgl32.Vec2
	vertices []Vertex
}

// NewBatch returns an empty batch with room for n vertices.
func NewBatch(origin mgl32.Vec2, n int) *Batch {
	return &Batch{Origin: origin, vertices: make([]Vertex, 0, n)}
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset(origin mgl32.Vec2) {
	b.Origin = origin
	b.vertices = b.vertices[:0]
}

// Vertices returns the accumulated vertex list.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// Len returns the number of vertices in the batch.
func (b *Batch) Len() int {
	return len(b.vertices)
}

func (b *Batch) push(x, y float32, c color.RGBA) {
	b.vertices = append(b.vertices, Vertex{
		Position: mgl32.Vec3{x - b.Origin.X(), y - b.Origin.Y(), 0},
		Color:    c,
		TexCoord: whiteTexel,
	})
}

// Rect draws an axis-aligned rectangle as two CCW triangles.
func (b *Batch) Rect(center, radius mgl32.Vec2, c color.RGBA) {
	x0, x1 := center.X()-radius.X(), center.X()+radius.X()
	y0, y1 := center.Y()-radius.Y(), center.Y()+radius.Y()

	b.push(x0, y0, c)
	b.push(x1, y0, c)
	b.push(x1, y1, c)

	b.push(x0, y0, c)
	b.push(x1, y1, c)
	b.push(x0, y1, c)
}

// Ellipse draws a filled ellipse as a fan of segments+1 triangles
// around its center.
func (b *Batch) Ellipse(center, radius mgl32.Vec2, c color.RGBA, segments int) {
	if segments < 3 {
		segments = 3
	}
	x1, y1 := float32(1), float32(0)
	for i := 1; i <= segments+1; i++ {
		x0, y0 := x1, y1
		rad := float64(i) / float64(segments+1) * 2 * math.Pi
		x1, y1 = float32(math.Cos(rad)), float32(math.Sin(rad))

		b.push(center.X(), center.Y(), c)
		b.push(center.X()+radius.X()*x0, center.Y()+radius.Y()*y0, c)
		b.push(center.X()+radius.X()*x1, center.Y()+radius.Y()*y1, c)
	}
}
