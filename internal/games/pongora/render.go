package pongora

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/render"
)

// Draw assembles the frame and hands it to the backend. Shapes are drawn
// back to front: POIs, trail, walls, paddles, ball, bricks, blocks.
// Everything is offset by the camera position.
func (g *Game) Draw(drawable image.Point) {
	g.camera.Recompute(drawable, g.orientation == Flipped)

	pal := g.palette()
	b := g.batch
	b.Reset(g.camera.Pos)

	for _, poi := range g.layout.POIs {
		b.Ellipse(poi.Position, mgl32.Vec2{poi.Radius, poi.Radius}, pal.POI, poiSegments)
	}

	g.drawTrail(b, pal)

	for _, w := range g.layout.Walls {
		b.Rect(w.Center, w.Radius, pal.Foreground)
	}

	for _, p := range g.paddles {
		b.Rect(p.Center, p.Radius, pal.Foreground)
	}

	b.Rect(g.ball, g.ballRadius, pal.Foreground)

	for _, br := range g.layout.Bricks[g.orientation] {
		if !br.Deleted {
			b.Rect(br.Center, br.Radius, pal.Brick)
		}
	}

	for _, bl := range g.layout.Blocks {
		b.Rect(bl.Center, bl.Radius, pal.Foreground)
	}

	backend := g.backend
	if backend == nil {
		backend = render.Discard{}
	}
	backend.Submit(render.Frame{
		Vertices:  b.Vertices(),
		Transform: g.camera.ToClip(),
		Clear:     pal.Background,
	})
}

// drawTrail draws one ball-sized square per trail color, oldest first,
// at evenly spaced ages up to the trail length.
func (g *Game) drawTrail(b *render.Batch, pal Palette) {
	if g.trail.Len() < 2 {
		return
	}
	n := len(pal.Trail)
	for i := n - 1; i >= 0; i-- {
		age := float32(i+1) / float32(n) * g.trail.Length()
		at, ok := g.trail.At(age)
		if !ok {
			break
		}
		b.Rect(at, g.ballRadius, pal.Trail[i])
	}
}
