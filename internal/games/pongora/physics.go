package pongora

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

// warpBlend is how far a warped bounce pulls the tangential velocity toward
// the aim derived from the hit offset.
const warpBlend = 0.75

// paddleClampFactor keeps this many paddle half-lengths between a paddle's
// center and the bound on its free axis.
const paddleClampFactor = 1.5

// Paddle is a player-controlled rectangle. One axis follows the pointer,
// the other is fixed by the arena.
type Paddle struct {
	core.Box
	Axis  int     // Free axis: 0 = x, 1 = y
	Bound float32 // Half-extent of the area the paddle moves in
}

// follow moves the paddle's free axis to the target.
func (p *Paddle) follow(target mgl32.Vec2) {
	p.Center[p.Axis] = target[p.Axis]
}

// clamp keeps the free axis inside [-Bound + 1.5r, Bound - 1.5r].
func (p *Paddle) clamp() {
	limit := p.Bound - p.Radius[p.Axis]*paddleClampFactor
	p.Center[p.Axis] = max(p.Center[p.Axis], -limit)
	p.Center[p.Axis] = min(p.Center[p.Axis], limit)
}

// ballBox returns the ball's bounding box.
func (g *Game) ballBox() core.Box {
	return core.NewBox(g.ball, g.ballRadius)
}

// rectVsBall bounces the ball off a rectangle it overlaps.
// The bounce axis is the one with the narrower overlap, which approximates
// the side the ball came in from without a time-of-impact search. The ball
// is placed just outside the rectangle on that axis and the velocity
// component is pointed away. With warp, the other velocity component is
// pulled toward the hit offset so the player can aim.
func (g *Game) rectVsBall(box core.Box, warp bool, ws *core.WindowSettings) bool {
	lo, hi, ok := g.ballBox().Overlap(box)
	if !ok {
		return false
	}

	axis := 0
	if hi.X()-lo.X() > hi.Y()-lo.Y() {
		axis = 1
	}
	reach := box.Radius[axis] + g.ballRadius[axis]
	if g.ball[axis] > box.Center[axis] {
		g.ball[axis] = box.Center[axis] + reach
		g.velocity[axis] = core.Abs(g.velocity[axis])
	} else {
		g.ball[axis] = box.Center[axis] - reach
		g.velocity[axis] = -core.Abs(g.velocity[axis])
	}

	if warp {
		g.warpVelocity(box, 1-axis)
	}

	g.cycleTitle(ws)
	return true
}

// warpVelocity blends one velocity component toward the ball's normalized
// offset from the rectangle center, keeping total speed. It runs for
// bounces on either axis, so the top and bottom paddles aim too.
func (g *Game) warpVelocity(box core.Box, axis int) {
	speed := g.velocity.Len()
	aim := (g.ball[axis] - box.Center[axis]) / (box.Radius[axis] + g.ballRadius[axis])
	g.velocity[axis] += (aim - g.velocity[axis]) * warpBlend
	if l := g.velocity.Len(); l > 0 {
		g.velocity = g.velocity.Mul(speed / l)
	}
}

// circleVsBall handles the ball against a circle. For POIs it also fades
// the requested window opacity as the ball closes in, whether or not it
// touches. On contact the velocity is reflected across the contact normal
// and the ball is put back on the circle's edge; POI flags then fire.
// A flip sends the ball back the way it came instead of reflecting it.
func (g *Game) circleVsBall(center mgl32.Vec2, radius float32, poi *POI, ws *core.WindowSettings) bool {
	displacement := center.Sub(g.ball)
	dist := displacement.Len()

	if poi != nil && dist <= radius+g.cfg.Physics.POIOpacityOuter {
		inner, outer := g.cfg.Physics.POIOpacityInner, g.cfg.Physics.POIOpacityOuter
		fade := (dist - (radius + inner)) / (outer - inner)
		// Opacity stays in [0, 1]
		ws.Opacity = max(min(ws.Opacity, fade), 0)
	}

	// A zero displacement has no normal to reflect across.
	if dist > radius || dist == 0 {
		return false
	}

	incoming := g.velocity
	n := displacement.Mul(1 / dist)
	g.velocity = g.velocity.Sub(n.Mul(2 * g.velocity.Dot(n)))
	g.ball = center.Sub(n.Mul(radius))

	if poi != nil {
		g.applyPOI(poi, incoming)
	}

	g.cycleTitle(ws)
	return true
}

// applyPOI fires a POI's capability flags after contact. Flags fire on
// every frame of contact.
func (g *Game) applyPOI(poi *POI, incoming mgl32.Vec2) {
	if poi.Flip {
		if g.orientation == Normal {
			g.orientation = Flipped
		} else {
			g.orientation = Normal
		}
		g.velocity = incoming.Mul(-1)
		g.trail.Reset(g.ball)
		g.stats.Flips++
	}
	if poi.Rainbow {
		g.rainbow = !g.rainbow
		if g.rainbow {
			g.rollRainbow()
		}
		g.stats.RainbowToggles++
	}
	if poi.EndPortal {
		if start, ok := g.layout.startingPOI(); ok {
			g.ball = start.Position
			g.trail.Reset(g.ball)
			g.stats.PortalTransitions++
		}
	}
}

// collide runs every collision check for one frame in priority order.
func (g *Game) collide(ws *core.WindowSettings) {
	for i := range g.paddles {
		if g.rectVsBall(g.paddles[i].Box, true, ws) {
			g.stats.Bounces++
		}
	}

	bricks := g.layout.Bricks[g.orientation]
	for i := range bricks {
		if bricks[i].Deleted {
			continue
		}
		if g.rectVsBall(bricks[i].Box, false, ws) {
			bricks[i].Deleted = true
			g.stats.BricksDestroyed++
			g.score = g.stats.BricksDestroyed / max(g.cfg.Gameplay.BricksPerPoint, 1)
		}
	}

	ws.Opacity = 1
	for i := range g.layout.POIs {
		poi := &g.layout.POIs[i]
		if poi.Starting {
			continue
		}
		g.circleVsBall(poi.Position, poi.Radius, poi, ws)
	}

	for _, b := range g.layout.Blocks {
		if g.rectVsBall(b.Box, b.Warp, ws) {
			g.stats.Bounces++
		}
	}
}

// enforceBounds keeps the ball inside the arena walls. Each wall hit also
// grows the visible area and the requested window on that side.
func (g *Game) enforceBounds(ws *core.WindowSettings) {
	ext := g.cfg.Layout.ExtremeRadius
	r := g.ballRadius
	d := g.cfg.Camera.BoundsPerBounce
	grow := g.cfg.Window.SizePerBounce

	// Top
	if g.ball.Y() > ext.Y()-r.Y() {
		g.ball[1] = ext.Y() - r.Y()
		if g.velocity.Y() > 0 {
			g.velocity[1] = -g.velocity.Y()
		}
		g.camera.BoundsMax[1] += d
		g.camera.Pos[1] += d * 0.5
		ws.Size.Y += grow
		ws.Position.Y -= grow
		g.wallBounce(ws)
	}
	// Bottom
	if g.ball.Y() < -ext.Y()+r.Y() {
		g.ball[1] = -ext.Y() + r.Y()
		if g.velocity.Y() < 0 {
			g.velocity[1] = -g.velocity.Y()
		}
		g.camera.BoundsMin[1] -= d
		g.camera.Pos[1] -= d * 0.5
		ws.Size.Y += grow
		g.wallBounce(ws)
	}
	// Right
	if g.ball.X() > ext.X()-r.X() {
		g.ball[0] = ext.X() - r.X()
		if g.velocity.X() > 0 {
			g.velocity[0] = -g.velocity.X()
		}
		g.camera.BoundsMax[0] += d
		g.camera.Pos[0] += d * 0.5
		ws.Size.X += grow
		g.wallBounce(ws)
	}
	// Left
	if g.ball.X() < -ext.X()+r.X() {
		g.ball[0] = -ext.X() + r.X()
		if g.velocity.X() < 0 {
			g.velocity[0] = -g.velocity.X()
		}
		g.camera.BoundsMin[0] -= d
		g.camera.Pos[0] -= d * 0.5
		ws.Size.X += grow
		ws.Position.X -= grow
		g.wallBounce(ws)
	}
}

func (g *Game) wallBounce(ws *core.WindowSettings) {
	g.stats.WallBounces++
	g.cycleTitle(ws)
}
