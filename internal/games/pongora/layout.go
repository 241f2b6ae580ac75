package pongora

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/config"
	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

// wallRadius is the half-thickness of the drawn arena walls.
const wallRadius = 0.05

// layoutEps absorbs float drift when stepping brick rows up to a limit.
const layoutEps = 1e-4

// Orientation selects which of the two brick sets is active.
type Orientation int

const (
	Normal Orientation = iota
	Flipped
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Flipped {
		return "Flipped"
	}
	return "Normal"
}

// Brick is a destructible rectangle. Deleted bricks are never drawn or
// collided again.
type Brick struct {
	core.Box
	Deleted bool
}

// POI is a circular trigger zone.
type POI struct {
	Position  mgl32.Vec2
	Radius    float32
	Flip      bool
	Rainbow   bool
	Starting  bool
	EndPortal bool
}

// Block is a fixed, indestructible rectangle.
type Block struct {
	core.Box
	Warp bool
}

// Layout is the static level geometry.
type Layout struct {
	Bricks [2][]Brick // Indexed by Orientation
	POIs   []POI
	Blocks []Block
	Walls  [4]core.Box // Left, right, bottom, top
}

// BuildLayout generates the level geometry. Identical configs always produce
// identical layouts in identical order.
func BuildLayout(cfg config.LayoutConfig) Layout {
	var l Layout
	l.Bricks[Normal] = buildBricks(cfg, Normal)
	l.Bricks[Flipped] = buildBricks(cfg, Flipped)

	l.POIs = make([]POI, len(cfg.POIs))
	for i, p := range cfg.POIs {
		l.POIs[i] = POI{
			Position:  p.Position,
			Radius:    p.Radius,
			Flip:      p.Flip,
			Rainbow:   p.Rainbow,
			Starting:  p.Starting,
			EndPortal: p.EndPortal,
		}
	}

	l.Blocks = make([]Block, len(cfg.Blocks))
	for i, b := range cfg.Blocks {
		l.Blocks[i] = Block{Box: core.NewBox(b.Position, b.Radius), Warp: b.Warp}
	}

	ext := cfg.ExtremeRadius
	l.Walls = [4]core.Box{
		core.NewBox(mgl32.Vec2{-ext.X() - wallRadius, 0}, mgl32.Vec2{wallRadius, ext.Y() + 2*wallRadius}),
		core.NewBox(mgl32.Vec2{ext.X() + wallRadius, 0}, mgl32.Vec2{wallRadius, ext.Y() + 2*wallRadius}),
		core.NewBox(mgl32.Vec2{0, -ext.Y() - wallRadius}, mgl32.Vec2{ext.X(), wallRadius}),
		core.NewBox(mgl32.Vec2{0, ext.Y() + wallRadius}, mgl32.Vec2{ext.X(), wallRadius}),
	}
	return l
}

// buildBricks tiles one layer of bricks outside each edge of the court,
// mirrored into all four quadrants. w runs along the edge and h across it;
// the flipped set turns every brick a quarter turn in place. Both sets
// fill a layer of the same depth.
func buildBricks(cfg config.LayoutConfig, o Orientation) []Brick {
	w, h, p := cfg.BrickWidth, cfg.BrickHeight, cfg.BrickPadding
	court := cfg.CourtRadius
	layer := float32(cfg.LayerRows) * (h + p)
	if o == Flipped {
		w, h = h, w
	}

	var bricks []Brick
	mirror := func(x, y float32, r mgl32.Vec2) {
		bricks = append(bricks,
			Brick{Box: core.NewBox(mgl32.Vec2{x, y}, r)},
			Brick{Box: core.NewBox(mgl32.Vec2{-x, y}, r)},
			Brick{Box: core.NewBox(mgl32.Vec2{x, -y}, r)},
			Brick{Box: core.NewBox(mgl32.Vec2{-x, -y}, r)},
		)
	}

	// Top and bottom
	horiz := mgl32.Vec2{w / 2, h / 2}
	for _, x := range steps(w/2+p/2, court.X()+layer, w+p) {
		for _, y := range steps(court.Y()+h, court.Y()+h+layer, h+p) {
			mirror(x, y, horiz)
		}
	}

	// Left and right
	vert := mgl32.Vec2{h / 2, w / 2}
	for _, y := range steps(w/2+p/2, court.Y()+layer, w+p) {
		for _, x := range steps(court.X()+h, court.X()+h+layer, h+p) {
			mirror(x, y, vert)
		}
	}
	return bricks
}

// steps returns start, start+step, ... up to and including limit.
// Positions are computed by index so error never accumulates.
func steps(start, limit, step float32) []float32 {
	if step <= 0 {
		return nil
	}
	var out []float32
	for i := 0; ; i++ {
		v := start + float32(i)*step
		if v > limit+layoutEps {
			return out
		}
		out = append(out, v)
	}
}

// startingPOI returns the first starting marker, if any.
func (l *Layout) startingPOI() (POI, bool) {
	for _, p := range l.POIs {
		if p.Starting {
			return p, true
		}
	}
	return POI{}, false
}

// LiveBricks counts bricks that are not deleted in one set.
func (l *Layout) LiveBricks(o Orientation) int {
	n := 0
	for _, b := range l.Bricks[o] {
		if !b.Deleted {
			n++
		}
	}
	return n
}
