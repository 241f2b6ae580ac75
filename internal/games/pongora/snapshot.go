package pongora

import "math"

// Snapshot contains the complete world state in primitive types.
// Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Frames      uint64
	BallX       uint32
	BallY       uint32
	VelocityX   uint32
	VelocityY   uint32
	CameraX     uint32
	CameraY     uint32
	Orientation int
	Rainbow     bool
	Score       int

	// Camera bounds: min x, min y, max x, max y
	Bounds [4]uint32

	// Paddle centers, two values each
	PaddleData [8]uint32

	// Deleted flags for both brick sets, normal set first
	BrickData []bool

	// Trail samples, three values each: x, y, age
	TrailData []uint32
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:      g.stats.Frames,
		BallX:       math.Float32bits(g.ball.X()),
		BallY:       math.Float32bits(g.ball.Y()),
		VelocityX:   math.Float32bits(g.velocity.X()),
		VelocityY:   math.Float32bits(g.velocity.Y()),
		CameraX:     math.Float32bits(g.camera.Pos.X()),
		CameraY:     math.Float32bits(g.camera.Pos.Y()),
		Orientation: int(g.orientation),
		Rainbow:     g.rainbow,
		Score:       g.score,
		Bounds: [4]uint32{
			math.Float32bits(g.camera.BoundsMin.X()),
			math.Float32bits(g.camera.BoundsMin.Y()),
			math.Float32bits(g.camera.BoundsMax.X()),
			math.Float32bits(g.camera.BoundsMax.Y()),
		},
	}

	for i, p := range g.paddles {
		snap.PaddleData[i*2] = math.Float32bits(p.Center.X())
		snap.PaddleData[i*2+1] = math.Float32bits(p.Center.Y())
	}

	for _, set := range g.layout.Bricks {
		for _, b := range set {
			snap.BrickData = append(snap.BrickData, b.Deleted)
		}
	}

	for _, s := range g.trail.Samples() {
		snap.TrailData = append(snap.TrailData,
			math.Float32bits(s.Pos.X()),
			math.Float32bits(s.Pos.Y()),
			math.Float32bits(s.Age),
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + uint64(snap.BallX)
	h = h*31 + uint64(snap.BallY)
	h = h*31 + uint64(snap.VelocityX)
	h = h*31 + uint64(snap.VelocityY)
	h = h*31 + uint64(snap.CameraX)
	h = h*31 + uint64(snap.CameraY)
	h = h*31 + uint64(snap.Orientation) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Rainbow)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation

	for _, v := range snap.Bounds {
		h = h*31 + uint64(v)
	}

	for _, v := range snap.PaddleData {
		h = h*31 + uint64(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + boolBit(v)
	}

	for _, v := range snap.TrailData {
		h = h*31 + uint64(v)
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
