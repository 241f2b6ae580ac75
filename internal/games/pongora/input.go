package pongora

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// ClipFromPixel converts a window pixel (top-left origin, +y down) to clip
// space (center origin, +y up, [-1, 1]). Coordinates address pixel centers.
func ClipFromPixel(p mgl32.Vec2, size image.Point) mgl32.Vec2 {
	return mgl32.Vec2{
		(p.X()+0.5)/float32(size.X)*2 - 1,
		(p.Y()+0.5)/float32(size.Y)*-2 + 1,
	}
}
