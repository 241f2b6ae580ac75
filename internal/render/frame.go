// Package render defines the boundary between a game's render assembler and
// the backend that actually puts triangles on a screen. Games build a Frame
// of colored triangles plus one world-to-clip transform; a Backend consumes it.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of a colored triangle.
type Vertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
	TexCoord mgl32.Vec2
}

// Frame is everything a backend needs to draw one frame.
// Vertices are a plain triangle list (every three vertices form a triangle).
type Frame struct {
	Vertices  []Vertex
	Transform mgl32.Mat4 // Object to clip space
	Clear     color.RGBA // Background color
}

// Triangles returns the number of complete triangles in the frame.
func (f Frame) Triangles() int {
	return len(f.Vertices) / 3
}

// Backend receives assembled frames for immediate submission.
type Backend interface {
	Submit(frame Frame)
}

// Recorder is a Backend that keeps the most recent frame.
// Hosts that draw outside the game's Draw call (and tests) read it back.
type Recorder struct {
	last   Frame
	frames int
}

// Submit stores the frame, replacing the previous one.
func (r *Recorder) Submit(frame Frame) {
	r.last = frame
	r.frames++
}

// Last returns the most recently submitted frame.
func (r *Recorder) Last() Frame {
	return r.last
}

// Frames returns how many frames have been submitted.
func (r *Recorder) Frames() int {
	return r.frames
}

// Discard is a Backend that drops every frame.
type Discard struct{}

// Submit does nothing.
func (Discard) Submit(Frame) {}
