package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"
)

// Raster is a software Backend that fills a pixel buffer.
// Hosts without a GPU (the terminal) draw the buffer themselves.
// Pixel (0, 0) is the top-left corner; clip-space +y points up.
type Raster struct {
	img *image.RGBA
	z   vector.Rasterizer
}

// NewRaster allocates a w x h pixel buffer.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// Resize reallocates the buffer when the size changes.
func (r *Raster) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if r.img != nil && r.img.Rect.Dx() == w && r.img.Rect.Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Width returns the buffer width in pixels.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// At returns the pixel at (x, y), or transparent black out of bounds.
// Every pixel is opaque after a Submit.
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Image returns the underlying buffer. It is overwritten by the next Submit.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Submit clears to the frame background and rasterizes the triangles in
// order, compositing each over what is already there. Consecutive triangles
// of one color are filled as a single path so shared edges leave no seam.
func (r *Raster) Submit(frame Frame) {
	bg := frame.Clear
	bg.A = 255
	for i := 0; i < len(r.img.Pix); i += 4 {
		r.img.Pix[i+0] = bg.R
		r.img.Pix[i+1] = bg.G
		r.img.Pix[i+2] = bg.B
		r.img.Pix[i+3] = bg.A
	}
	if r.img.Rect.Empty() {
		return
	}

	vs := frame.Vertices[:frame.Triangles()*3]
	for start := 0; start < len(vs); {
		end := start + 3
		for end < len(vs) && vs[end].Color == vs[start].Color {
			end += 3
		}
		r.fill(frame.Transform, vs[start:end], vs[start].Color)
		start = end
	}
}

// toPixel maps an object-space position into this raster's pixels.
func (r *Raster) toPixel(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec2 {
	return ToPixel(m, p, r.Width(), r.Height())
}

// ToPixel maps an object-space position through the transform into
// continuous pixel coordinates of a w x h target with a top-left origin.
func ToPixel(m mgl32.Mat4, p mgl32.Vec3, w, h int) mgl32.Vec2 {
	clip := m.Mul4x1(p.Vec4(1))
	return mgl32.Vec2{
		(clip.X() + 1) * 0.5 * float32(w),
		(1 - clip.Y()) * 0.5 * float32(h),
	}
}

// fill draws a run of triangles sharing one color. The rasterizer only
// covers the run's bounding box, clipped to the buffer.
func (r *Raster) fill(m mgl32.Mat4, vs []Vertex, col color.RGBA) {
	if col.A == 0 {
		return
	}

	pts := make([]mgl32.Vec2, len(vs))
	lo := mgl32.Vec2{float32(math.Inf(1)), float32(math.Inf(1))}
	hi := mgl32.Vec2{float32(math.Inf(-1)), float32(math.Inf(-1))}
	for i, v := range vs {
		p := r.toPixel(m, v.Position)
		pts[i] = p
		lo = mgl32.Vec2{min(lo.X(), p.X()), min(lo.Y(), p.Y())}
		hi = mgl32.Vec2{max(hi.X(), p.X()), max(hi.Y(), p.Y())}
	}

	box := image.Rect(
		int(math.Floor(float64(lo.X()))), int(math.Floor(float64(lo.Y()))),
		int(math.Ceil(float64(hi.X()))), int(math.Ceil(float64(hi.Y()))),
	).Intersect(r.img.Rect)
	if box.Empty() {
		return
	}

	origin := mgl32.Vec2{float32(box.Min.X), float32(box.Min.Y)}
	r.z.Reset(box.Dx(), box.Dy())
	for i := 0; i+2 < len(pts); i += 3 {
		a, b, c := pts[i].Sub(origin), pts[i+1].Sub(origin), pts[i+2].Sub(origin)
		r.z.MoveTo(a.X(), a.Y())
		r.z.LineTo(b.X(), b.Y())
		r.z.LineTo(c.X(), c.Y())
		r.z.ClosePath()
	}
	// Vertex colors are straight alpha
	r.z.Draw(r.img, box, image.NewUniform(color.NRGBA(col)), image.Point{})
}
