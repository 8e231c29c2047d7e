// Package canvas provides the drawable output surface mosaics are rendered on.
//
// A Canvas wraps an *image.NRGBA and offers the handful of primitives the
// mosaic renderer needs: solid rectangles, antialiased ellipses and polygons,
// axis and diagonal lines, and single pixel writes that blend onto what is
// already there. All writes are clipped to the canvas bounds.
//
// A Canvas is not safe for concurrent use.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// bezierCircle is the control point distance, relative to the radius, for
// approximating a quarter circle with one cubic Bézier segment.
const bezierCircle = 0.5522847498307936

// Canvas is a mutable RGBA pixel buffer.
type Canvas struct {
	img *image.NRGBA
	ras *vector.Rasterizer
}

// New allocates a width x height canvas filled with bg.
func New(width, height int, bg color.Color) *Canvas {
	return &Canvas{
		img: imaging.New(width, height, bg),
		ras: vector.NewRasterizer(0, 0),
	}
}

// Image returns the underlying pixel buffer. Further drawing on the canvas is
// visible through it.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Bounds returns the canvas bounds, always anchored at (0,0).
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// FillRect fills r with col, compositing over the existing pixels.
// An opaque col simply overwrites them.
func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	op := draw.Over
	if col.A == 0xFF {
		op = draw.Src
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, op)
}

// FillEllipse fills the axis aligned ellipse centered at (cx, cy) with radii
// rx and ry. Edges are antialiased by the rasterizer's coverage.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-rx)), int(math.Floor(cy-ry)),
		int(math.Ceil(cx+rx)), int(math.Ceil(cy+ry)),
	)
	ras, ok := c.rasterizer(box)
	if !ok {
		return
	}

	x, y := float32(cx-float64(box.Min.X)), float32(cy-float64(box.Min.Y))
	fx, fy := float32(rx), float32(ry)
	kx, ky := float32(rx*bezierCircle), float32(ry*bezierCircle)

	ras.MoveTo(x+fx, y)
	ras.CubeTo(x+fx, y+ky, x+kx, y+fy, x, y+fy)
	ras.CubeTo(x-kx, y+fy, x-fx, y+ky, x-fx, y)
	ras.CubeTo(x-fx, y-ky, x-kx, y-fy, x, y-fy)
	ras.CubeTo(x+kx, y-fy, x+fx, y-ky, x+fx, y)
	ras.ClosePath()

	c.rasterize(ras, box, col)
}

// FillPolygon fills the closed polygon through points. The last vertex
// connects back to the first. Fewer than three vertices draw nothing.
func (c *Canvas) FillPolygon(points []f64.Vec2, col color.NRGBA) {
	if len(points) < 3 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	ras, ok := c.rasterizer(box)
	if !ok {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	ras.MoveTo(float32(points[0][0]-ox), float32(points[0][1]-oy))
	for _, p := range points[1:] {
		ras.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	ras.ClosePath()

	c.rasterize(ras, box, col)
}

// rasterizer resets the shared rasterizer to cover box. Path coordinates
// passed to it must be relative to box.Min. It reports false when box has
// no area.
func (c *Canvas) rasterizer(box image.Rectangle) (*vector.Rasterizer, bool) {
	if box.Empty() {
		return nil, false
	}
	c.ras.Reset(box.Dx(), box.Dy())
	c.ras.DrawOp = draw.Over
	return c.ras, true
}

// rasterize composites the accumulated path onto the canvas. Draw maps
// box.Min to the rasterizer origin and clips to the canvas bounds.
func (c *Canvas) rasterize(ras *vector.Rasterizer, box image.Rectangle, col color.NRGBA) {
	if box.Intersect(c.img.Bounds()).Empty() {
		return
	}
	ras.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// Line draws a one pixel wide line from (x1, y1) to (x2, y2), both end points
// included. Pixels are composited like FillRect and SetPixel; those outside
// the canvas are skipped.
func (c *Canvas) Line(x1, y1, x2, y2 int, col color.NRGBA) {
	switch {
	case y1 == y2:
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		c.FillRect(image.Rect(x1, y1, x2+1, y1+1), col)
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		c.FillRect(image.Rect(x1, y1, x1+1, y2+1), col)
	default:
		c.bresenham(x1, y1, x2, y2, col)
	}
}

func (c *Canvas) bresenham(x1, y1, x2, y2 int, col color.NRGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		c.SetPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// SetPixel writes col at (x, y) by straight alpha blending it over the
// existing pixel: an opaque col replaces it, a fully transparent one leaves
// it untouched. Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if !(image.Point{x, y}).In(c.img.Bounds()) {
		return
	}
	switch col.A {
	case 0:
		return
	case 0xFF:
		c.img.SetNRGBA(x, y, col)
		return
	}

	dst := c.img.NRGBAAt(x, y)
	a := float64(col.A) / 255.0
	under := colorful.Color{R: float64(dst.R) / 255.0, G: float64(dst.G) / 255.0, B: float64(dst.B) / 255.0}
	over := colorful.Color{R: float64(col.R) / 255.0, G: float64(col.G) / 255.0, B: float64(col.B) / 255.0}
	r, g, b := under.BlendRgb(over, a).RGB255()

	outA := a + float64(dst.A)/255.0*(1-a)
	c.img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: uint8(outA*255.0 + 0.5)})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
