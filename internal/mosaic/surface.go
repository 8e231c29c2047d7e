package mosaic

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// Surface is what shapes are drawn on. *canvas.Canvas implements it.
//
// Colors with an alpha below 0xFF must be blended over the existing pixels,
// not written as is: the smooth circle relies on it for its edge.
type Surface interface {
	FillRect(r image.Rectangle, col color.NRGBA)
	FillEllipse(cx, cy, rx, ry float64, col color.NRGBA)
	FillPolygon(points []f64.Vec2, col color.NRGBA)
	Line(x1, y1, x2, y2 int, col color.NRGBA)
	SetPixel(x, y int, col color.NRGBA)
}
