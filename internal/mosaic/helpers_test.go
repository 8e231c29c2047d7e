package mosaic

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// createInMemoryImage creates a uniformly colored test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createCoordinateImage encodes each pixel's position in its color:
// R = x, G = y, B = 200.
func createCoordinateImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 200, 255})
		}
	}
	return img
}

type rectCall struct {
	r   image.Rectangle
	col color.NRGBA
}

type ellipseCall struct {
	cx, cy, rx, ry float64
	col            color.NRGBA
}

type polygonCall struct {
	points []f64.Vec2
	col    color.NRGBA
}

type lineCall struct {
	x1, y1, x2, y2 int
	col            color.NRGBA
}

type pixelCall struct {
	x, y int
	col  color.NRGBA
}

// recordingSurface remembers every drawing call made on it.
type recordingSurface struct {
	rects    []rectCall
	ellipses []ellipseCall
	polygons []polygonCall
	lines    []lineCall
	pixels   []pixelCall
}

func (s *recordingSurface) FillRect(r image.Rectangle, col color.NRGBA) {
	s.rects = append(s.rects, rectCall{r, col})
}

func (s *recordingSurface) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	s.ellipses = append(s.ellipses, ellipseCall{cx, cy, rx, ry, col})
}

func (s *recordingSurface) FillPolygon(points []f64.Vec2, col color.NRGBA) {
	s.polygons = append(s.polygons, polygonCall{points, col})
}

func (s *recordingSurface) Line(x1, y1, x2, y2 int, col color.NRGBA) {
	s.lines = append(s.lines, lineCall{x1, y1, x2, y2, col})
}

func (s *recordingSurface) SetPixel(x, y int, col color.NRGBA) {
	s.pixels = append(s.pixels, pixelCall{x, y, col})
}

func (s *recordingSurface) calls() int {
	return len(s.rects) + len(s.ellipses) + len(s.polygons) + len(s.lines) + len(s.pixels)
}
