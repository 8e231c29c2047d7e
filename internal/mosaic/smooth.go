package mosaic

import (
	"math"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
)

// seedTransparency is used for the four axis extremes of a smooth circle.
const seedTransparency = 42

// DrawSmoothCircle draws a filled circle of the given radius centered on
// (cx, cy) without relying on the surface's own antialiasing.
//
// The interior is filled with opaque spans while a midpoint circle walk
// traces one octant and mirrors it eight ways. Each boundary pixel the walk
// visits is written with a transparency derived from how much of it lies
// inside the true circle, so the edge blends into whatever is underneath.
//
// Transparency uses the 0-100 scale of imaging.RGBColor.WithTransparency.
func DrawSmoothCircle(s Surface, cx, cy, radius int, c imaging.RGBColor) {
	if radius <= 0 {
		return
	}

	fill := c.Opaque()

	// Spokes along the axes, stopping one pixel short of the rim.
	s.Line(cx+radius-1, cy, cx, cy, fill)
	s.Line(cx-radius+1, cy, cx-1, cy, fill)
	s.Line(cx, cy+radius-1, cx, cy+1, fill)
	s.Line(cx, cy-radius+1, cx, cy-1, fill)

	seed := c.WithTransparency(seedTransparency)
	s.SetPixel(cx+radius, cy, seed)
	s.SetPixel(cx-radius, cy, seed)
	s.SetPixel(cx, cy+radius, seed)
	s.SetPixel(cx, cy-radius, seed)

	x, y := 0, radius
	g := 2*radius - 3
	dgr := -6
	dgd := 4*radius - 10

	for x <= y-2 {
		if g < 0 {
			g += dgd
			dgd -= 8
			y--
		} else {
			g += dgr
			dgd -= 4
		}
		dgr -= 4
		x++

		// Vertical spans in the octants next to the y axis.
		s.Line(cx+x, cy+y-1, cx+x, cy+x, fill)
		s.Line(cx+x, cy-y+1, cx+x, cy-x, fill)
		s.Line(cx-x, cy+y-1, cx-x, cy+x, fill)
		s.Line(cx-x, cy-y+1, cx-x, cy-x, fill)
		// Horizontal spans in the octants next to the x axis.
		s.Line(cx+y-1, cy+x, cx+x, cy+x, fill)
		s.Line(cx+y-1, cy-x, cx+x, cy-x, fill)
		s.Line(cx-y+1, cy+x, cx-x, cy+x, fill)
		s.Line(cx-y+1, cy-x, cx-x, cy-x, fill)

		edge := c.WithTransparency(100 - edgeCoverage(x, y, float64(radius)))
		s.SetPixel(cx+x, cy+y, edge)
		s.SetPixel(cx+x, cy-y, edge)
		s.SetPixel(cx-x, cy+y, edge)
		s.SetPixel(cx-x, cy-y, edge)
		s.SetPixel(cx+y, cy+x, edge)
		s.SetPixel(cx+y, cy-x, edge)
		s.SetPixel(cx-y, cy+x, edge)
		s.SetPixel(cx-y, cy-x, edge)
	}
}

// edgeCoverage estimates, on a 0-100 scale, how much of the pixel at (x, y)
// relative to the circle center lies within radius. It checks a 5x5 grid of
// points spaced 0.2 apart starting 0.45 before the pixel coordinate, each
// worth 4.
func edgeCoverage(x, y int, radius float64) int {
	filled := 0
	for i := 0; i < 5; i++ {
		xx := float64(x) - 0.45 + 0.2*float64(i)
		for j := 0; j < 5; j++ {
			yy := float64(y) - 0.45 + 0.2*float64(j)
			if math.Sqrt(xx*xx+yy*yy) < radius {
				filled += 4
			}
		}
	}
	return filled
}
