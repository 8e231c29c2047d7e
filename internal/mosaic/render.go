package mosaic

import (
	"image"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
)

// DrawShape draws one mosaic cell whose slot starts at (originX, originY).
//
// Square, circle and smoothcircle fill a size x size footprint. The star is
// scaled by size+margin instead, so its points reach into the margin.
// An unknown shape draws nothing; Build rejects those before drawing.
func DrawShape(s Surface, shape Shape, originX, originY, size, margin int, c imaging.RGBColor) {
	half := float64(size) / 2
	cx, cy := float64(originX)+half, float64(originY)+half

	switch shape {
	case ShapeSquare:
		s.FillRect(image.Rect(originX, originY, originX+size, originY+size), c.Opaque())
	case ShapeCircle:
		s.FillEllipse(cx, cy, half, half, c.Opaque())
	case ShapeSmoothCircle:
		DrawSmoothCircle(s, originX+size/2, originY+size/2, size/2, c)
	case ShapeStar:
		points := StarPoints(cx, cy, float64(size+margin)/2, StarSpikes, StarInnerRatio, StarDirection)
		s.FillPolygon(points, c.Opaque())
	}
}

// Render draws every cell of grid on s, row by row.
func Render(s Surface, grid *SampleGrid, cfg Config) {
	slot := cfg.Slot()
	for y, row := range grid.Colors {
		for x, c := range row {
			DrawShape(s, cfg.Shape, x*slot, y*slot, cfg.ShapeSize, cfg.ShapeMargin, c)
		}
	}
}
