package mosaic

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
)

// SampleGrid holds one color per sampled cell, row major. It is rectangular:
// every row has Cols entries.
type SampleGrid struct {
	Rows   int                  `json:"rows"`
	Cols   int                  `json:"cols"`
	Colors [][]imaging.RGBColor `json:"-"`
}

// At returns the color sampled for the cell in row, col.
func (g *SampleGrid) At(row, col int) imaging.RGBColor {
	return g.Colors[row][col]
}

// Hex returns the grid as rows of "#RRGGBB" strings.
func (g *SampleGrid) Hex() [][]string {
	out := make([][]string, g.Rows)
	for i, row := range g.Colors {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Hex()
		}
	}
	return out
}

// GridSize returns the number of sample rows and columns for a width x
// height source sampled every stride pixels.
func GridSize(width, height, stride int) (rows, cols int) {
	return ceilDiv(height, stride), ceilDiv(width, stride)
}

// Sample reads the pixel at (j*stride, i*stride) into cell (i, j) for every
// sample point inside the image. The last row and column are sampled from
// their first pixel even when the cell is only partly covered by the image.
func Sample(img image.Image, stride int) (*SampleGrid, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidConfiguration, stride)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image (%dx%d)", ErrInvalidImage, width, height)
	}

	rows, cols := GridSize(width, height, stride)
	grid := &SampleGrid{
		Rows:   rows,
		Cols:   cols,
		Colors: make([][]imaging.RGBColor, rows),
	}

	for i, y := 0, 0; y < height; i, y = i+1, y+stride {
		row := make([]imaging.RGBColor, cols)
		for j, x := 0, 0; x < width; j, x = j+1, x+stride {
			row[j] = imaging.PixelRGB(img, x, y)
		}
		grid.Colors[i] = row
	}

	return grid, nil
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
