package mosaic

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/image-mosaic-mcp/internal/canvas"
)

// MaxCanvasPixels caps the area of an output canvas, 512 MiB of NRGBA.
const MaxCanvasPixels = 1 << 27

// CanvasSize returns the output dimensions for a width x height source.
// Canvases larger than MaxCanvasPixels fail with ErrInvalidConfiguration.
func CanvasSize(width, height int, cfg Config) (int, int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, 0, err
	}
	rows, cols := GridSize(width, height, cfg.SampleSize)
	return gridCanvasSize(rows, cols, cfg.Slot())
}

func gridCanvasSize(rows, cols, slot int) (int, int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, 0, nil
	}
	if slot > MaxCanvasPixels/cols || slot > MaxCanvasPixels/rows {
		return 0, 0, fmt.Errorf("%w: %dx%d cells of %d pixels exceed %d pixels",
			ErrInvalidConfiguration, cols, rows, slot, MaxCanvasPixels)
	}
	w, h := cols*slot, rows*slot
	if w > MaxCanvasPixels/h {
		return 0, 0, fmt.Errorf("%w: %dx%d canvas exceeds %d pixels",
			ErrInvalidConfiguration, w, h, MaxCanvasPixels)
	}
	return w, h, nil
}

// Build samples img and draws the mosaic on a new white canvas.
//
// The configuration is validated first (ErrInvalidShape, then
// ErrInvalidConfiguration), then the image (ErrInvalidImage). Nothing is
// allocated when validation fails, and no partial canvas is ever returned.
// Calling Build again with the same inputs gives a pixel identical canvas.
func Build(img image.Image, cfg Config) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrInvalidImage)
	}

	grid, err := Sample(img, cfg.SampleSize)
	if err != nil {
		return nil, err
	}

	return BuildFromGrid(grid, cfg)
}

// BuildFromGrid draws an already sampled grid. It is Build without the
// sampling step.
func BuildFromGrid(grid *SampleGrid, cfg Config) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil || grid.Rows == 0 || grid.Cols == 0 {
		return nil, fmt.Errorf("%w: empty sample grid", ErrInvalidImage)
	}

	w, h, err := gridCanvasSize(grid.Rows, grid.Cols, cfg.Slot())
	if err != nil {
		return nil, err
	}
	cv := canvas.New(w, h, color.White)
	Render(cv, grid, cfg)
	return cv, nil
}
