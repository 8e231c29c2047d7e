package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/image-mosaic-mcp/internal/mosaic"
)

type createCmd struct {
	Input       string `arg:"" help:"Source image (PNG, JPEG, GIF, BMP, TIFF or WebP)" type:"existingfile"`
	Shape       string `help:"Shape drawn for every sample" enum:"circle,smoothcircle,square,star" default:"circle" env:"MOSAIC_SHAPE"`
	SampleSize  int    `help:"Distance in source pixels between sample points" default:"20" env:"MOSAIC_SAMPLE_SIZE"`
	ShapeSize   int    `help:"Shape footprint in output pixels" default:"40" env:"MOSAIC_SHAPE_SIZE"`
	ShapeMargin int    `help:"Gap after each shape in output pixels" default:"3" env:"MOSAIC_SHAPE_MARGIN"`
	MaxWidth    int    `help:"Downscale wider sources to this width first, 0 to disable" default:"1024" env:"MOSAIC_MAX_WIDTH"`
	Out         string `help:"Output file. Defaults to mosaic_<shape>_<timestamp>.png" type:"path" xor:"out"`
	OutDir      string `help:"Directory for the generated file name" type:"path" xor:"out"`
}

func (c *createCmd) config() mosaic.Config {
	return mosaic.Config{
		SampleSize:  c.SampleSize,
		ShapeSize:   c.ShapeSize,
		ShapeMargin: c.ShapeMargin,
		Shape:       mosaic.Shape(c.Shape),
	}
}

func (c *createCmd) Validate(kctx *kong.Context) error {
	if err := c.config().Validate(); err != nil {
		return err
	}
	return validateMaxWidth(c.MaxWidth)
}

func (c *createCmd) Run(rc *runContext) error {
	cfg := c.config()
	logger := rc.logger.With("file", c.Input, "shape", cfg.Shape)

	img, err := loadSource(c.Input, c.MaxWidth)
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	logger.Debug("source loaded", "width", bounds.Dx(), "height", bounds.Dy())

	cv, err := mosaic.Build(img, cfg)
	if err != nil {
		return err
	}

	name := imaging.MosaicFileName(string(cfg.Shape), c.Out, rc.now())
	dest, err := imaging.SavePNG(cv.Image(), c.OutDir, name)
	if err != nil {
		return err
	}

	logger.Info("mosaic saved", "out", dest, "width", cv.Width(), "height", cv.Height())
	fmt.Fprintln(rc.out, dest)
	return nil
}

type gridCmd struct {
	Input      string `arg:"" help:"Source image" type:"existingfile"`
	SampleSize int    `help:"Distance in source pixels between sample points" default:"20" env:"MOSAIC_SAMPLE_SIZE"`
	MaxWidth   int    `help:"Downscale wider sources to this width first, 0 to disable" default:"1024" env:"MOSAIC_MAX_WIDTH"`
}

func (c *gridCmd) Validate(kctx *kong.Context) error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", mosaic.ErrInvalidConfiguration, c.SampleSize)
	}
	return validateMaxWidth(c.MaxWidth)
}

func (c *gridCmd) Run(rc *runContext) error {
	img, err := loadSource(c.Input, c.MaxWidth)
	if err != nil {
		return err
	}

	grid, err := mosaic.Sample(img, c.SampleSize)
	if err != nil {
		return err
	}
	rc.logger.Debug("sampled", "file", c.Input, "rows", grid.Rows, "cols", grid.Cols)

	for _, row := range grid.Hex() {
		if _, err := fmt.Fprintln(rc.out, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

type overlayCmd struct {
	Input      string `arg:"" help:"Source image" type:"existingfile"`
	Out        string `help:"Output file" type:"path" required:""`
	SampleSize int    `help:"Distance in source pixels between sample points" default:"20" env:"MOSAIC_SAMPLE_SIZE"`
	MaxWidth   int    `help:"Downscale wider sources to this width first, 0 to disable" default:"1024" env:"MOSAIC_MAX_WIDTH"`
	GridColor  string `help:"Grid line color as #RRGGBB or #RRGGBBAA" default:"#FF000080"`
}

func (c *overlayCmd) Validate(kctx *kong.Context) error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", mosaic.ErrInvalidConfiguration, c.SampleSize)
	}
	if _, err := imaging.ParseHexColor(c.GridColor); err != nil {
		return err
	}
	return validateMaxWidth(c.MaxWidth)
}

func (c *overlayCmd) Run(rc *runContext) error {
	img, err := loadSource(c.Input, c.MaxWidth)
	if err != nil {
		return err
	}

	overlay, err := imaging.DrawSampleOverlay(img, c.SampleSize, c.GridColor)
	if err != nil {
		return err
	}

	dest, err := imaging.SavePNG(overlay, "", c.Out)
	if err != nil {
		return err
	}
	rc.logger.Info("overlay saved", "file", c.Input, "out", dest)
	fmt.Fprintln(rc.out, dest)
	return nil
}

func validateMaxWidth(w int) error {
	if w < 0 {
		return fmt.Errorf("%w: max width must not be negative, got %d", mosaic.ErrInvalidConfiguration, w)
	}
	return nil
}

// loadSource decodes the image at path and caps its width.
func loadSource(path string, maxWidth int) (image.Image, error) {
	img, err := imaging.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mosaic.ErrInvalidImage, err)
	}
	return imaging.Downscale(img, maxWidth), nil
}
