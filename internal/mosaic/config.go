package mosaic

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidConfiguration reports a non-positive stride or shape size,
	// a negative margin, or an output canvas larger than MaxCanvasPixels.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidShape reports a shape name outside the supported set.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidImage reports an empty or unreadable source image.
	ErrInvalidImage = errors.New("invalid image")
)

// Shape selects what is drawn for every sampled cell.
type Shape string

const (
	ShapeSquare       Shape = "square"
	ShapeCircle       Shape = "circle"
	ShapeSmoothCircle Shape = "smoothcircle"
	ShapeStar         Shape = "star"
)

var shapeDescriptions = map[Shape]string{
	ShapeSquare:       "Solid square filling the shape size",
	ShapeCircle:       "Filled circle using the rasterizer's antialiasing",
	ShapeSmoothCircle: "Filled circle with coverage blended edge pixels",
	ShapeStar:         "Five pointed star scaled by shape size plus margin",
}

// Shapes returns the supported shapes in a stable order.
func Shapes() []Shape {
	return []Shape{ShapeCircle, ShapeSmoothCircle, ShapeSquare, ShapeStar}
}

// Description returns a one line description of the shape.
func (s Shape) Description() string {
	return shapeDescriptions[s]
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	_, ok := shapeDescriptions[s]
	return ok
}

// ParseShape converts a shape name into a Shape. Matching is exact.
func ParseShape(name string) (Shape, error) {
	s := Shape(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidShape, name, shapeList())
	}
	return s, nil
}

func shapeList() string {
	names := make([]string, 0, len(shapeDescriptions))
	for _, s := range Shapes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Config holds the parameters of one mosaic build.
type Config struct {
	// SampleSize is the pixel stride between sample points, in both axes.
	SampleSize int `json:"sample_size"`

	// ShapeSize is the footprint of one drawn shape in output pixels.
	ShapeSize int `json:"shape_size"`

	// ShapeMargin is the gap between neighbouring shape footprints.
	ShapeMargin int `json:"shape_margin"`

	// Shape is drawn once per sampled cell.
	Shape Shape `json:"shape"`
}

// Default configuration values.
const (
	DefaultSampleSize  = 20
	DefaultShapeSize   = 40
	DefaultShapeMargin = 3
	DefaultShape       = ShapeCircle
)

// DefaultConfig returns the default build configuration.
func DefaultConfig() Config {
	return Config{
		SampleSize:  DefaultSampleSize,
		ShapeSize:   DefaultShapeSize,
		ShapeMargin: DefaultShapeMargin,
		Shape:       DefaultShape,
	}
}

// Validate checks the shape first, then the numeric parameters.
func (c Config) Validate() error {
	if !c.Shape.Valid() {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidShape, string(c.Shape), shapeList())
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidConfiguration, c.SampleSize)
	}
	if c.ShapeSize <= 0 {
		return fmt.Errorf("%w: shape size must be positive, got %d", ErrInvalidConfiguration, c.ShapeSize)
	}
	if c.ShapeMargin < 0 {
		return fmt.Errorf("%w: shape margin must not be negative, got %d", ErrInvalidConfiguration, c.ShapeMargin)
	}
	if c.ShapeSize > math.MaxInt-c.ShapeMargin {
		return fmt.Errorf("%w: shape size %d plus margin %d overflows", ErrInvalidConfiguration, c.ShapeSize, c.ShapeMargin)
	}
	return nil
}

// Slot is the distance between the origins of neighbouring shapes.
func (c Config) Slot() int {
	return c.ShapeSize + c.ShapeMargin
}
