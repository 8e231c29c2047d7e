package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// PixelRGB reads the color of the pixel at (x, y), relative to the image's
// top-left corner, and reduces it to 8-bit RGB. Alpha is discarded.
//
// The caller is responsible for passing in-bounds coordinates.
func PixelRGB(img image.Image, x, y int) RGBColor {
	min := img.Bounds().Min
	r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// SampleColor is the bounds-checked variant of PixelRGB.
func SampleColor(img image.Image, x, y int) (RGBColor, error) {
	bounds := img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Dx() || y >= bounds.Dy() {
		return RGBColor{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return PixelRGB(img, x, y), nil
}

// DominantColor returns the most prominent color of img. Unlike a mosaic
// sample it looks at the whole image.
func DominantColor(img image.Image) RGBColor {
	c := dominantcolor.Find(img)
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// Hex returns the color as "#RRGGBB" (uppercase).
func (c RGBColor) Hex() string {
	return strings.ToUpper(c.Colorful().Hex())
}

// Colorful converts the color into go-colorful's float representation.
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// WithTransparency returns the color as NRGBA using the 0-100 transparency
// scale: 0 is fully opaque and 100 is fully transparent. Values outside the
// range are clamped.
func (c RGBColor) WithTransparency(transparency int) color.NRGBA {
	if transparency < 0 {
		transparency = 0
	}
	if transparency > 100 {
		transparency = 100
	}
	a := (255*(100-transparency) + 50) / 100
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Opaque returns the color as fully opaque NRGBA.
func (c RGBColor) Opaque() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". A missing alpha
// means opaque.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	alpha := uint8(0xFF)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
