package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPixelRGB_Quadrants(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		x, y int
		want RGBColor
	}{
		{"top-left", 10, 10, RGBColor{255, 0, 0}},
		{"top-right", 90, 10, RGBColor{0, 255, 0}},
		{"bottom-left", 10, 90, RGBColor{0, 0, 255}},
		{"bottom-right", 90, 90, RGBColor{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelRGB(img, tt.x, tt.y); got != tt.want {
				t.Errorf("PixelRGB(%d,%d): got %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelRGB_OffsetBounds(t *testing.T) {
	// SubImage keeps the parent's coordinates; PixelRGB must still treat the
	// top-left pixel as (0,0).
	sub := createPatternImage(100, 100).SubImage(image.Rect(50, 50, 100, 100))

	if got := PixelRGB(sub, 0, 0); got != (RGBColor{255, 255, 255}) {
		t.Errorf("PixelRGB(0,0) on sub image: got %+v, want white", got)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}

	if _, err := SampleColor(img, 99, 99); err != nil {
		t.Errorf("SampleColor failed for valid edge coordinate: %v", err)
	}
}

func TestRGBColor_Hex(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want string
	}{
		{RGBColor{255, 0, 0}, "#FF0000"},
		{RGBColor{0, 255, 0}, "#00FF00"},
		{RGBColor{0, 0, 255}, "#0000FF"},
		{RGBColor{128, 128, 128}, "#808080"},
		{RGBColor{10, 11, 12}, "#0A0B0C"},
		{RGBColor{171, 205, 239}, "#ABCDEF"},
		{RGBColor{1, 254, 127}, "#01FE7F"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBColor_Colorful(t *testing.T) {
	c := RGBColor{12, 200, 255}
	r, g, b := c.Colorful().RGB255()
	if r != 12 || g != 200 || b != 255 {
		t.Errorf("Colorful roundtrip: got (%d,%d,%d), want (12,200,255)", r, g, b)
	}
}

func TestRGBColor_WithTransparency(t *testing.T) {
	c := RGBColor{10, 20, 30}

	tests := []struct {
		transparency int
		wantA        uint8
	}{
		{0, 255},
		{42, 148},
		{50, 128},
		{100, 0},
		{-5, 255},
		{150, 0},
	}

	for _, tt := range tests {
		got := c.WithTransparency(tt.transparency)
		if got.A != tt.wantA {
			t.Errorf("WithTransparency(%d).A: got %d, want %d", tt.transparency, got.A, tt.wantA)
		}
		if got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("WithTransparency(%d) changed RGB: got %+v", tt.transparency, got)
		}
	}

	if c.Opaque() != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("Opaque: got %+v", c.Opaque())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}, false},
		{"0000FF", color.NRGBA{0, 0, 255, 255}, false},
		{"#F00", color.NRGBA{255, 0, 0, 255}, false},
		{"#FF000080", color.NRGBA{255, 0, 0, 128}, false},
		{"", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"#FF0000ZZ", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q): got %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestDominantColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if y < 90 {
				img.Set(x, y, color.RGBA{220, 20, 20, 255})
			} else {
				img.Set(x, y, color.RGBA{20, 20, 220, 255})
			}
		}
	}

	c := DominantColor(img)
	if c.R <= c.B || c.R <= c.G {
		t.Errorf("DominantColor: got %+v, want a red", c)
	}
}
