package imaging

import (
	"image/color"
	"testing"
)

func TestCappedSize(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, limit int
		wantW, wantH         int
	}{
		{"narrower", 800, 600, 1024, 800, 600},
		{"exact", 1024, 768, 1024, 1024, 768},
		{"wider", 2048, 1536, 1024, 1024, 768},
		{"odd ratio", 3000, 1001, 1024, 1024, 342},
		{"cap disabled", 4000, 3000, 0, 4000, 3000},
		{"very flat", 5000, 1, 1024, 1024, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := CappedSize(tt.width, tt.height, tt.limit)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CappedSize(%d,%d,%d): got %dx%d, want %dx%d",
					tt.width, tt.height, tt.limit, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDownscale(t *testing.T) {
	img := createInMemoryImage(200, 100, color.RGBA{10, 20, 30, 255})

	small := Downscale(img, 50)
	if small.Bounds().Dx() != 50 || small.Bounds().Dy() != 25 {
		t.Errorf("Downscale: got %dx%d, want 50x25", small.Bounds().Dx(), small.Bounds().Dy())
	}

	// A uniform image stays uniform after resampling.
	if got := PixelRGB(small, 25, 12); got != (RGBColor{10, 20, 30}) {
		t.Errorf("Downscale color: got %+v, want {10 20 30}", got)
	}
}

func TestDownscale_Unchanged(t *testing.T) {
	img := createInMemoryImage(200, 100, color.RGBA{10, 20, 30, 255})

	if got := Downscale(img, 1024); got != img {
		t.Error("Downscale should return narrow images unchanged")
	}
	if got := Downscale(img, 0); got != img {
		t.Error("Downscale with cap 0 should return the image unchanged")
	}
}
