package imaging

import (
	"encoding/base64"
	"image/color"
	"testing"
)

func TestSampleOverlay(t *testing.T) {
	img := createInMemoryImage(100, 90, color.RGBA{128, 128, 128, 255})

	result, err := SampleOverlay(img, 25, "#FF0000")
	if err != nil {
		t.Fatalf("SampleOverlay failed: %v", err)
	}

	if result.Width != 100 || result.Height != 90 {
		t.Errorf("dimensions: got %dx%d, want 100x90", result.Width, result.Height)
	}
	if result.Cols != 4 || result.Rows != 4 {
		t.Errorf("grid: got %dx%d cells, want 4x4", result.Cols, result.Rows)
	}
	if result.SampleSize != 25 {
		t.Errorf("SampleSize: got %d, want 25", result.SampleSize)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestDrawSampleOverlay_LinesAndMarks(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 0, 0, 255})

	out, err := DrawSampleOverlay(img, 25, "#FF0000FF")
	if err != nil {
		t.Fatalf("DrawSampleOverlay failed: %v", err)
	}

	// Grid line at x=25
	if c := out.NRGBAAt(25, 50); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("grid line at (25,50): got %+v, want red", c)
	}

	// Cross arm next to the sample at (50,50)
	if c := out.NRGBAAt(52, 50); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("sample mark at (52,50): got %+v, want red", c)
	}

	// Inside a cell, away from lines and marks
	if c := out.NRGBAAt(12, 12); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("cell interior at (12,12): got %+v, want black", c)
	}
}

func TestDrawSampleOverlay_InvalidColorFallsBack(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})

	for _, hex := range []string{"", "invalid"} {
		out, err := DrawSampleOverlay(img, 10, hex)
		if err != nil {
			t.Fatalf("DrawSampleOverlay(%q) failed: %v", hex, err)
		}
		// Mark arms are drawn opaque in the fallback red.
		if c := out.NRGBAAt(21, 20); c != (color.NRGBA{255, 0, 0, 255}) {
			t.Errorf("DrawSampleOverlay(%q) mark: got %+v, want red", hex, c)
		}
	}
}

func TestDrawSampleOverlay_InvalidSampleSize(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})

	for _, size := range []int{0, -3} {
		if _, err := DrawSampleOverlay(img, size, "#FF0000"); err == nil {
			t.Errorf("DrawSampleOverlay with sample size %d should fail", size)
		}
	}
}
