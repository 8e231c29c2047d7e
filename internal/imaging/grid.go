package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// SampleOverlayResult contains the source image with the sampling grid drawn
// on top of it.
type SampleOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	SampleSize  int    `json:"sample_size"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// SampleOverlay draws the mosaic sampling grid over img: a line every
// sampleSize pixels and a small cross around every sampled pixel, so it
// is visible which single pixel stands in for each cell.
func SampleOverlay(img image.Image, sampleSize int, gridColorHex string) (*SampleOverlayResult, error) {
	result, err := DrawSampleOverlay(img, sampleSize, gridColorHex)
	if err != nil {
		return nil, err
	}

	encoded, err := EncodeBase64PNG(result)
	if err != nil {
		return nil, err
	}

	bounds := result.Bounds()
	return &SampleOverlayResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Rows:        (bounds.Dy() + sampleSize - 1) / sampleSize,
		Cols:        (bounds.Dx() + sampleSize - 1) / sampleSize,
		SampleSize:  sampleSize,
		ImageBase64: encoded,
		MimeType:    PNGMimeType,
	}, nil
}

// DrawSampleOverlay is SampleOverlay without the encoding step.
func DrawSampleOverlay(img image.Image, sampleSize int, gridColorHex string) (*image.NRGBA, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", sampleSize)
	}

	gridColor, err := ParseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.NRGBA{255, 0, 0, 128} // Default: semi-transparent red
	}
	markColor := color.NRGBA{gridColor.R, gridColor.G, gridColor.B, 255}

	result := imaging.Clone(img)
	width, height := result.Bounds().Dx(), result.Bounds().Dy()

	line := image.NewUniform(gridColor)

	// Each cell is sampled at its top-left pixel, so sample points fall on
	// the line intersections.
	for x := sampleSize; x < width; x += sampleSize {
		draw.Draw(result, image.Rect(x, 0, x+1, height), line, image.Point{}, draw.Over)
	}
	for y := sampleSize; y < height; y += sampleSize {
		draw.Draw(result, image.Rect(0, y, width, y+1), line, image.Point{}, draw.Over)
	}

	for y := 0; y < height; y += sampleSize {
		for x := 0; x < width; x += sampleSize {
			markSample(result, x, y, markColor)
		}
	}

	return result, nil
}

// markSample draws the arms of a 5 pixel cross centered on the sample point.
func markSample(img *image.NRGBA, x, y int, c color.NRGBA) {
	bounds := img.Bounds()
	for d := 1; d <= 2; d++ {
		for _, p := range [4]image.Point{{x - d, y}, {x + d, y}, {x, y - d}, {x, y + d}} {
			if p.In(bounds) {
				img.SetNRGBA(p.X, p.Y, c)
			}
		}
	}
}
