package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultMaxWidth is the widest source accepted before mosaic sampling.
// Wider sources are scaled down to keep the output canvas a sane size.
const DefaultMaxWidth = 1024

// CappedSize returns the dimensions an image of width x height would have
// after Downscale with maxWidth. A maxWidth of 0 or less disables the cap.
func CappedSize(width, height, maxWidth int) (int, int) {
	if maxWidth <= 0 || width <= maxWidth || width == 0 {
		return width, height
	}
	h := int(float64(height)*float64(maxWidth)/float64(width) + 0.5)
	if h < 1 {
		h = 1
	}
	return maxWidth, h
}

// Downscale shrinks img to maxWidth pixels wide, preserving aspect ratio,
// when it is wider than that. Narrower images are returned unchanged.
// A maxWidth of 0 or less disables the cap.
func Downscale(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}
	_, h := CappedSize(bounds.Dx(), bounds.Dy(), maxWidth)
	return imaging.Resize(img, maxWidth, h, imaging.Linear)
}
