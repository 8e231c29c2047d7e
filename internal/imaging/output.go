package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// PNGMimeType is the MIME type of every image this package produces.
const PNGMimeType = "image/png"

// saveTimeLayout renders as yyMMddHHmmss.
const saveTimeLayout = "060102150405"

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	enc := png.Encoder{
		CompressionLevel: png.BestSpeed,
		BufferPool:       pngPool,
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64PNG encodes img as PNG and returns it base64 encoded.
func EncodeBase64PNG(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// MosaicFileName returns the file name a mosaic is saved under.
//
// With an empty name the result is "mosaic_<shape>_<yyMMddHHmmss>.png".
// Otherwise name is used as given, with ".png" appended if missing.
func MosaicFileName(shape, name string, now time.Time) string {
	if name == "" {
		return "mosaic_" + shape + "_" + now.Format(saveTimeLayout) + ".png"
	}
	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}
	return name
}

// SavePNG writes img as PNG to dir/name and returns the absolute path
// written. An empty dir means the current working directory. A name that is
// already absolute ignores dir.
func SavePNG(img image.Image, dir, name string) (string, error) {
	dest := name
	if !filepath.IsAbs(dest) {
		if dir == "" {
			dir = "."
		}
		dest = filepath.Join(dir, name)
	}
	dest, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("invalid destination %q: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("unable to create destination folder %q: %w", filepath.Dir(dest), err)
	}
	if err := imgio.Save(dest, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("could not save PNG %q: %w", dest, err)
	}
	return dest, nil
}
