package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// CalibrationWhitelist is the character set of calibration documents.
const CalibrationWhitelist = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	// MinHeight is the height in pixels below which Prepare upscales.
	MinHeight = 300
	// MaxScale caps the upscaling factor.
	MaxScale = 4
)

// Prepare converts a PNG, JPEG, GIF, TIFF or BMP image into a grayscale
// PNG suitable for Tesseract, upscaling small scans by an integer factor.
func Prepare(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decoding image: empty bounds %v", b)
	}
	scale := ScaleFactor(b.Dy())

	dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	if scale == 1 {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// ScaleFactor returns the smallest factor that brings height up to
// MinHeight, capped at MaxScale.
func ScaleFactor(height int) int {
	scale := 1
	for height*scale < MinHeight && scale < MaxScale {
		scale++
	}
	return scale
}
