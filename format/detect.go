// Package format provides document format detection for trebuchet.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates a plain text document (UTF-8, or UTF-16 with a BOM).
	Text
	// HTML indicates an HTML document.
	HTML
	// Image indicates a scanned document (PNG, JPEG, GIF, TIFF or BMP).
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case HTML:
		return ".html"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Parse converts a format name such as "text", "html" or "image" to a
// Format. It returns Unknown for anything else, including "auto".
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return Text
	case "html", "htm":
		return HTML
	case "image", "img":
		return Image
	default:
		return Unknown
	}
}

// Detect determines file format from filename extension. Files without an
// extension are assumed to be plain text, which is how puzzle inputs are
// usually saved.
func Detect(filename string) Format {
	if filename == "" {
		return Unknown
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case "", ".txt", ".text", ".log", ".in":
		return Text
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp":
		return Image
	default:
		return Unknown
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectFromMagic checks leading bytes to determine format.
// Data that is not an image or HTML is reported as Text when it carries a
// Unicode BOM or is NUL-free valid UTF-8.
func DetectFromMagic(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	if hasBOM(data) {
		if detectHTMLMagic(data) {
			return HTML
		}
		return Text
	}

	if detectImageMagic(data) {
		return Image
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	if bytes.IndexByte(data, 0) < 0 && validUTF8Prefix(data) {
		return Text
	}

	return Unknown
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16LE) ||
		bytes.HasPrefix(data, bomUTF16BE)
}

// validUTF8Prefix reports whether data is valid UTF-8, allowing a rune
// truncated by the end of the sniffed window.
func validUTF8Prefix(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return len(data) < utf8.UTFMax && !utf8.FullRune(data)
		}
		data = data[size:]
	}
	return true
}

// detectImageMagic checks for the signatures of the image formats the ocr
// package can decode.
func detectImageMagic(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return true
	case len(data) >= 14 && data[0] == 'B' && data[1] == 'M' &&
		data[6] == 0 && data[7] == 0 && data[8] == 0 && data[9] == 0:
		// BMP: "BM", file size, four reserved zero bytes
		return true
	}
	return false
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimPrefix(data, bomUTF8)
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the first bytes of r to determine its format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
