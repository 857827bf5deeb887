// Package textdoc loads plain text documents.
//
// Input may be UTF-8, UTF-8 with a byte order mark, or UTF-16 with a byte
// order mark; it is always returned as a UTF-8 string without a BOM.
// Optionally the text is NFKC-normalized so that compatibility forms such
// as fullwidth digits ('１') or circled digits ('①') become ASCII digits.
package textdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 is returned when input without a UTF-16 BOM is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("textdoc: input is not valid UTF-8")

// Encoding names the byte encoding detected in the input.
type Encoding int

const (
	// UTF8 is UTF-8 without a byte order mark.
	UTF8 Encoding = iota
	// UTF8BOM is UTF-8 with a leading byte order mark.
	UTF8BOM
	// UTF16LE is little-endian UTF-16 with a byte order mark.
	UTF16LE
	// UTF16BE is big-endian UTF-16 with a byte order mark.
	UTF16BE
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8 with BOM"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "unknown"
	}
}

// Options controls decoding.
type Options struct {
	Normalize bool // apply NFKC normalization
}

// Document is a decoded text document.
type Document struct {
	Text       string
	Encoding   Encoding
	Normalized bool // true if normalization changed the text
}

// Open reads and decodes the file at filename.
func Open(filename string, opts Options) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return Decode(data, opts)
}

// OpenReader reads r to EOF and decodes it.
func OpenReader(r io.Reader, opts Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Decode(data, opts)
}

// Decode converts data to a UTF-8 document.
func Decode(data []byte, opts Options) (*Document, error) {
	enc := sniff(data)

	var text string
	switch enc {
	case UTF16LE, UTF16BE:
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", enc, err)
		}
		text = string(decoded)
	default:
		body := bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
		if !utf8.Valid(body) {
			return nil, ErrInvalidUTF8
		}
		text = string(body)
	}

	doc := &Document{Text: text, Encoding: enc}
	if opts.Normalize && !norm.NFKC.IsNormalString(text) {
		doc.Text = norm.NFKC.String(text)
		doc.Normalized = true
	}
	return doc, nil
}

func sniff(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return UTF8BOM
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return UTF16LE
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return UTF16BE
	default:
		return UTF8
	}
}
