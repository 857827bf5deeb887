package trebuchet

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/trebuchet/calibrate"
	"github.com/tsawler/trebuchet/format"
	"github.com/tsawler/trebuchet/htmldoc"
	"github.com/tsawler/trebuchet/ocr"
	"github.com/tsawler/trebuchet/pattern"
	"github.com/tsawler/trebuchet/scan"
	"github.com/tsawler/trebuchet/textdoc"
)

// ErrUnsupportedFormat is returned when a document's format cannot be
// determined or is not supported.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Calibration provides a fluent interface for calibrating a document.
// Each configuration method returns a new Calibration instance, making it
// safe for concurrent use and allowing method chaining.
type Calibration struct {
	// Source: a file name, or in-memory data
	filename string
	data     []byte
	hasData  bool

	// Configuration
	options CalibrateOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Calibration with a copy of options.
// The source data is never modified and is shared.
func (c *Calibration) clone() *Calibration {
	return &Calibration{
		filename: c.filename,
		data:     c.data,
		hasData:  c.hasData,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Calibration instance)
// ============================================================================

// Legacy counts literal ASCII digits only, ignoring spelled-out words.
//
// Example:
//
//	total, _, err := trebuchet.Open("input.txt").Legacy().Total()
func (c *Calibration) Legacy() *Calibration {
	return c.Mode(calibrate.ModeLegacy)
}

// Mode sets the calibration mode explicitly.
func (c *Calibration) Mode(m calibrate.Mode) *Calibration {
	newCal := c.clone()
	newCal.options.mode = m
	return newCal
}

// Normalize applies NFKC normalization before scanning, so that fullwidth
// or circled digits count as ASCII digits.
func (c *Calibration) Normalize() *Calibration {
	newCal := c.clone()
	newCal.options.normalize = true
	return newCal
}

// Format forces the document format instead of detecting it. Passing
// format.Unknown restores detection.
func (c *Calibration) Format(f format.Format) *Calibration {
	newCal := c.clone()
	newCal.options.format = f
	return newCal
}

// WithTable uses table instead of pattern.Default() for scanning.
func (c *Calibration) WithTable(table *pattern.Table) *Calibration {
	newCal := c.clone()
	newCal.options.table = table
	return newCal
}

// OCRLanguage sets the Tesseract language used for image documents.
func (c *Calibration) OCRLanguage(lang string) *Calibration {
	newCal := c.clone()
	newCal.options.ocrLang = lang
	return newCal
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text returns the document text as it will be scanned, after decoding,
// HTML extraction or OCR, and normalization.
func (c *Calibration) Text() (string, []Warning, error) {
	return c.load()
}

// Lines calibrates every line of the document.
// Lines without a digit produce a WarnNoDigit warning.
func (c *Calibration) Lines() ([]calibrate.LineResult, []Warning, error) {
	text, warnings, err := c.load()
	if err != nil {
		return nil, warnings, err
	}

	results := c.calibrator().Lines(text)
	for _, res := range results {
		if !res.Found {
			warnings = append(warnings, Warning{
				Kind:    WarnNoDigit,
				Line:    res.Number,
				Message: "no digit found",
			})
		}
	}
	return results, warnings, nil
}

// Total returns the calibration value of the whole document.
//
// Example:
//
//	total, warnings, err := trebuchet.Open("input.txt").Total()
func (c *Calibration) Total() (int64, []Warning, error) {
	results, warnings, err := c.Lines()
	if err != nil {
		return 0, warnings, err
	}

	var total int64
	for _, res := range results {
		total += int64(res.Value)
	}
	return total, warnings, nil
}

func (c *Calibration) calibrator() *calibrate.Calibrator {
	return calibrate.New(
		calibrate.WithScanner(scan.New(c.options.table)),
		calibrate.WithMode(c.options.mode),
	)
}

// load reads the source and converts it to text.
func (c *Calibration) load() (string, []Warning, error) {
	if c.err != nil {
		return "", nil, c.err
	}

	data := c.data
	if !c.hasData {
		if c.filename == "" {
			return "", nil, fmt.Errorf("no filename specified")
		}
		var err error
		data, err = os.ReadFile(c.filename)
		if err != nil {
			return "", nil, fmt.Errorf("failed to open document: %w", err)
		}
	}

	f := c.detect(data)
	switch f {
	case format.Text:
		return c.loadText(data)
	case format.HTML:
		return c.loadHTML(data)
	case format.Image:
		return c.loadImage(data)
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.describeSource())
	}
}

// detect picks the format: explicit option, then file extension, then
// content sniffing.
func (c *Calibration) detect(data []byte) format.Format {
	if c.options.format != format.Unknown {
		return c.options.format
	}
	if c.filename != "" && !c.hasData {
		if f := format.Detect(c.filename); f != format.Unknown {
			return f
		}
	}
	if len(data) == 0 {
		return format.Text
	}
	return format.DetectFromMagic(data)
}

func (c *Calibration) describeSource() string {
	if c.filename != "" {
		return c.filename
	}
	return "in-memory document"
}

func (c *Calibration) loadText(data []byte) (string, []Warning, error) {
	doc, err := textdoc.Decode(data, textdoc.Options{Normalize: c.options.normalize})
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode text: %w", err)
	}

	var warnings []Warning
	if doc.Encoding != textdoc.UTF8 {
		warnings = append(warnings, Warning{
			Kind:    WarnDecoded,
			Message: fmt.Sprintf("decoded from %s", doc.Encoding),
		})
	}
	if doc.Normalized {
		warnings = append(warnings, Warning{
			Kind:    WarnNormalized,
			Message: "text changed by NFKC normalization",
		})
	}
	return doc.Text, warnings, nil
}

func (c *Calibration) loadHTML(data []byte) (string, []Warning, error) {
	r, err := htmldoc.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open HTML: %w", err)
	}
	defer r.Close()

	return c.loadText([]byte(r.Text()))
}

func (c *Calibration) loadImage(data []byte) (string, []Warning, error) {
	prepared, err := ocr.Prepare(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to prepare image: %w", err)
	}

	client, err := ocr.New()
	if err != nil {
		return "", nil, fmt.Errorf("failed to start OCR: %w", err)
	}
	defer client.Close()

	if err := client.SetLanguage(c.options.ocrLang); err != nil {
		return "", nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetWhitelist(ocr.CalibrationWhitelist); err != nil {
		return "", nil, fmt.Errorf("failed to set OCR whitelist: %w", err)
	}

	recognized, err := client.RecognizeImage(prepared)
	if err != nil {
		return "", nil, fmt.Errorf("failed to recognize image: %w", err)
	}

	text, warnings, err := c.loadText([]byte(recognized))
	if err != nil {
		return "", nil, err
	}
	warnings = append([]Warning{{Kind: WarnOCR, Message: "text obtained by OCR"}}, warnings...)
	return text, warnings, nil
}
