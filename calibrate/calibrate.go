package calibrate

import (
	"strconv"
	"strings"

	"github.com/tsawler/trebuchet/scan"
)

// Mode selects which digits count towards a calibration value.
type Mode int

const (
	// ModeWords counts literal digits and spelled-out digit words.
	ModeWords Mode = iota
	// ModeLegacy counts literal ASCII digits only.
	ModeLegacy
)

// String returns "words", "legacy" or "unknown".
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseMode converts "words" or "legacy" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "words", "":
		return ModeWords, true
	case "legacy", "v1":
		return ModeLegacy, true
	default:
		return ModeWords, false
	}
}

// LineResult is the calibration of a single line.
type LineResult struct {
	Number int    // 1-based line number
	Text   string // line without its terminator
	Value  int    // First*10 + Last
	First  int    // first digit, 0 if none
	Last   int    // last digit, 0 if none
	Found  bool   // whether any digit was found
}

// Calibrator computes calibration values with a fixed scanner and mode.
// It is immutable and safe for concurrent use.
type Calibrator struct {
	scanner *scan.Scanner
	mode    Mode
}

// Option configures a Calibrator.
type Option func(*Calibrator)

// WithScanner sets the scanner used in ModeWords.
func WithScanner(s *scan.Scanner) Option {
	return func(c *Calibrator) {
		if s != nil {
			c.scanner = s
		}
	}
}

// WithMode sets the calibration mode.
func WithMode(m Mode) Option {
	return func(c *Calibrator) {
		c.mode = m
	}
}

// New returns a Calibrator. Without options it uses ModeWords and a
// scanner over pattern.Default().
func New(opts ...Option) *Calibrator {
	c := &Calibrator{mode: ModeWords}
	for _, opt := range opts {
		opt(c)
	}
	if c.scanner == nil {
		c.scanner = scan.New(nil)
	}
	return c
}

// Mode returns the calibration mode of c.
func (c *Calibrator) Mode() Mode {
	return c.mode
}

// Line calibrates a single line. Number is left at zero.
func (c *Calibrator) Line(line string) LineResult {
	res := LineResult{Text: line}
	if c.mode == ModeLegacy {
		res.First, res.Last, res.Found = literalDigits(line)
		res.Value = legacyValue(line)
		return res
	}

	first, okFirst := c.scanner.First(line)
	last, okLast := c.scanner.Last(line)
	res.First, res.Last = first, last
	res.Found = okFirst || okLast
	res.Value = first*10 + last
	return res
}

// Lines calibrates every line of text.
func (c *Calibrator) Lines(text string) []LineResult {
	var results []LineResult
	EachLine(text, func(number int, line string) {
		res := c.Line(line)
		res.Number = number
		results = append(results, res)
	})
	return results
}

// Document returns the sum of the calibration values of all lines in text.
func (c *Calibrator) Document(text string) int64 {
	var total int64
	EachLine(text, func(_ int, line string) {
		total += int64(c.Line(line).Value)
	})
	return total
}

var (
	wordsCalibrator  = New()
	legacyCalibrator = New(WithMode(ModeLegacy))
)

// LineValue returns the calibration value of line counting digit words.
func LineValue(line string) int {
	return wordsCalibrator.Line(line).Value
}

// LineValueLegacy returns the calibration value of line counting literal
// digits only. A single digit is used as both first and last digit.
func LineValueLegacy(line string) int {
	return legacyValue(line)
}

// DocumentValue sums LineValue over the lines of text.
func DocumentValue(text string) int64 {
	return wordsCalibrator.Document(text)
}

// DocumentValueLegacy sums LineValueLegacy over the lines of text.
func DocumentValueLegacy(text string) int64 {
	return legacyCalibrator.Document(text)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// literalDigits returns the first and last ASCII digit of line.
func literalDigits(line string) (first, last int, ok bool) {
	i := strings.IndexFunc(line, isASCIIDigit)
	if i < 0 {
		return 0, 0, false
	}
	j := strings.LastIndexFunc(line, isASCIIDigit)
	return int(line[i] - '0'), int(line[j] - '0'), true
}

// legacyValue concatenates the first and last literal digit and parses
// the result, defaulting to 0.
func legacyValue(line string) int {
	i := strings.IndexFunc(line, isASCIIDigit)
	if i < 0 {
		return 0
	}
	j := strings.LastIndexFunc(line, isASCIIDigit)
	n, err := strconv.Atoi(string([]byte{line[i], line[j]}))
	if err != nil {
		return 0
	}
	return n
}
