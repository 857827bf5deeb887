package trebuchet

import (
	"fmt"
	"strings"
)

// WarningKind classifies non-fatal issues found while calibrating.
type WarningKind int

const (
	// WarnNoDigit marks a line without any digit; it contributes 0.
	WarnNoDigit WarningKind = iota
	// WarnDecoded marks input that was converted from a non-UTF-8 encoding
	// or had a byte order mark removed.
	WarnDecoded
	// WarnNormalized marks input changed by Unicode normalization.
	WarnNormalized
	// WarnOCR marks text obtained by optical character recognition.
	WarnOCR
)

// String returns a short name for the kind.
func (k WarningKind) String() string {
	switch k {
	case WarnNoDigit:
		return "no-digit"
	case WarnDecoded:
		return "decoded"
	case WarnNormalized:
		return "normalized"
	case WarnOCR:
		return "ocr"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue. Line is 1-based, or 0 when the warning
// concerns the whole document.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
// No-digit warnings are summarized by count.
func FormatWarnings(warnings []Warning) string {
	var parts []string
	noDigit := 0
	for _, w := range warnings {
		if w.Kind == WarnNoDigit {
			noDigit++
			continue
		}
		parts = append(parts, w.String())
	}
	switch noDigit {
	case 0:
	case 1:
		parts = append(parts, "1 line without digits")
	default:
		parts = append(parts, fmt.Sprintf("%d lines without digits", noDigit))
	}
	return strings.Join(parts, "; ")
}
