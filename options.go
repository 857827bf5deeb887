package trebuchet

import (
	"github.com/tsawler/trebuchet/calibrate"
	"github.com/tsawler/trebuchet/format"
	"github.com/tsawler/trebuchet/pattern"
)

// CalibrateOptions holds configuration for a calibration run.
type CalibrateOptions struct {
	mode      calibrate.Mode
	normalize bool          // NFKC-normalize text before scanning
	format    format.Format // Unknown means detect
	table     *pattern.Table
	ocrLang   string
}

// defaultOptions returns the default calibration options.
func defaultOptions() CalibrateOptions {
	return CalibrateOptions{
		mode:      calibrate.ModeWords,
		normalize: false,
		format:    format.Unknown,
		table:     nil, // nil means pattern.Default()
		ocrLang:   "eng",
	}
}

// clone creates a copy of CalibrateOptions. The pattern table is shared;
// it is read-only.
func (o CalibrateOptions) clone() CalibrateOptions {
	return CalibrateOptions{
		mode:      o.mode,
		normalize: o.normalize,
		format:    o.format,
		table:     o.table,
		ocrLang:   o.ocrLang,
	}
}
