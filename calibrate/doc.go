// Package calibrate computes calibration values of lines and documents.
//
// The calibration value of a line is its first digit times ten plus its
// last digit, where a digit is either a literal ASCII digit or one of the
// English words "one".."nine". Lines without any digit are worth 0. The
// value of a document is the sum over its lines:
//
//	calibrate.LineValue("two1nine")          // 29
//	calibrate.DocumentValue("1abc2\ntreb7uchet") // 12 + 77
//
// The legacy mode only looks at literal digits:
//
//	calibrate.LineValueLegacy("two1nine") // 11
//
// For explicit control over the pattern table, build a [Calibrator]:
//
//	c := calibrate.New(calibrate.WithScanner(scan.New(pattern.NewTable())))
//	total := c.Document(text)
package calibrate
