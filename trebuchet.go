// Package trebuchet provides a fluent API for computing the calibration
// value of a document.
//
// Each line's calibration value is formed from its first and last digit,
// where "one".."nine" count as digits too, and the document value is the
// sum over all lines.
//
// Basic usage:
//
//	total, warnings, err := trebuchet.Open("input.txt").Total()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", trebuchet.FormatWarnings(warnings))
//	}
//
// With options:
//
//	total, _, err := trebuchet.Open("input.html").
//	    Legacy().
//	    Normalize().
//	    Total()
//
// For lower-level access use the calibrate, scan and pattern packages.
package trebuchet

import (
	"fmt"
	"io"
)

// Open returns a Calibration reading the file at filename. The file is
// read when a terminal operation such as Total() is called.
//
// Example:
//
//	total, _, err := trebuchet.Open("input.txt").Total()
func Open(filename string) *Calibration {
	return &Calibration{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString returns a Calibration of an in-memory text document.
//
// Example:
//
//	total := trebuchet.MustValue(trebuchet.FromString("two1nine\neightwothree").Total())
func FromString(text string) *Calibration {
	return &Calibration{
		data:    []byte(text),
		hasData: true,
		options: defaultOptions(),
	}
}

// FromReader reads r to EOF and returns a Calibration of its content.
// A read error is reported by the first terminal operation.
func FromReader(r io.Reader) *Calibration {
	data, err := io.ReadAll(r)
	c := &Calibration{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
	if err != nil {
		c.err = fmt.Errorf("reading input: %w", err)
	}
	return c
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a call to Total(), Lines() or Text() and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	total := trebuchet.MustValue(trebuchet.Open("input.txt").Total())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
