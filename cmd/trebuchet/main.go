// trebuchet - document calibration value CLI
//
// Usage:
//
//	trebuchet sum [--legacy] [--normalize] [--format text|html|image] [file...]
//	trebuchet lines [file]
//	trebuchet version
//
// If no file (or "-") is given, reads from stdin. Defaults come from
// TREBUCHET_* environment variables and an optional .env file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
