package calibrate

import "strings"

// EachLine calls fn for every line of text with its 1-based line number.
// Lines end at "\n"; a "\r" before it is dropped. A final line terminator
// does not start another line, so "a\n" has one line and "" has none.
func EachLine(text string, fn func(number int, line string)) {
	number := 0
	for text != "" {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		number++
		fn(number, strings.TrimSuffix(line, "\r"))
	}
}

// SplitLines returns the lines of text as EachLine sees them.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	EachLine(text, func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}
