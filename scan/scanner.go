// Package scan locates the first or last calibration digit in a line.
//
// A [Scanner] tries successive start offsets along the line in scan order
// and walks a digit trie from each one. Literal ASCII digits win as soon as
// they are read, even in the middle of a partially matched word, so
//
//	s := scan.New(pattern.NewTable())
//	s.First("twone") // 2, true
//	s.Last("twone")  // 1, true
package scan

import (
	"unicode/utf8"

	"github.com/tsawler/trebuchet/pattern"
)

// Scanner matches lines against an injected pattern table. It holds no
// mutable state and is safe for concurrent use.
type Scanner struct {
	table *pattern.Table
}

// New returns a Scanner reading from table. A nil table selects
// pattern.Default().
func New(table *pattern.Table) *Scanner {
	if table == nil {
		table = pattern.Default()
	}
	return &Scanner{table: table}
}

// Table returns the pattern table used by s.
func (s *Scanner) Table() *pattern.Table {
	return s.table
}

// First returns the first digit of line read left to right.
func (s *Scanner) First(line string) (int, bool) {
	return s.Scan(line, pattern.Forward)
}

// Last returns the last digit of line read right to left.
func (s *Scanner) Last(line string) (int, bool) {
	return s.Scan(line, pattern.Backward)
}

// Scan returns the digit found at the earliest start offset in scan order.
// ok is false when line contains no literal or spelled-out digit.
func (s *Scanner) Scan(line string, dir pattern.Direction) (digit int, ok bool) {
	root := s.table.For(dir)
	for rest := line; rest != ""; {
		if digit, ok = match(rest, root, dir); ok {
			return digit, true
		}
		_, size := step(rest, dir)
		rest = drop(rest, size, dir)
	}
	return 0, false
}

// match walks the trie from root reading input in scan order.
func match(input string, root *pattern.Pattern, dir pattern.Direction) (int, bool) {
	node := root
	for input != "" {
		r, size := step(input, dir)
		if r >= '0' && r <= '9' {
			return int(r - '0'), true
		}
		if node = node.Next(r); node == nil {
			return 0, false
		}
		if node.IsResult() {
			return node.Value(), true
		}
		input = drop(input, size, dir)
	}
	return 0, false
}

// step returns the next rune of s in scan order and its encoded size.
func step(s string, dir pattern.Direction) (rune, int) {
	if dir == pattern.Backward {
		return utf8.DecodeLastRuneInString(s)
	}
	return utf8.DecodeRuneInString(s)
}

// drop removes size bytes from the front (Forward) or back (Backward) of s.
func drop(s string, size int, dir pattern.Direction) string {
	if dir == pattern.Backward {
		return s[:len(s)-size]
	}
	return s[size:]
}
