// Package pattern builds the digit tries used to locate calibration digits.
//
// A trie maps a sequence of runes to a digit value 0-9. Every trie contains
// the ten literal digits '0'..'9' as single-rune terminals plus the English
// digit words "one".."nine". The [Backward] trie stores each word reversed so
// that it can be matched while reading a line from its end.
//
// # Building
//
// Tries are built once and never modified:
//
//	table := pattern.NewTable()
//	fwd := table.For(pattern.Forward)
//
// [Default] returns a process-wide table that is built on first use.
//
// # Walking
//
// A [Pattern] is either a terminal holding a digit value or a branch with
// outgoing edges keyed by rune:
//
//	node := table.For(pattern.Forward)
//	for _, r := range "two" {
//	    if node = node.Next(r); node == nil {
//	        break
//	    }
//	}
//	if node != nil && node.IsResult() {
//	    fmt.Println(node.Value()) // 2
//	}
package pattern
