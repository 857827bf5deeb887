package pattern

import (
	"fmt"
	"sync"
)

// Words lists the spelled-out digits in value order. Words[0] is empty
// because zero is only recognized as a literal digit.
var Words = [10]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Pattern is a node of a digit trie. A terminal node carries the matched
// digit value; a branch node carries outgoing edges.
type Pattern struct {
	terminal bool
	value    int
	next     map[rune]*Pattern
}

func newBranch() *Pattern {
	return &Pattern{next: make(map[rune]*Pattern)}
}

// IsResult reports whether p is a terminal node.
func (p *Pattern) IsResult() bool {
	return p.terminal
}

// Value returns the digit of a terminal node, or -1 for a branch.
func (p *Pattern) Value() int {
	if !p.terminal {
		return -1
	}
	return p.value
}

// Next follows the edge labelled r. It returns nil if there is no such edge
// or p is terminal.
func (p *Pattern) Next(r rune) *Pattern {
	if p.terminal {
		return nil
	}
	return p.next[r]
}

// Len returns the number of outgoing edges of a branch node.
func (p *Pattern) Len() int {
	return len(p.next)
}

// insert adds key to the trie rooted at p with a terminal holding value.
// It panics if key would turn an existing terminal into a branch or land on
// an existing node.
func (p *Pattern) insert(key string, value int) {
	if key == "" {
		panic("pattern: empty key")
	}
	node := p
	runes := []rune(key)
	for i, r := range runes {
		if node.terminal {
			panic(fmt.Sprintf("pattern: %q passes through terminal %d", key, node.value))
		}
		last := i == len(runes)-1
		child, ok := node.next[r]
		if last {
			if ok {
				panic(fmt.Sprintf("pattern: %q collides with an existing route", key))
			}
			node.next[r] = &Pattern{terminal: true, value: value}
			return
		}
		if !ok {
			child = newBranch()
			node.next[r] = child
		}
		node = child
	}
}

// Build constructs the trie for dir. It panics if the vocabulary is
// inconsistent, which cannot happen for the fixed English digit words.
func Build(dir Direction) *Pattern {
	return build(dir, Words[:])
}

func build(dir Direction, words []string) *Pattern {
	root := newBranch()
	for d := 0; d <= 9; d++ {
		root.insert(string(rune('0'+d)), d)
	}
	for value, word := range words {
		if word == "" {
			continue
		}
		if dir == Backward {
			word = reverse(word)
		}
		root.insert(word, value)
	}
	return root
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Table holds the forward and backward tries. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	forward  *Pattern
	backward *Pattern
}

// NewTable builds both tries.
func NewTable() *Table {
	return &Table{
		forward:  Build(Forward),
		backward: Build(Backward),
	}
}

// For returns the trie for dir. Any direction other than Backward yields
// the forward trie.
func (t *Table) For(dir Direction) *Pattern {
	if dir == Backward {
		return t.backward
	}
	return t.forward
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared table, building it on first call.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}
