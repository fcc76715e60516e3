/*
Package text models the input of a suffix-tree index: an immutable sequence
of symbols terminated by a reserved sentinel.

The text is sealed once on construction. Sealing appends the sentinel symbol
and freezes the sequence; every later access is read-only. Symbols are runes
compared by exact equality, so the alphabet never has to be declared up
front.

Use Cases:
  - Input validation shared by the compact suffix tree and the naive trie.
  - Random access to symbols and edge labels during construction and search.

Example:

	txt, err := text.Seal("banana")
	if err != nil {
		// empty input, or input containing the sentinel
	}
	fmt.Println(txt.Len())     // 7 (sentinel included)
	fmt.Println(txt.TextLen()) // 6

Implementation Details:
  - The sealed sequence is a private rune slice; callers only get copies.
  - The sentinel is '$' and may appear in neither texts nor patterns.
*/
package text

import "errors"

// Sentinel is the reserved end-of-text symbol. It terminates every suffix,
// so it may not occur in the caller's text or in search patterns.
const Sentinel = '$'

// Exported input errors. Construction and search surface these; anything
// else going wrong inside an index is a programming error, not an input
// condition.
var (
	ErrEmptyText         = errors.New("text: empty text")
	ErrSentinelInText    = errors.New("text: text contains the sentinel symbol")
	ErrSentinelInPattern = errors.New("text: pattern contains the sentinel symbol")
)

// Text is a sealed symbol sequence: the caller's text with the sentinel
// appended. It is immutable after Seal and safe for concurrent readers.
type Text struct {
	symbols []rune
}

// Seal validates s, appends the sentinel and returns the frozen sequence.
//
// Returns ErrEmptyText for an empty string and ErrSentinelInText if s
// already contains the sentinel (the sentinel must stay unique, so such
// inputs are rejected rather than re-terminated).
//
// Complexity: O(n)
func Seal(s string) (*Text, error) {
	if len(s) == 0 {
		return nil, ErrEmptyText
	}
	symbols := make([]rune, 0, len(s)+1)
	for _, r := range s {
		if r == Sentinel {
			return nil, ErrSentinelInText
		}
		symbols = append(symbols, r)
	}
	symbols = append(symbols, Sentinel)
	return &Text{symbols: symbols}, nil
}

// CheckPattern reports ErrSentinelInPattern if p contains the sentinel.
// A pattern with the sentinel could otherwise match the terminal edge of
// the tree and report phantom occurrences.
func CheckPattern(p string) error {
	for _, r := range p {
		if r == Sentinel {
			return ErrSentinelInPattern
		}
	}
	return nil
}

// At returns the symbol at position i. Positions are 0-based and include
// the sentinel at Len()-1. Out-of-range i panics like any slice access.
//
// Complexity: O(1)
func (t *Text) At(i int) rune {
	return t.symbols[i]
}

// Len returns the sealed length, sentinel included.
//
// Complexity: O(1)
func (t *Text) Len() int {
	return len(t.symbols)
}

// TextLen returns the length of the caller's original text, without the
// sentinel.
//
// Complexity: O(1)
func (t *Text) TextLen() int {
	return len(t.symbols) - 1
}

// Slice returns a copy of the symbols in [i, j). The copy keeps the sealed
// sequence immutable.
//
// Complexity: O(j-i)
func (t *Text) Slice(i, j int) []rune {
	out := make([]rune, j-i)
	copy(out, t.symbols[i:j])
	return out
}

// Label renders the symbols in the inclusive range [start, end] as a
// string. Used by diagnostic dumps for edge labels.
func (t *Text) Label(start, end int) string {
	return string(t.symbols[start : end+1])
}
