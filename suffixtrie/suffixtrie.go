/*
Package suffixtrie provides substring search over a single immutable text
through a trie holding every suffix of the text.

The trie stores one path per suffix and records, at every node on the path,
the 1-based starting position of that suffix. A pattern query then walks
the pattern from the root and reads the positions off the reached node. The
index costs O(n²) space for a text of length n, so it serves as a simple
reference: the compact suffix tree in the sibling package answers the same
queries in linear space and is cross-validated against this one.

Features:
  - New: Build the index, sentinel handling included.
  - Search: Report all 1-based occurrence positions of a pattern, sorted
    ascending, in O(m).
  - Dump: Render the trie for diagnostics.

Example:

	st, err := suffixtrie.New("banana")
	if err != nil {
		// empty text or text containing the sentinel
	}
	positions, _ := st.Search("an")
	fmt.Println(positions) // [2 4]

Implementation Details:
  - Suffix insertion is iterative; building from a long text never grows
    the goroutine stack.
  - After New returns, the trie is immutable and safe for concurrent
    readers without synchronization.

Complexity:
  - New: O(n²)
  - Search: O(m)
*/
package suffixtrie

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Dawnliving/SuffixTree-S-and-C/stack"
	"github.com/Dawnliving/SuffixTree-S-and-C/text"
)

// node is a single trie node. positions holds the 1-based starting
// positions of every suffix whose path runs through this node, in
// ascending order.
type node struct {
	children  map[rune]*node
	positions []int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// SuffixTrie is a trie of all suffixes of a sealed text. It is immutable
// after construction and safe for concurrent readers.
type SuffixTrie struct {
	txt  *text.Text
	root *node
}

// New seals s (appending the sentinel) and builds the trie of all its
// suffixes.
//
// Returns text.ErrEmptyText for an empty string and text.ErrSentinelInText
// if s contains the reserved sentinel symbol.
//
// Complexity: O(n²)
func New(s string) (*SuffixTrie, error) {
	txt, err := text.Seal(s)
	if err != nil {
		return nil, err
	}

	t := &SuffixTrie{txt: txt, root: newNode()}
	for i := 0; i < txt.TextLen(); i++ {
		t.insert(i)
	}
	return t, nil
}

// insert adds the suffix starting at i, one symbol at a time, appending
// the 1-based position i+1 to every node on the path. The sentinel ends
// the walk, so every suffix terminates at a distinct leaf.
//
// Positions are inserted for i = 0, 1, 2, …, so each node's position list
// stays ascending without sorting.
func (t *SuffixTrie) insert(i int) {
	current := t.root
	for j := i; j < t.txt.Len(); j++ {
		sym := t.txt.At(j)
		child := current.children[sym]
		if child == nil {
			child = newNode()
			current.children[sym] = child
		}
		child.positions = append(child.positions, i+1)
		current = child
	}
}

// Search reports every occurrence of pattern in the text as 1-based
// starting positions, sorted ascending. A pattern that does not occur, an
// empty pattern, or a pattern longer than the text yields no positions.
// Patterns containing the sentinel symbol are rejected with
// text.ErrSentinelInPattern.
//
// Algorithm Steps:
//   - Walk the pattern from the root, one symbol per edge.
//   - On a missing child, report no matches.
//   - Otherwise return the positions recorded at the reached node.
//
// Complexity: O(m), where m = pattern length.
func (t *SuffixTrie) Search(pattern string) ([]int, error) {
	if err := text.CheckPattern(pattern); err != nil {
		return nil, err
	}
	p := []rune(pattern)
	if len(p) == 0 || len(p) > t.txt.TextLen() {
		return nil, nil
	}

	current := t.root
	for _, sym := range p {
		child := current.children[sym]
		if child == nil {
			return nil, nil
		}
		current = child
	}

	positions := make([]int, len(current.positions))
	copy(positions, current.positions)
	return positions, nil
}

// Dump renders the trie as indented text for diagnostics, one line per
// node:
//
//	(b) -> Index: [1]
//	  (a) -> Index: [1]
//	...
//
// Children are ordered by symbol and the walk is iterative, so dumping a
// trie built from a long text is safe.
func (t *SuffixTrie) Dump() string {
	type frame struct {
		sym   rune
		n     *node
		depth int
	}

	var sb strings.Builder
	worklist := stack.New[frame]()

	// Push children in descending symbol order so the stack pops them
	// ascending.
	push := func(n *node, depth int) {
		keys := make([]rune, 0, len(n.children))
		for key := range n.children {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for i := len(keys) - 1; i >= 0; i-- {
			worklist.Push(frame{sym: keys[i], n: n.children[keys[i]], depth: depth})
		}
	}
	push(t.root, 0)

	for !worklist.IsEmpty() {
		f, _ := worklist.Pop()
		sb.WriteString(strings.Repeat("  ", f.depth))
		fmt.Fprintf(&sb, "(%c) -> Index: %v\n", f.sym, f.n.positions)
		push(f.n, f.depth+1)
	}

	return sb.String()
}

// Text returns the original text the trie was built from, without the
// sentinel.
func (t *SuffixTrie) Text() string {
	return string(t.txt.Slice(0, t.txt.TextLen()))
}
