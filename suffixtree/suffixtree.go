/*
Package suffixtree provides substring search over a single immutable text
through a compact suffix tree built online with Ukkonen's algorithm.

The tree is built in O(n) time and space for a text of length n and answers
a pattern query in O(m + k log k) time, where m is the pattern length and k
the number of occurrences: matching costs O(m) and the k positions are
sorted through a min-heap. Edge labels are index ranges into the sealed text,
children hang off a map keyed by the first symbol of their edge, and leaf
ends stay open so every leaf grows implicitly as symbols are appended.

Features:
  - New: Build the index in O(n) time, sentinel handling included.
  - Search: Report all 1-based occurrence positions of a pattern, sorted
    ascending, in O(m + k log k).
  - NodeCount: Count nodes through a level-order walk.
  - Dump: Render the tree for diagnostics.
  - CachedSearcher: LRU-memoized search over the immutable tree.

Example:

	st, err := suffixtree.New("banana")
	if err != nil {
		// empty text or text containing the sentinel
	}
	positions, _ := st.Search("an")
	fmt.Println(positions) // [2 4]

Implementation Details:
  - Construction state (active point, remainder, pending suffix link) lives
    in a builder that is discarded once the tree is sealed.
  - After New returns, the tree is immutable and safe for concurrent
    readers without synchronization.

Complexity:
  - New: O(n)
  - Search: O(m + k log k)
  - NodeCount, Dump: O(n)
*/
package suffixtree

import (
	"github.com/Dawnliving/SuffixTree-S-and-C/text"
)

// SuffixTree is a compact suffix tree over a sealed text. It is immutable
// after construction and safe for concurrent readers.
type SuffixTree struct {
	txt  *text.Text
	root *node
	end  int // global end: index of the last appended symbol
}

// builder carries the mutable construction state of Ukkonen's algorithm.
// It exists only while New runs; queries never touch it.
//
// The active point (activeNode, activeEdge, activeLength) names the spot in
// the tree where the next extension starts. activeEdge is an index into the
// text, not a symbol: the edge at the active node is looked up through
// txt.At(activeEdge). remainder counts the suffixes of the current prefix
// that are still represented implicitly by the active point.
type builder struct {
	txt  *text.Text
	root *node
	end  int

	activeNode   *node
	activeEdge   int
	activeLength int
	remainder    int

	// lastNewInternal is the internal node created by the most recent edge
	// split of the current extension step, still waiting for its suffix
	// link.
	lastNewInternal *node
}

// New seals s (appending the sentinel) and builds its compact suffix tree.
//
// Returns text.ErrEmptyText for an empty string and text.ErrSentinelInText
// if s contains the reserved sentinel symbol.
//
// Complexity: O(n)
func New(s string) (*SuffixTree, error) {
	txt, err := text.Seal(s)
	if err != nil {
		return nil, err
	}

	b := &builder{
		txt:        txt,
		root:       newInternal(-1, -1),
		end:        -1,
		activeEdge: -1,
	}
	b.activeNode = b.root

	for pos := 0; pos < txt.Len(); pos++ {
		b.extend(pos)
	}

	return &SuffixTree{txt: txt, root: b.root, end: b.end}, nil
}

// extend grows the implicit tree from T[0..pos-1] to T[0..pos].
//
// One step of Ukkonen's algorithm: the new symbol is appended to every leaf
// at once by advancing the global end, then the remaining pending suffixes
// are resolved from the active point. Each loop iteration either creates a
// leaf below the active node (rule 2), splits the active edge and hangs a
// new leaf off the split (rule 2 with split), or finds the symbol already
// present on the active edge (rule 3) and stops early, leaving the carried
// remainder for later steps. Internal nodes created by splits get their
// suffix links wired to the next internal node touched in the same step.
func (b *builder) extend(pos int) {
	b.end = pos
	b.remainder++
	b.lastNewInternal = nil

	for b.remainder > 0 {
		if b.activeLength == 0 {
			b.activeEdge = pos
		}
		key := b.txt.At(b.activeEdge)

		child, ok := b.activeNode.children[key]
		if !ok {
			// Rule 2: no edge starts with the active symbol here.
			leaf := newLeaf(pos, pos-b.remainder+1)
			b.activeNode.children[key] = leaf

			if b.lastNewInternal != nil {
				b.lastNewInternal.suffixLink = b.activeNode
				b.lastNewInternal = nil
			}
		} else {
			if b.walkDown(child) {
				continue
			}

			if b.txt.At(child.start+b.activeLength) == b.txt.At(pos) {
				// Rule 3: the symbol is already on the edge. The active
				// point advances and the step ends; the remainder carries
				// over to the next extension.
				if b.lastNewInternal != nil {
					b.lastNewInternal.suffixLink = b.activeNode
				}
				b.activeLength++
				break
			}

			// Rule 2 with split: the edge diverges activeLength symbols in.
			split := newInternal(child.start, child.start+b.activeLength-1)
			b.activeNode.children[key] = split

			leaf := newLeaf(pos, pos-b.remainder+1)
			split.children[b.txt.At(pos)] = leaf

			child.start += b.activeLength
			split.children[b.txt.At(child.start)] = child

			if b.lastNewInternal != nil {
				b.lastNewInternal.suffixLink = split
			}
			b.lastNewInternal = split
		}

		b.remainder--

		if b.activeNode == b.root && b.activeLength > 0 {
			b.activeLength--
			b.activeEdge = pos - b.remainder + 1
		} else if b.activeNode != b.root {
			if b.activeNode.suffixLink != nil {
				b.activeNode = b.activeNode.suffixLink
			} else {
				b.activeNode = b.root
			}
		}
	}
}

// walkDown canonicalizes the active point: when the active length spans the
// whole edge to child, the active node moves down past it. Returns true if
// the active point shifted.
func (b *builder) walkDown(child *node) bool {
	length := child.edgeLength(b.end)
	if b.activeLength >= length {
		b.activeEdge += length
		b.activeLength -= length
		b.activeNode = child
		return true
	}
	return false
}

// Text returns the original text the tree was built from, without the
// sentinel.
func (t *SuffixTree) Text() string {
	return string(t.txt.Slice(0, t.txt.TextLen()))
}
