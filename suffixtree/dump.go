package suffixtree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Dawnliving/SuffixTree-S-and-C/stack"
)

// Dump renders the tree as indented text for diagnostics, one line per
// edge:
//
//	'a' -> a
//	  '$' -> $ (idx:5)
//	  'n' -> na
//	    '$' -> $ (idx:3)
//	...
//
// Children are ordered by their leading symbol and leaves carry their
// suffix index. The walk is iterative, so dumping a deep tree is safe.
func (t *SuffixTree) Dump() string {
	type frame struct {
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
			worklist.Push(frame{n: n.children[keys[i]], depth: depth})
		}
	}
	push(t.root, 0)

	for !worklist.IsEmpty() {
		f, _ := worklist.Pop()
		label := t.txt.Label(f.n.start, f.n.labelEnd(t.end))
		sb.WriteString(strings.Repeat("  ", f.depth))
		if f.n.isLeaf() {
			fmt.Fprintf(&sb, "'%c' -> %s (idx:%d)\n", t.txt.At(f.n.start), label, f.n.suffixIndex)
		} else {
			fmt.Fprintf(&sb, "'%c' -> %s\n", t.txt.At(f.n.start), label)
		}
		push(f.n, f.depth+1)
	}

	return sb.String()
}
