package suffixtree

// node is a single suffix-tree node together with its incoming edge.
//
// The edge label is the inclusive index range [start, end] into the sealed
// text. Leaves keep an open end: their label implicitly grows with the
// global end of the tree, so extending every leaf during construction costs
// nothing. The root carries no incoming edge; its start and end are -1.
//
// suffixLink is a non-owning shortcut between internal nodes; ownership
// runs strictly parent to child through the children map.
type node struct {
	children    map[rune]*node
	start       int
	end         int  // last label index, valid only when open is false
	open        bool // label ends at the current global end
	suffixLink  *node
	suffixIndex int // starting position of the suffix, leaves only
}

// newInternal creates an internal node with a fixed edge label [start, end].
func newInternal(start, end int) *node {
	return &node{
		children:    make(map[rune]*node),
		start:       start,
		end:         end,
		suffixIndex: -1,
	}
}

// newLeaf creates an open-ended leaf for the suffix starting at suffixIndex.
func newLeaf(start, suffixIndex int) *node {
	return &node{
		children:    make(map[rune]*node),
		start:       start,
		open:        true,
		suffixIndex: suffixIndex,
	}
}

// isLeaf reports whether n is a leaf: no children and an open end.
func (n *node) isLeaf() bool {
	return n.open && len(n.children) == 0
}

// edgeLength returns the length of the incoming edge label, resolving an
// open end against the global end treeEnd.
func (n *node) edgeLength(treeEnd int) int {
	if n.open {
		return treeEnd - n.start + 1
	}
	return n.end - n.start + 1
}

// labelEnd returns the inclusive last index of the edge label, resolving an
// open end against treeEnd.
func (n *node) labelEnd(treeEnd int) int {
	if n.open {
		return treeEnd
	}
	return n.end
}
