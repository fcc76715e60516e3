package suffixtree

import (
	"github.com/Dawnliving/SuffixTree-S-and-C/priorityqueue"
	"github.com/Dawnliving/SuffixTree-S-and-C/queue"
	"github.com/Dawnliving/SuffixTree-S-and-C/stack"
	"github.com/Dawnliving/SuffixTree-S-and-C/text"
)

// Search reports every occurrence of pattern in the text as 1-based
// starting positions, sorted ascending. A pattern that does not occur, an
// empty pattern, or a pattern longer than the text yields no positions.
// Patterns containing the sentinel symbol are rejected with
// text.ErrSentinelInPattern.
//
// Algorithm Steps:
//   - Walk from the root, comparing the pattern against edge labels symbol
//     by symbol.
//   - On a missing child or a label mismatch, report no matches.
//   - When the pattern is exhausted on an edge, collect the suffix index of
//     every leaf below the reached child.
//
// Complexity: O(m + k log k), where m = pattern length, k = matches.
func (t *SuffixTree) Search(pattern string) ([]int, error) {
	if err := text.CheckPattern(pattern); err != nil {
		return nil, err
	}
	p := []rune(pattern)
	if len(p) == 0 || len(p) > t.txt.TextLen() {
		return nil, nil
	}

	current := t.root
	j := 0
	for {
		child, ok := current.children[p[j]]
		if !ok {
			return nil, nil
		}
		last := child.labelEnd(t.end)
		for i := child.start; i <= last && j < len(p); i++ {
			if t.txt.At(i) != p[j] {
				return nil, nil
			}
			j++
		}
		if j == len(p) {
			return t.collect(child), nil
		}
		current = child
	}
}

// collect gathers the 1-based suffix positions of every leaf in the
// subtree rooted at n. The walk is depth-first over an explicit stack, so
// its depth is independent of the goroutine stack, and the positions are
// emitted through a min-heap to come out ascending.
func (t *SuffixTree) collect(n *node) []int {
	worklist := stack.New[*node]()
	worklist.Push(n)
	positions := priorityqueue.NewMinBinaryHeap[int]()

	for !worklist.IsEmpty() {
		cur, _ := worklist.Pop()
		if cur.isLeaf() {
			positions.Add(cur.suffixIndex + 1)
			continue
		}
		for _, child := range cur.children {
			worklist.Push(child)
		}
	}

	return positions.Drain()
}

// NodeCount returns the total number of nodes in the tree, root included.
// A tree over a sealed text of length n+1 never exceeds 2(n+1) nodes.
//
// Complexity: O(n)
func (t *SuffixTree) NodeCount() int {
	level := queue.New[*node]()
	level.Enqueue(t.root)
	count := 0

	for !level.IsEmpty() {
		n, _ := level.Dequeue()
		count++
		for _, child := range n.children {
			level.Enqueue(child)
		}
	}

	return count
}
