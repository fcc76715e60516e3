package suffixtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dawnliving/SuffixTree-S-and-C/queue"
)

// Structural checks on the built tree, run against fixed and random texts:
// suffix-link closure, the 2(n+1) node bound, inclusive edge bounds, and
// leaf paths spelling out their suffixes.

func checkInvariants(t *testing.T, st *SuffixTree) {
	t.Helper()

	n := st.txt.Len()
	seenLeaves := make(map[int]bool)
	nodes := 0

	level := queue.New[*node]()
	level.Enqueue(st.root)
	for !level.IsEmpty() {
		cur, _ := level.Dequeue()
		nodes++

		if cur != st.root {
			last := cur.labelEnd(st.end)
			assert.LessOrEqual(t, cur.start, last, "edge start above its end")
			assert.Less(t, last, n, "edge label out of range")
		}

		if cur.isLeaf() {
			assert.False(t, seenLeaves[cur.suffixIndex], "duplicate leaf for suffix %d", cur.suffixIndex)
			seenLeaves[cur.suffixIndex] = true
		} else if cur != st.root {
			require.NotNil(t, cur.suffixLink, "internal node without suffix link")
			assert.NotEmpty(t, cur.suffixLink.children, "suffix link target is not an internal node")
		}

		for key, child := range cur.children {
			assert.Equal(t, st.txt.At(child.start), key, "child keyed by wrong leading symbol")
			level.Enqueue(child)
		}
	}

	assert.LessOrEqual(t, nodes, 2*n, "node count above 2(n+1)")
	assert.Len(t, seenLeaves, n, "missing explicit leaves")

	checkLeafPaths(t, st)
}

// checkLeafPaths verifies that the edge labels from the root to each leaf
// concatenate to exactly the suffix named by the leaf.
func checkLeafPaths(t *testing.T, st *SuffixTree) {
	t.Helper()

	n := st.txt.Len()
	var walk func(cur *node, prefix string)
	walk = func(cur *node, prefix string) {
		if cur != st.root {
			prefix += st.txt.Label(cur.start, cur.labelEnd(st.end))
		}
		if cur.isLeaf() {
			want := st.txt.Label(cur.suffixIndex, n-1)
			assert.Equal(t, want, prefix, "leaf %d spells the wrong suffix", cur.suffixIndex)
			return
		}
		for _, child := range cur.children {
			walk(child, prefix)
		}
	}
	walk(st.root, "")
}

func TestInvariantsKnownTexts(t *testing.T) {
	for _, s := range []string{
		"a", "aa", "ab", "aaaa", "banana", "mississippi",
		"abcabxabcd", "abababab", "aabaacaad", "xyzzyx",
	} {
		t.Run(s, func(t *testing.T) {
			st, err := New(s)
			require.NoError(t, err)
			checkInvariants(t, st)
		})
	}
}

func TestInvariantsRandomTexts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune{'A', 'C', 'G', 'T'}

	for i := 0; i < 300; i++ {
		size := 1 + rng.Intn(200)
		symbols := make([]rune, size)
		for j := range symbols {
			symbols[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(symbols)

		st, err := New(s)
		require.NoError(t, err)
		checkInvariants(t, st)
	}
}

func TestSplitEdgeBoundsAreInclusive(t *testing.T) {
	// In abcabxabcd the suffixes abcabxabcd$, abcd$ and abxabcd$ share the
	// prefix "ab", so the root's 'a' child is a split node whose label must
	// cover exactly the two symbols "ab".
	st, err := New("abcabxabcd")
	require.NoError(t, err)

	split, ok := st.root.children['a']
	require.True(t, ok)
	require.False(t, split.isLeaf())
	assert.False(t, split.open)
	assert.Equal(t, 0, split.start)
	assert.Equal(t, 1, split.end)
	assert.Equal(t, 2, split.edgeLength(st.end))
	assert.Equal(t, "ab", st.txt.Label(split.start, split.end))
}

func TestRootHasNoSuffixLink(t *testing.T) {
	st, err := New("banana")
	require.NoError(t, err)
	assert.Nil(t, st.root.suffixLink)
}

func TestNodeCountMatchesWalk(t *testing.T) {
	st, err := New("mississippi")
	require.NoError(t, err)

	count := 0
	var walk func(cur *node)
	walk = func(cur *node) {
		count++
		for _, child := range cur.children {
			walk(child)
		}
	}
	walk(st.root)

	assert.Equal(t, count, st.NodeCount())
	assert.LessOrEqual(t, st.NodeCount(), 2*st.txt.Len())
}
