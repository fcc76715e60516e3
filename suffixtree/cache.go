package suffixtree

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedSearcher memoizes Search results in a bounded LRU cache. The tree
// is immutable after construction, so cached entries never go stale; the
// cache only bounds memory when the query mix is wide.
//
// A CachedSearcher is safe for concurrent use.
type CachedSearcher struct {
	tree  *SuffixTree
	cache *lru.Cache[string, []int]
}

// NewCachedSearcher wraps t with an LRU cache holding up to size patterns.
// Returns an error for a non-positive size.
func NewCachedSearcher(t *SuffixTree, size int) (*CachedSearcher, error) {
	cache, err := lru.New[string, []int](size)
	if err != nil {
		return nil, err
	}
	return &CachedSearcher{tree: t, cache: cache}, nil
}

// Search behaves exactly like SuffixTree.Search, serving repeated patterns
// from the cache. The returned slice is the caller's to keep.
//
// Complexity: O(m) on a hit, O(m + k log k) on a miss.
func (cs *CachedSearcher) Search(pattern string) ([]int, error) {
	if positions, ok := cs.cache.Get(pattern); ok {
		return clonePositions(positions), nil
	}

	positions, err := cs.tree.Search(pattern)
	if err != nil {
		return nil, err
	}
	cs.cache.Add(pattern, positions)
	return clonePositions(positions), nil
}

// Len returns the number of patterns currently cached.
func (cs *CachedSearcher) Len() int {
	return cs.cache.Len()
}

// Purge drops every cached pattern.
func (cs *CachedSearcher) Purge() {
	cs.cache.Purge()
}

// clonePositions copies a cached result so callers cannot mutate the
// cached slice. A nil result stays nil.
func clonePositions(positions []int) []int {
	if positions == nil {
		return nil
	}
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}
