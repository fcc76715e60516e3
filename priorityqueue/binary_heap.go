/*
Package priorityqueue provides a generic, thread-safe binary heap.

The heap is stored in a slice representing a complete binary tree. By
default the natural ordering of the element type gives a max-heap; a
min-heap over constraints.Ordered types and fully custom comparators are
available through the alternate constructors. The suffix-tree matcher feeds
matched positions through a min-heap to emit them in ascending order.

Key Features:
  - Add: Insert a new element while maintaining the heap property (O(log n)).
  - Peek: Retrieve the highest-priority element without removing it (O(1)).
  - Poll: Remove and return the highest-priority element (O(log n)).
  - Drain: Remove all elements in priority order (O(n log n)).
  - IsEmpty / Size / Clear utilities.

Algorithm Notes:
  - Parent and child relationships:
    parent index = (k-1)/2
    left child = 2*k + 1, right child = 2*k + 2
  - Swim moves a newly added element up until the heap property is restored.
  - removeAt replaces the removed element with the last one and sinks it.

Concurrency:
  - All operations are protected by a read-write mutex.
*/
package priorityqueue

import (
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Peek and Poll on an empty heap.
var ErrEmpty = errors.New("heap empty")

// BinaryHeap is a generic, thread-safe binary heap.
//
// The comparator defines the heap order: it returns true when its first
// argument has higher priority than its second. With a > b the root is the
// maximum, with a < b the minimum.
//
// Fields:
//   - data: slice of elements stored in heap order
//   - cmp: comparator function used to maintain the heap property
//   - mutex: RWMutex to ensure safe concurrent access
type BinaryHeap[T any] struct {
	data  []T
	cmp   func(a, b T) bool
	mutex sync.RWMutex
}

// NewBinaryHeap creates an empty max-heap using the natural ordering of T:
// the largest element is at the root.
//
// Example usage:
//
//	h := priorityqueue.NewBinaryHeap[int]()
//	h.Add(5)
//	h.Add(10)
//	h.Add(3)
//	// Polling repeatedly gives: 10, 5, 3
func NewBinaryHeap[T constraints.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp: func(a, b T) bool {
			return a > b
		},
	}
}

// NewMinBinaryHeap creates an empty min-heap using the natural ordering of
// T: the smallest element is at the root, so repeated Poll calls yield the
// elements in ascending order.
//
// Example usage:
//
//	h := priorityqueue.NewMinBinaryHeap[int]()
//	h.Add(5)
//	h.Add(10)
//	h.Add(3)
//	// Polling repeatedly gives: 3, 5, 10
func NewMinBinaryHeap[T constraints.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp: func(a, b T) bool {
			return a < b
		},
	}
}

// NewBinaryHeapWithComparator creates an empty heap ordered by a custom
// comparator. The comparator must return true when a has higher priority
// than b.
func NewBinaryHeapWithComparator[T any](cmp func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp:  cmp,
	}
}

// IsEmpty reports whether the heap contains any elements.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) IsEmpty() bool {
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	return len(bh.data) == 0
}

// Clear removes all elements from the heap.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Clear() {
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	bh.data = nil
}

// Size returns the number of elements currently stored in the heap.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Size() int {
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	return len(bh.data)
}

// Peek returns the root element without removing it.
//
// Complexity: O(1)
func (bh *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	bh.mutex.RLock()
	defer bh.mutex.RUnlock()
	if len(bh.data) == 0 {
		return zero, ErrEmpty
	}
	return bh.data[0], nil
}

// Poll removes and returns the root element, re-heapifying the remainder.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) Poll() (T, error) {
	var zero T
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	if len(bh.data) == 0 {
		return zero, ErrEmpty
	}
	return bh.removeAt(0), nil
}

// Drain removes every element in priority order and returns them as a
// slice. For a min-heap the result is ascending.
//
// Complexity: O(n log n)
func (bh *BinaryHeap[T]) Drain() []T {
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	out := make([]T, 0, len(bh.data))
	for len(bh.data) > 0 {
		out = append(out, bh.removeAt(0))
	}
	return out
}

// removeAt removes the element at index k and restores the heap property
// by sinking the element swapped into its place. The caller holds the
// write lock and guarantees the heap is non-empty.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) removeAt(k int) T {
	size := len(bh.data)
	removed := bh.data[k]
	bh.data[k] = bh.data[size-1]
	bh.data = bh.data[:size-1]

	parent := k
	child := 2*parent + 1
	for child < len(bh.data) {
		// pick the child with higher priority according to the comparator
		if child+1 < len(bh.data) && bh.cmp(bh.data[child+1], bh.data[child]) {
			child = child + 1
		}
		if bh.cmp(bh.data[child], bh.data[parent]) {
			bh.swap(child, parent)
			parent = child
			child = 2*parent + 1
		} else {
			break
		}
	}

	return removed
}

// Add inserts a new element into the heap and restores the heap property.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) Add(val T) {
	bh.mutex.Lock()
	defer bh.mutex.Unlock()
	bh.data = append(bh.data, val)
	bh.swim(len(bh.data) - 1)
}

// swap exchanges the elements at indexes i and j.
func (bh *BinaryHeap[T]) swap(i, j int) {
	bh.data[i], bh.data[j] = bh.data[j], bh.data[i]
}

// swim moves the element at index k up the heap until the heap property is
// satisfied again.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) swim(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if bh.cmp(bh.data[k], bh.data[parent]) {
			bh.swap(k, parent)
			k = parent
		} else {
			break
		}
	}
}
