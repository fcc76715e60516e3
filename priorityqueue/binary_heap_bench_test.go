package priorityqueue

import (
	"math/rand"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	h := NewMinBinaryHeap[int]()
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Add(rng.Intn(1 << 20))
	}
}

func BenchmarkAddPoll(b *testing.B) {
	h := NewMinBinaryHeap[int]()
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Add(rng.Intn(1 << 20))
		_, _ = h.Poll()
	}
}
