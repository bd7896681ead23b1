package column

import "container/heap"

// int64MaxHeap is a max-heap of row indices, possibly holding duplicates.
// An index with even multiplicity is absent mod 2.
type int64MaxHeap []int64

func (h int64MaxHeap) Len() int            { return len(h) }
func (h int64MaxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h int64MaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *int64MaxHeap) Push(x any)         { *h = append(*h, x.(int64)) }
func (h *int64MaxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// vectorHeap stores each column as a lazy max-heap. AddTo pushes the source
// entries without merging; duplicate cancellation is deferred until a pivot
// query or materialization forces it. Heaps are pruned back to their
// canonical form once they grow past twice their last pruned size.
type vectorHeap struct {
	cols []heapColumn
}

type heapColumn struct {
	h       int64MaxHeap
	pruneAt int
}

const minPruneSize = 64

func newVectorHeap(n int64) *vectorHeap {
	return &vectorHeap{cols: make([]heapColumn, n)}
}

func (v *vectorHeap) Kind() Kind { return VectorHeap }

func (v *vectorHeap) Resize(n int64) {
	switch {
	case int64(len(v.cols)) > n:
		v.cols = v.cols[:n]
	case int64(len(v.cols)) < n:
		out := make([]heapColumn, n)
		copy(out, v.cols)
		v.cols = out
	}
}

func (v *vectorHeap) NumColumns() int64 { return int64(len(v.cols)) }

func (v *vectorHeap) GetColumn(i int64) []int64 {
	v.prune(i)
	h := v.cols[i].h
	out := make([]int64, len(h))
	// Pruned storage is descending; the contract wants ascending.
	for j, x := range h {
		out[len(h)-1-j] = x
	}
	return out
}

func (v *vectorHeap) SetColumn(i int64, col []int64) {
	c := &v.cols[i]
	c.h = append(c.h[:0], col...)
	// An ascending slice read back-to-front is already heap ordered, but
	// heap.Init keeps us honest about the invariant.
	heap.Init(&c.h)
	c.pruneAt = maxInt(len(col), minPruneSize)
}

func (v *vectorHeap) IsEmpty(i int64) bool { return v.MaxIndex(i) == -1 }

func (v *vectorHeap) MaxIndex(i int64) int64 {
	c := &v.cols[i]
	for c.h.Len() > 0 {
		top := c.h[0]
		heap.Pop(&c.h)
		if c.h.Len() > 0 && c.h[0] == top {
			// Even multiplicity cancels mod 2.
			heap.Pop(&c.h)
			continue
		}
		heap.Push(&c.h, top)
		return top
	}
	return -1
}

func (v *vectorHeap) AddTo(source, target int64) {
	c := &v.cols[target]
	c.h = append(c.h, v.cols[source].h...)
	heap.Init(&c.h)
	if len(c.h) > 2*c.pruneAt {
		v.prune(target)
	}
}

func (v *vectorHeap) RemoveMax(i int64) {
	if v.MaxIndex(i) >= 0 {
		// MaxIndex leaves the pivot with odd multiplicity on top; popping
		// one occurrence flips it to even, i.e. removed mod 2.
		heap.Pop(&v.cols[i].h)
	}
}

func (v *vectorHeap) Clear(i int64) {
	c := &v.cols[i]
	c.h = c.h[:0]
	c.pruneAt = minPruneSize
}

func (v *vectorHeap) Finalize(i int64) { v.prune(i) }

func (v *vectorHeap) NumEntries() int64 {
	var total int64
	for i := range v.cols {
		v.prune(int64(i))
		total += int64(len(v.cols[i].h))
	}
	return total
}

// prune rebuilds column i in canonical form: duplicate-free entries in
// (reverse-sorted) heap order.
func (v *vectorHeap) prune(i int64) {
	c := &v.cols[i]
	buf := scratchPool.Get().(*[]int64)
	scratch := (*buf)[:0]
	for c.h.Len() > 0 {
		top := heap.Pop(&c.h).(int64)
		if c.h.Len() > 0 && c.h[0] == top {
			heap.Pop(&c.h)
			continue
		}
		scratch = append(scratch, top)
	}
	// scratch is descending, which is valid max-heap order as-is.
	c.h = append(c.h[:0], scratch...)
	c.pruneAt = maxInt(len(c.h), minPruneSize)
	*buf = scratch
	scratchPool.Put(buf)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
