package column

import "container/heap"

// heapAccel keeps the working column as a lazy max-heap with duplicates,
// deferring cancellation until a pivot query or materialization.
type heapAccel struct {
	h       int64MaxHeap
	scratch []int64
	pruneAt int
}

func (a *heapAccel) reset(int64) {
	if a.pruneAt < minPruneSize {
		a.pruneAt = minPruneSize
	}
}

func (a *heapAccel) xor(col []int64) {
	a.h = append(a.h, col...)
	heap.Init(&a.h)
	if len(a.h) > 2*a.pruneAt {
		a.prune()
	}
}

func (a *heapAccel) max() int64 {
	for a.h.Len() > 0 {
		top := a.h[0]
		heap.Pop(&a.h)
		if a.h.Len() > 0 && a.h[0] == top {
			heap.Pop(&a.h)
			continue
		}
		heap.Push(&a.h, top)
		return top
	}
	return -1
}

func (a *heapAccel) removeMax() {
	if a.max() >= 0 {
		heap.Pop(&a.h)
	}
}

func (a *heapAccel) isEmpty() bool { return a.max() == -1 }

func (a *heapAccel) count() int64 {
	a.prune()
	return int64(len(a.h))
}

func (a *heapAccel) drain(dst []int64) []int64 {
	a.prune()
	// Pruned storage is descending.
	for i := len(a.h) - 1; i >= 0; i-- {
		dst = append(dst, a.h[i])
	}
	a.h = a.h[:0]
	a.pruneAt = minPruneSize
	return dst
}

func (a *heapAccel) clearAll() {
	a.h = a.h[:0]
	a.pruneAt = minPruneSize
}

func (a *heapAccel) prune() {
	a.scratch = a.scratch[:0]
	for a.h.Len() > 0 {
		top := heap.Pop(&a.h).(int64)
		if a.h.Len() > 0 && a.h[0] == top {
			heap.Pop(&a.h)
			continue
		}
		a.scratch = append(a.scratch, top)
	}
	a.h = append(a.h[:0], a.scratch...)
	a.pruneAt = maxInt(len(a.h), minPruneSize)
}
