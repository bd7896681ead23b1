package column

import (
	"fmt"
	"sync"
)

// Kind identifies a column storage backend.
type Kind int

const (
	// VectorVector stores each column as a sorted slice.
	VectorVector Kind = iota
	// VectorHeap stores each column as a lazy max-heap with duplicate
	// cancellation.
	VectorHeap
	// VectorSet stores each column as a compressed (Roaring) bitmap.
	VectorSet
	// VectorList stores each column as an ascending linked list.
	VectorList
	// SparsePivot is sorted-slice storage with a sorted-slice accelerator.
	SparsePivot
	// HeapPivot is sorted-slice storage with a lazy-heap accelerator.
	HeapPivot
	// FullPivot is sorted-slice storage with a dense bitset accelerator.
	FullPivot
	// BitTreePivot is sorted-slice storage with a bit-tree accelerator.
	BitTreePivot
)

// String returns the backend name.
func (k Kind) String() string {
	switch k {
	case VectorVector:
		return "VectorVector"
	case VectorHeap:
		return "VectorHeap"
	case VectorSet:
		return "VectorSet"
	case VectorList:
		return "VectorList"
	case SparsePivot:
		return "SparsePivot"
	case HeapPivot:
		return "HeapPivot"
	case FullPivot:
		return "FullPivot"
	case BitTreePivot:
		return "BitTreePivot"
	default:
		return "Unknown"
	}
}

// Kinds returns all available backends.
func Kinds() []Kind {
	return []Kind{
		VectorVector, VectorHeap, VectorSet, VectorList,
		SparsePivot, HeapPivot, FullPivot, BitTreePivot,
	}
}

// Store is the capability set every column backend implements. Columns are
// GF(2) row-index sets; addition is symmetric difference.
//
// Column indices run in [0, NumColumns()); row indices share the same space
// (the matrix is square by construction). Implementations are not safe for
// concurrent mutation of the same column, but distinct columns may be
// operated on from distinct goroutines.
type Store interface {
	// Kind identifies the backend.
	Kind() Kind

	// Resize sets the number of columns, preserving existing columns up to n.
	Resize(n int64)

	// NumColumns returns the number of columns.
	NumColumns() int64

	// GetColumn returns the row indices of column i, ascending and
	// duplicate-free. The returned slice is owned by the caller.
	GetColumn(i int64) []int64

	// SetColumn replaces column i. col must be sorted ascending without
	// duplicates.
	SetColumn(i int64, col []int64)

	// IsEmpty reports whether column i has no entries.
	IsEmpty(i int64) bool

	// MaxIndex returns the pivot (largest row index) of column i,
	// or -1 when the column is empty.
	MaxIndex(i int64) int64

	// AddTo adds column source into column target:
	// column[target] <- column[target] XOR column[source].
	AddTo(source, target int64)

	// RemoveMax removes the pivot entry of column i.
	RemoveMax(i int64)

	// Clear empties column i.
	Clear(i int64)

	// Finalize hints that column i will not be an AddTo target again until
	// its next SetColumn. Pivot backends materialize and release their
	// working accelerator here; plain backends ignore it.
	Finalize(i int64)

	// NumEntries returns the total number of nonzero entries.
	NumEntries() int64
}

// New creates a Store of the given kind with n columns.
func New(kind Kind, n int64) Store {
	switch kind {
	case VectorVector:
		return newVectorVector(n)
	case VectorHeap:
		return newVectorHeap(n)
	case VectorSet:
		return newVectorSet(n)
	case VectorList:
		return newVectorList(n)
	case SparsePivot:
		return newSparsePivot(n)
	case HeapPivot:
		return newHeapPivot(n)
	case FullPivot:
		return newFullPivot(n)
	case BitTreePivot:
		return newBitTreePivot(n)
	default:
		panic(fmt.Sprintf("column: unknown kind %d", kind))
	}
}

// scratchPool recycles merge buffers. Pooling instead of per-store scratch
// keeps AddTo safe when the chunk strategy drives disjoint column ranges
// from multiple goroutines.
var scratchPool = sync.Pool{New: func() any { return new([]int64) }}

// xorMerge writes the symmetric difference of the sorted slices a and b
// into dst (reset first) and returns it.
func xorMerge(dst, a, b []int64) []int64 {
	dst = dst[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)
	return dst
}
