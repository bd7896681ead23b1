// Package column provides the interchangeable column storage backends of a
// boundary matrix.
//
// Every backend implements the same capability set (Store) over GF(2)
// columns: ordered row-index sets supporting symmetric-difference addition,
// pivot (maximum index) queries and pivot removal. Backends differ only in
// their space/time trade-offs:
//
//   - VectorVector: sorted slice per column; the reference backend.
//   - VectorHeap: lazy max-heap per column; defers merging until a pivot
//     query forces it.
//   - VectorSet: compressed bitmap per column (Roaring); native XOR.
//   - VectorList: linked list per column; in-place merges.
//   - SparsePivot, HeapPivot, FullPivot, BitTreePivot: sorted slices plus a
//     working "pivot column" accelerator bound to the column currently being
//     reduced, optimized for repeated add/max/remove cycles.
//
// All backends normalize GetColumn output to ascending, duplicate-free
// slices, so correctness is observationally identical across the eight.
package column
