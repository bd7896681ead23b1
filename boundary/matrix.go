package boundary

import (
	"errors"
	"fmt"

	"github.com/hupe1980/topogo/column"
)

// ErrAlreadyReduced is returned when a reduction is started on a matrix
// that has already been consumed by a reduction run. Reload the matrix
// (Load, SetDims + SetColumn, or a file load) before reducing again.
var ErrAlreadyReduced = errors.New("boundary: matrix already reduced, reload before reducing again")

// SizeMismatchError reports a bulk load whose column and dimension counts
// disagree.
type SizeMismatchError struct {
	Cols int
	Dims int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("boundary: size mismatch: %d columns, %d dimensions", e.Cols, e.Dims)
}

// State tags the lifecycle of a matrix.
type State int

const (
	// StateLoaded marks a matrix that may be reduced.
	StateLoaded State = iota
	// StateReduced marks a matrix consumed by a reduction run.
	StateReduced
)

// Matrix is a boundary matrix: per-column dimensions plus a column store.
type Matrix struct {
	store column.Store
	dims  []int64
	state State
}

// New creates an empty matrix with the given column backend.
func New(kind column.Kind) *Matrix {
	return &Matrix{store: column.New(kind, 0)}
}

// Kind returns the column backend of this matrix.
func (m *Matrix) Kind() column.Kind { return m.store.Kind() }

// State returns the lifecycle state.
func (m *Matrix) State() State { return m.state }

// BeginReduction marks the matrix as consumed by a reduction run.
// It fails with ErrAlreadyReduced if the matrix was already reduced.
func (m *Matrix) BeginReduction() error {
	if m.state == StateReduced {
		return ErrAlreadyReduced
	}
	m.state = StateReduced
	return nil
}

// Load replaces the matrix content from parallel column and dimension
// slices. Columns must be sorted ascending without duplicates, and every
// entry of column j must be smaller than j.
func (m *Matrix) Load(cols [][]int64, dims []int64) error {
	if len(cols) != len(dims) {
		return &SizeMismatchError{Cols: len(cols), Dims: len(dims)}
	}
	m.store.Resize(int64(len(cols)))
	m.dims = append(m.dims[:0], dims...)
	for i, col := range cols {
		m.store.SetColumn(int64(i), col)
	}
	m.state = StateLoaded
	return nil
}

// Columns extracts all columns (ascending, duplicate-free).
func (m *Matrix) Columns() [][]int64 {
	out := make([][]int64, m.NumColumns())
	for i := range out {
		out[i] = m.store.GetColumn(int64(i))
	}
	return out
}

// Dims returns a copy of the dimension list.
func (m *Matrix) Dims() []int64 {
	out := make([]int64, len(m.dims))
	copy(out, m.dims)
	return out
}

// NumColumns returns the number of columns.
func (m *Matrix) NumColumns() int64 { return int64(len(m.dims)) }

// GetDim returns the cell dimension of column i.
func (m *Matrix) GetDim(i int64) int64 { return m.dims[i] }

// SetDim sets the cell dimension of column i.
func (m *Matrix) SetDim(i, dim int64) { m.dims[i] = dim }

// SetDims replaces the dimension list and resizes the matrix to match.
func (m *Matrix) SetDims(dims []int64) {
	m.dims = append(m.dims[:0], dims...)
	m.store.Resize(int64(len(dims)))
	m.state = StateLoaded
}

// MaxDim returns the largest cell dimension, or -1 for an empty matrix.
func (m *Matrix) MaxDim() int64 {
	max := int64(-1)
	for _, d := range m.dims {
		if d > max {
			max = d
		}
	}
	return max
}

// GetColumn returns column i, ascending and duplicate-free.
func (m *Matrix) GetColumn(i int64) []int64 { return m.store.GetColumn(i) }

// SetColumn replaces column i. col must be sorted ascending without
// duplicates.
func (m *Matrix) SetColumn(i int64, col []int64) {
	m.store.SetColumn(i, col)
	m.state = StateLoaded
}

// IsEmptyColumn reports whether column i has no entries.
func (m *Matrix) IsEmptyColumn(i int64) bool { return m.store.IsEmpty(i) }

// MaxIndex returns the pivot of column i, or -1 when empty.
func (m *Matrix) MaxIndex(i int64) int64 { return m.store.MaxIndex(i) }

// AddTo adds column source into column target over GF(2).
func (m *Matrix) AddTo(source, target int64) { m.store.AddTo(source, target) }

// RemoveMax drops the pivot entry of column i.
func (m *Matrix) RemoveMax(i int64) { m.store.RemoveMax(i) }

// ClearColumn empties column i.
func (m *Matrix) ClearColumn(i int64) { m.store.Clear(i) }

// FinalizeColumn tells the backend that column i is fully reduced.
func (m *Matrix) FinalizeColumn(i int64) { m.store.Finalize(i) }

// IsEmpty reports whether the matrix has no nonzero entries.
func (m *Matrix) IsEmpty() bool { return m.store.NumEntries() == 0 }

// NumEntries returns the total number of nonzero entries.
func (m *Matrix) NumEntries() int64 { return m.store.NumEntries() }

// Equal reports representation-independent equality: same column count,
// set-equal columns and equal dimensions.
func (m *Matrix) Equal(other *Matrix) bool {
	n := m.NumColumns()
	if n != other.NumColumns() {
		return false
	}
	for i := int64(0); i < n; i++ {
		if m.dims[i] != other.dims[i] {
			return false
		}
		a := m.store.GetColumn(i)
		b := other.store.GetColumn(i)
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// Convert copies the matrix into a fresh one with a different column
// backend. Dimensions, columns and lifecycle state carry over.
func (m *Matrix) Convert(kind column.Kind) *Matrix {
	n := m.NumColumns()
	out := &Matrix{
		store: column.New(kind, n),
		dims:  m.Dims(),
		state: m.state,
	}
	for i := int64(0); i < n; i++ {
		out.store.SetColumn(i, m.store.GetColumn(i))
	}
	return out
}
