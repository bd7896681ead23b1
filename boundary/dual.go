package boundary

import "github.com/hupe1980/topogo/pairs"

// Dualize transposes and reverses the matrix in place, so that reducing
// the result computes the same persistence diagram via the dual (cohomology)
// algorithm. Dual column j contains row i exactly when original column
// n-1-i contains row n-1-j; dual dimensions are maxDim minus the original,
// reversed.
//
// Index i in dual space corresponds to n-1-i in the original; use
// DualizePairs to map a result back.
func (m *Matrix) Dualize() {
	n := m.NumColumns()
	if n == 0 {
		return
	}

	dual := make([][]int64, n)

	// Size the dual columns first so the fill pass does not reallocate.
	sizes := make([]int, n)
	for c := int64(0); c < n; c++ {
		for _, r := range m.store.GetColumn(c) {
			sizes[n-1-r]++
		}
	}
	for j := int64(0); j < n; j++ {
		dual[j] = make([]int64, 0, sizes[j])
	}

	// Walking the original columns in descending order appends each dual
	// column's entries in ascending order.
	for c := n - 1; c >= 0; c-- {
		for _, r := range m.store.GetColumn(c) {
			dual[n-1-r] = append(dual[n-1-r], n-1-c)
		}
	}

	maxDim := m.MaxDim()
	dualDims := make([]int64, n)
	for i := int64(0); i < n; i++ {
		dualDims[n-1-i] = maxDim - m.dims[i]
	}

	m.dims = dualDims
	for i := int64(0); i < n; i++ {
		m.store.SetColumn(i, dual[i])
	}
	m.state = StateLoaded
}

// DualizePairs remaps a pair set computed on the dual of an n-column
// matrix back to original indices: (birth, death) -> (n-1-death, n-1-birth).
func DualizePairs(p *pairs.Pairs, n int64) *pairs.Pairs {
	out := pairs.New()
	for _, pair := range p.All() {
		out.AppendPair(n-1-pair.Death, n-1-pair.Birth)
	}
	return out
}
