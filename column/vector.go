package column

// vectorVector stores each column as a sorted slice. It is the simplest
// backend and the reference for correctness tests.
type vectorVector struct {
	cols [][]int64
}

func newVectorVector(n int64) *vectorVector {
	return &vectorVector{cols: make([][]int64, n)}
}

func (v *vectorVector) Kind() Kind { return VectorVector }

func (v *vectorVector) Resize(n int64) {
	v.cols = resizeCols(v.cols, n)
}

func (v *vectorVector) NumColumns() int64 { return int64(len(v.cols)) }

func (v *vectorVector) GetColumn(i int64) []int64 {
	out := make([]int64, len(v.cols[i]))
	copy(out, v.cols[i])
	return out
}

func (v *vectorVector) SetColumn(i int64, col []int64) {
	v.cols[i] = append(v.cols[i][:0], col...)
}

func (v *vectorVector) IsEmpty(i int64) bool { return len(v.cols[i]) == 0 }

func (v *vectorVector) MaxIndex(i int64) int64 {
	col := v.cols[i]
	if len(col) == 0 {
		return -1
	}
	return col[len(col)-1]
}

func (v *vectorVector) AddTo(source, target int64) {
	buf := scratchPool.Get().(*[]int64)
	*buf = xorMerge(*buf, v.cols[target], v.cols[source])
	v.cols[target], *buf = *buf, v.cols[target][:0]
	scratchPool.Put(buf)
}

func (v *vectorVector) RemoveMax(i int64) {
	if n := len(v.cols[i]); n > 0 {
		v.cols[i] = v.cols[i][:n-1]
	}
}

func (v *vectorVector) Clear(i int64) { v.cols[i] = v.cols[i][:0] }

func (v *vectorVector) Finalize(int64) {}

func (v *vectorVector) NumEntries() int64 {
	var total int64
	for _, col := range v.cols {
		total += int64(len(col))
	}
	return total
}

// resizeCols grows or shrinks a column table, keeping existing columns.
func resizeCols(cols [][]int64, n int64) [][]int64 {
	switch {
	case int64(len(cols)) == n:
		return cols
	case int64(len(cols)) > n:
		return cols[:n]
	default:
		out := make([][]int64, n)
		copy(out, cols)
		return out
	}
}
