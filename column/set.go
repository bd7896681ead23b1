package column

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// vectorSet stores each column as a compressed Roaring bitmap, giving
// ordered-set semantics with a native XOR and cheap maximum queries.
type vectorSet struct {
	cols []*roaring64.Bitmap
}

func newVectorSet(n int64) *vectorSet {
	v := &vectorSet{cols: make([]*roaring64.Bitmap, n)}
	for i := range v.cols {
		v.cols[i] = roaring64.New()
	}
	return v
}

func (v *vectorSet) Kind() Kind { return VectorSet }

func (v *vectorSet) Resize(n int64) {
	switch {
	case int64(len(v.cols)) > n:
		v.cols = v.cols[:n]
	case int64(len(v.cols)) < n:
		out := make([]*roaring64.Bitmap, n)
		copy(out, v.cols)
		for i := len(v.cols); int64(i) < n; i++ {
			out[i] = roaring64.New()
		}
		v.cols = out
	}
}

func (v *vectorSet) NumColumns() int64 { return int64(len(v.cols)) }

func (v *vectorSet) GetColumn(i int64) []int64 {
	raw := v.cols[i].ToArray()
	out := make([]int64, len(raw))
	for j, x := range raw {
		out[j] = int64(x)
	}
	return out
}

func (v *vectorSet) SetColumn(i int64, col []int64) {
	b := v.cols[i]
	b.Clear()
	for _, x := range col {
		b.Add(uint64(x))
	}
}

func (v *vectorSet) IsEmpty(i int64) bool { return v.cols[i].IsEmpty() }

func (v *vectorSet) MaxIndex(i int64) int64 {
	b := v.cols[i]
	if b.IsEmpty() {
		return -1
	}
	return int64(b.Maximum())
}

func (v *vectorSet) AddTo(source, target int64) {
	v.cols[target].Xor(v.cols[source])
}

func (v *vectorSet) RemoveMax(i int64) {
	b := v.cols[i]
	if !b.IsEmpty() {
		b.Remove(b.Maximum())
	}
}

func (v *vectorSet) Clear(i int64) { v.cols[i].Clear() }

func (v *vectorSet) Finalize(int64) {}

func (v *vectorSet) NumEntries() int64 {
	var total int64
	for _, b := range v.cols {
		total += int64(b.GetCardinality())
	}
	return total
}
