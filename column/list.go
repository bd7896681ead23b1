package column

import "container/list"

// vectorList stores each column as an ascending linked list. AddTo merges
// in place without reallocating the target's surviving nodes.
type vectorList struct {
	cols []*list.List
}

func newVectorList(n int64) *vectorList {
	v := &vectorList{cols: make([]*list.List, n)}
	for i := range v.cols {
		v.cols[i] = list.New()
	}
	return v
}

func (v *vectorList) Kind() Kind { return VectorList }

func (v *vectorList) Resize(n int64) {
	switch {
	case int64(len(v.cols)) > n:
		v.cols = v.cols[:n]
	case int64(len(v.cols)) < n:
		out := make([]*list.List, n)
		copy(out, v.cols)
		for i := len(v.cols); int64(i) < n; i++ {
			out[i] = list.New()
		}
		v.cols = out
	}
}

func (v *vectorList) NumColumns() int64 { return int64(len(v.cols)) }

func (v *vectorList) GetColumn(i int64) []int64 {
	l := v.cols[i]
	out := make([]int64, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int64))
	}
	return out
}

func (v *vectorList) SetColumn(i int64, col []int64) {
	l := v.cols[i]
	l.Init()
	for _, x := range col {
		l.PushBack(x)
	}
}

func (v *vectorList) IsEmpty(i int64) bool { return v.cols[i].Len() == 0 }

func (v *vectorList) MaxIndex(i int64) int64 {
	l := v.cols[i]
	if l.Len() == 0 {
		return -1
	}
	return l.Back().Value.(int64)
}

func (v *vectorList) AddTo(source, target int64) {
	src := v.cols[source]
	dst := v.cols[target]

	cur := dst.Front()
	for e := src.Front(); e != nil; e = e.Next() {
		x := e.Value.(int64)
		for cur != nil && cur.Value.(int64) < x {
			cur = cur.Next()
		}
		if cur != nil && cur.Value.(int64) == x {
			// Present on both sides: cancels mod 2.
			next := cur.Next()
			dst.Remove(cur)
			cur = next
			continue
		}
		if cur == nil {
			dst.PushBack(x)
		} else {
			dst.InsertBefore(x, cur)
		}
	}
}

func (v *vectorList) RemoveMax(i int64) {
	l := v.cols[i]
	if l.Len() > 0 {
		l.Remove(l.Back())
	}
}

func (v *vectorList) Clear(i int64) { v.cols[i].Init() }

func (v *vectorList) Finalize(int64) {}

func (v *vectorList) NumEntries() int64 {
	var total int64
	for _, l := range v.cols {
		total += int64(l.Len())
	}
	return total
}
