package column

import "github.com/hupe1980/topogo/internal/bittree"

// bitTreeAccel keeps the working column in a radix-64 bit tree: O(1)
// toggles like the dense bitset, but O(log n) pivot queries without a
// backward scan.
type bitTreeAccel struct {
	t *bittree.Tree
}

func (a *bitTreeAccel) reset(height int64) {
	if a.t == nil {
		a.t = bittree.New(height)
		return
	}
	if a.t.Capacity() != height {
		a.t.Reset(height)
	}
}

func (a *bitTreeAccel) xor(col []int64) {
	for _, x := range col {
		a.t.Toggle(x)
	}
}

func (a *bitTreeAccel) max() int64 { return a.t.Max() }

func (a *bitTreeAccel) removeMax() { a.t.PopMax() }

func (a *bitTreeAccel) isEmpty() bool { return a.t.IsEmpty() }

func (a *bitTreeAccel) count() int64 { return a.t.Count() }

func (a *bitTreeAccel) drain(dst []int64) []int64 {
	return a.t.AppendAscending(dst)
}

func (a *bitTreeAccel) clearAll() {
	for !a.t.IsEmpty() {
		a.t.PopMax()
	}
}
