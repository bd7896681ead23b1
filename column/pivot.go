package column

import "sync"

// pivotAccel is the working structure behind the pivot backends. At most
// one accelerator is bound to a column at a time; it absorbs
// symmetric-difference additions cheaply and answers pivot queries until
// Finalize materializes it back into sorted-slice storage.
//
// Accelerators returned to the pool are always empty; reset only has to
// (re)size them for the current matrix height.
type pivotAccel interface {
	reset(height int64)
	xor(col []int64)
	max() int64
	removeMax()
	isEmpty() bool
	count() int64
	// drain appends the content ascending to dst and empties the accelerator.
	drain(dst []int64) []int64
	// clearAll empties the accelerator, discarding its content.
	clearAll()
}

// pivotBase implements Store on top of sorted-slice columns plus pooled
// accelerators. The pool makes disjoint-range parallel reduction safe:
// every goroutine binds accelerators only to columns it owns.
type pivotBase struct {
	kind Kind
	cols [][]int64
	open []pivotAccel
	pool *sync.Pool
}

func newPivotBase(kind Kind, n int64, newAccel func() pivotAccel) *pivotBase {
	return &pivotBase{
		kind: kind,
		cols: make([][]int64, n),
		open: make([]pivotAccel, n),
		pool: &sync.Pool{New: func() any { return newAccel() }},
	}
}

func (p *pivotBase) Kind() Kind { return p.kind }

func (p *pivotBase) Resize(n int64) {
	for i := int64(len(p.cols)) - 1; i >= n; i-- {
		p.release(i)
	}
	p.cols = resizeCols(p.cols, n)
	switch {
	case int64(len(p.open)) > n:
		p.open = p.open[:n]
	case int64(len(p.open)) < n:
		open := make([]pivotAccel, n)
		copy(open, p.open)
		p.open = open
	}
}

func (p *pivotBase) NumColumns() int64 { return int64(len(p.cols)) }

// bind loads column i into an accelerator, leaving the slice storage empty.
func (p *pivotBase) bind(i int64) pivotAccel {
	acc := p.open[i]
	if acc == nil {
		acc = p.pool.Get().(pivotAccel)
		acc.reset(int64(len(p.cols)))
		acc.xor(p.cols[i])
		p.cols[i] = p.cols[i][:0]
		p.open[i] = acc
	}
	return acc
}

// release drops column i's accelerator without materializing.
func (p *pivotBase) release(i int64) {
	if acc := p.open[i]; acc != nil {
		acc.clearAll()
		p.open[i] = nil
		p.pool.Put(acc)
	}
}

func (p *pivotBase) Finalize(i int64) {
	if acc := p.open[i]; acc != nil {
		p.cols[i] = acc.drain(p.cols[i][:0])
		p.open[i] = nil
		p.pool.Put(acc)
	}
}

func (p *pivotBase) GetColumn(i int64) []int64 {
	p.Finalize(i)
	out := make([]int64, len(p.cols[i]))
	copy(out, p.cols[i])
	return out
}

func (p *pivotBase) SetColumn(i int64, col []int64) {
	p.release(i)
	p.cols[i] = append(p.cols[i][:0], col...)
}

func (p *pivotBase) IsEmpty(i int64) bool {
	if acc := p.open[i]; acc != nil {
		return acc.isEmpty()
	}
	return len(p.cols[i]) == 0
}

func (p *pivotBase) MaxIndex(i int64) int64 {
	if acc := p.open[i]; acc != nil {
		return acc.max()
	}
	col := p.cols[i]
	if len(col) == 0 {
		return -1
	}
	return col[len(col)-1]
}

func (p *pivotBase) AddTo(source, target int64) {
	// Sources act as pivots for many targets; they must be in slice form.
	p.Finalize(source)
	p.bind(target).xor(p.cols[source])
}

func (p *pivotBase) RemoveMax(i int64) {
	if acc := p.open[i]; acc != nil {
		acc.removeMax()
		return
	}
	if n := len(p.cols[i]); n > 0 {
		p.cols[i] = p.cols[i][:n-1]
	}
}

func (p *pivotBase) Clear(i int64) {
	p.release(i)
	p.cols[i] = p.cols[i][:0]
}

func (p *pivotBase) NumEntries() int64 {
	var total int64
	for i := range p.cols {
		if acc := p.open[i]; acc != nil {
			total += acc.count()
		} else {
			total += int64(len(p.cols[i]))
		}
	}
	return total
}

func newSparsePivot(n int64) Store {
	return newPivotBase(SparsePivot, n, func() pivotAccel { return &sparseAccel{} })
}

func newHeapPivot(n int64) Store {
	return newPivotBase(HeapPivot, n, func() pivotAccel { return &heapAccel{} })
}

func newFullPivot(n int64) Store {
	return newPivotBase(FullPivot, n, func() pivotAccel { return &fullAccel{} })
}

func newBitTreePivot(n int64) Store {
	return newPivotBase(BitTreePivot, n, func() pivotAccel { return &bitTreeAccel{} })
}
