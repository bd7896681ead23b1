package column

// sparseAccel keeps the working column as a sorted slice and merges
// every addition eagerly.
type sparseAccel struct {
	data []int64
	temp []int64
}

func (a *sparseAccel) reset(int64) {}

func (a *sparseAccel) xor(col []int64) {
	a.temp = xorMerge(a.temp, a.data, col)
	a.data, a.temp = a.temp, a.data
}

func (a *sparseAccel) max() int64 {
	if len(a.data) == 0 {
		return -1
	}
	return a.data[len(a.data)-1]
}

func (a *sparseAccel) removeMax() {
	if n := len(a.data); n > 0 {
		a.data = a.data[:n-1]
	}
}

func (a *sparseAccel) isEmpty() bool { return len(a.data) == 0 }

func (a *sparseAccel) count() int64 { return int64(len(a.data)) }

func (a *sparseAccel) drain(dst []int64) []int64 {
	dst = append(dst, a.data...)
	a.data = a.data[:0]
	return dst
}

func (a *sparseAccel) clearAll() { a.data = a.data[:0] }
