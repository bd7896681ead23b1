package column

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// fullAccel keeps the working column as a dense bitset sized to the matrix
// height. Memory is O(n) regardless of sparsity, but toggles are O(1) and
// pivot queries cost a backward word scan from a cached upper bound.
type fullAccel struct {
	b *bitset.BitSet
	n int64 // entries currently set
	// hint is an upper bound on the maximum set bit.
	hint int64
}

func (a *fullAccel) reset(height int64) {
	if a.b == nil || int64(a.b.Len()) < height {
		a.b = bitset.New(uint(height))
	}
	a.hint = -1
}

func (a *fullAccel) xor(col []int64) {
	for _, x := range col {
		if a.b.Test(uint(x)) {
			a.b.Clear(uint(x))
			a.n--
		} else {
			a.b.Set(uint(x))
			a.n++
			if x > a.hint {
				a.hint = x
			}
		}
	}
}

func (a *fullAccel) max() int64 {
	if a.n == 0 {
		return -1
	}
	words := a.b.Bytes()
	w := int(a.hint >> 6)
	if w >= len(words) {
		w = len(words) - 1
	}
	// Mask off bits above the hint in its word.
	if word := words[w] & (^uint64(0) >> (63 - uint(a.hint)&63)); word != 0 {
		a.hint = int64(w)<<6 | int64(bits.Len64(word)-1)
		return a.hint
	}
	for w--; w >= 0; w-- {
		if words[w] != 0 {
			a.hint = int64(w)<<6 | int64(bits.Len64(words[w])-1)
			return a.hint
		}
	}
	return -1
}

func (a *fullAccel) removeMax() {
	if m := a.max(); m >= 0 {
		a.b.Clear(uint(m))
		a.n--
	}
}

func (a *fullAccel) isEmpty() bool { return a.n == 0 }

func (a *fullAccel) count() int64 { return a.n }

func (a *fullAccel) drain(dst []int64) []int64 {
	if a.n == 0 {
		return dst
	}
	words := a.b.Bytes()
	top := int(a.max() >> 6)
	for w := 0; w <= top; w++ {
		word := words[w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			dst = append(dst, int64(w)<<6|int64(b))
			word &= word - 1
		}
	}
	a.b.ClearAll()
	a.n = 0
	a.hint = -1
	return dst
}

func (a *fullAccel) clearAll() {
	if a.n > 0 {
		a.b.ClearAll()
	}
	a.n = 0
	a.hint = -1
}
