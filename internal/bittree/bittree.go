// Package bittree implements a fixed-capacity bit tree: a set of
// non-negative int64 keys with O(log64 n) maximum queries and
// constant-time membership toggles.
//
// The tree is a radix-64 hierarchy of uint64 words. The deepest level
// holds one bit per key; every word in an upper level marks which of
// its 64 child words is nonzero. Finding the maximum walks from the
// root picking the highest set bit per word.
package bittree

import "math/bits"

// Tree is a set of keys in [0, capacity). The zero value is unusable;
// create trees with New.
type Tree struct {
	// levels[0] is the root (a single word covers up to 64 children),
	// levels[len(levels)-1] holds the membership bits.
	levels [][]uint64
	cap    int64
	count  int64
}

// New creates a tree covering keys in [0, capacity).
func New(capacity int64) *Tree {
	t := &Tree{}
	t.Reset(capacity)
	return t
}

// Reset empties the tree and resizes it to cover [0, capacity).
// Existing level storage is reused when large enough.
func (t *Tree) Reset(capacity int64) {
	t.cap = capacity
	t.count = 0

	words := int((capacity + 63) / 64)
	if words == 0 {
		words = 1
	}

	var sizes []int
	for {
		sizes = append(sizes, words)
		if words == 1 {
			break
		}
		words = (words + 63) / 64
	}

	// sizes is leaf-first; levels are stored root-first.
	depth := len(sizes)
	if cap(t.levels) < depth {
		t.levels = make([][]uint64, depth)
	}
	t.levels = t.levels[:depth]
	for i := 0; i < depth; i++ {
		want := sizes[depth-1-i]
		if cap(t.levels[i]) < want {
			t.levels[i] = make([]uint64, want)
		} else {
			t.levels[i] = t.levels[i][:want]
			clear(t.levels[i])
		}
	}
}

// Capacity returns the exclusive upper bound on keys.
func (t *Tree) Capacity() int64 { return t.cap }

// Count returns the number of keys in the set.
func (t *Tree) Count() int64 { return t.count }

// IsEmpty reports whether the set has no keys.
func (t *Tree) IsEmpty() bool { return t.count == 0 }

// Contains reports whether key i is in the set.
func (t *Tree) Contains(i int64) bool {
	leaf := t.levels[len(t.levels)-1]
	return leaf[i>>6]&(1<<(uint(i)&63)) != 0
}

// Toggle flips membership of key i and reports whether i is in the set
// afterwards. This is the GF(2) addition primitive.
func (t *Tree) Toggle(i int64) bool {
	leaf := len(t.levels) - 1
	word := i >> 6
	mask := uint64(1) << (uint(i) & 63)

	prev := t.levels[leaf][word]
	t.levels[leaf][word] = prev ^ mask
	added := prev&mask == 0
	if added {
		t.count++
		if prev == 0 {
			t.propagateUp(leaf, word, true)
		}
	} else {
		t.count--
		if t.levels[leaf][word] == 0 {
			t.propagateUp(leaf, word, false)
		}
	}
	return added
}

// Set inserts key i. Inserting a present key is a no-op.
func (t *Tree) Set(i int64) {
	if !t.Contains(i) {
		t.Toggle(i)
	}
}

// Unset removes key i. Removing an absent key is a no-op.
func (t *Tree) Unset(i int64) {
	if t.Contains(i) {
		t.Toggle(i)
	}
}

// propagateUp maintains the nonzero markers above a leaf word whose
// emptiness just changed.
func (t *Tree) propagateUp(level int, word int64, set bool) {
	for level > 0 {
		parent := level - 1
		pWord := word >> 6
		mask := uint64(1) << (uint(word) & 63)

		prev := t.levels[parent][pWord]
		if set {
			t.levels[parent][pWord] = prev | mask
			if prev != 0 {
				return
			}
		} else {
			t.levels[parent][pWord] = prev &^ mask
			if t.levels[parent][pWord] != 0 {
				return
			}
		}
		level = parent
		word = pWord
	}
}

// Max returns the largest key in the set, or -1 when empty.
func (t *Tree) Max() int64 {
	if t.count == 0 {
		return -1
	}
	idx := int64(0)
	for _, level := range t.levels {
		word := level[idx]
		idx = idx<<6 | int64(bits.Len64(word)-1)
	}
	return idx
}

// PopMax removes and returns the largest key, or -1 when empty.
func (t *Tree) PopMax() int64 {
	m := t.Max()
	if m >= 0 {
		t.Toggle(m)
	}
	return m
}

// AppendAscending appends all keys in ascending order to dst and
// empties the set. Draining costs O(k log n) for k keys.
func (t *Tree) AppendAscending(dst []int64) []int64 {
	start := len(dst)
	for !t.IsEmpty() {
		dst = append(dst, t.PopMax())
	}
	// Popped in descending order; reverse the appended tail.
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}
