package pairs

import (
	"fmt"
	"sort"
)

// Pair is a single (birth, death) persistence pair with birth < death.
type Pair struct {
	Birth int64
	Death int64
}

// OutOfRangeError reports an index outside a container's bounds, after
// negative-index resolution.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pairs: index %d out of range [0, %d)", e.Index, e.Len)
}

// Pairs is an ordered, possibly-unsorted collection of persistence pairs.
// The zero value is an empty, ready-to-use container.
type Pairs struct {
	data []Pair
}

// New creates an empty container.
func New() *Pairs { return &Pairs{} }

// Len returns the number of pairs.
func (p *Pairs) Len() int { return len(p.data) }

// AppendPair appends a (birth, death) pair.
func (p *Pairs) AppendPair(birth, death int64) {
	p.data = append(p.data, Pair{Birth: birth, Death: death})
}

// SetPair replaces the pair at index, which must be in [0, Len()).
func (p *Pairs) SetPair(index int, birth, death int64) error {
	if index < 0 || index >= len(p.data) {
		return &OutOfRangeError{Index: index, Len: len(p.data)}
	}
	p.data[index] = Pair{Birth: birth, Death: death}
	return nil
}

// resolve maps a possibly-negative index into [0, Len()).
// Negative indices count from the end: -1 is the last pair.
func (p *Pairs) resolve(index int) (int, error) {
	resolved := index
	if resolved < 0 {
		resolved += len(p.data)
	}
	if resolved < 0 || resolved >= len(p.data) {
		return 0, &OutOfRangeError{Index: index, Len: len(p.data)}
	}
	return resolved, nil
}

// Get returns the pair at index; negative indices count from the end.
func (p *Pairs) Get(index int) (Pair, error) {
	resolved, err := p.resolve(index)
	if err != nil {
		return Pair{}, err
	}
	return p.data[resolved], nil
}

// Set replaces the pair at index; negative indices count from the end.
func (p *Pairs) Set(index int, pair Pair) error {
	resolved, err := p.resolve(index)
	if err != nil {
		return err
	}
	p.data[resolved] = pair
	return nil
}

// Clear removes all pairs.
func (p *Pairs) Clear() { p.data = p.data[:0] }

// Sort orders pairs ascending by birth, ties broken by death. Sorting is
// idempotent and does not affect Equal.
func (p *Pairs) Sort() {
	sort.Slice(p.data, func(i, j int) bool {
		if p.data[i].Birth != p.data[j].Birth {
			return p.data[i].Birth < p.data[j].Birth
		}
		return p.data[i].Death < p.data[j].Death
	})
}

// Equal reports set equality: the same pairs regardless of stored order.
func (p *Pairs) Equal(other *Pairs) bool {
	if len(p.data) != len(other.data) {
		return false
	}
	a := p.sorted()
	b := other.sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// All returns a copy of the pairs in stored order.
func (p *Pairs) All() []Pair {
	out := make([]Pair, len(p.data))
	copy(out, p.data)
	return out
}

func (p *Pairs) sorted() []Pair {
	out := p.All()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Birth != out[j].Birth {
			return out[i].Birth < out[j].Birth
		}
		return out[i].Death < out[j].Death
	})
	return out
}
