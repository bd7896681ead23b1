package pairs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairs_Basics(t *testing.T) {
	p := New()
	require.Equal(t, 0, p.Len())

	p.AppendPair(1, 3)
	p.AppendPair(2, 4)
	require.Equal(t, 2, p.Len())

	got, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 1, Death: 3}, got)

	require.NoError(t, p.SetPair(1, 5, 6))
	got, err = p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 5, Death: 6}, got)

	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func TestPairs_ZeroValue(t *testing.T) {
	var p Pairs
	assert.Equal(t, 0, p.Len())

	p.AppendPair(0, 1)
	assert.Equal(t, 1, p.Len())
}

func TestPairs_NegativeIndexing(t *testing.T) {
	p := New()
	p.AppendPair(1, 3)
	p.AppendPair(2, 4)
	p.AppendPair(5, 6)

	got, err := p.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 5, Death: 6}, got)

	got, err = p.Get(-3)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 1, Death: 3}, got)

	require.NoError(t, p.Set(-2, Pair{Birth: 7, Death: 8}))
	got, err = p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 7, Death: 8}, got)
}

func TestPairs_OutOfRange(t *testing.T) {
	p := New()
	p.AppendPair(1, 3)

	for _, index := range []int{1, -2, 100, -100} {
		_, err := p.Get(index)
		require.Error(t, err, "Get(%d)", index)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, index, oor.Index)
		assert.Equal(t, 1, oor.Len)
	}

	// SetPair rejects negative indices outright.
	err := p.SetPair(-1, 0, 0)
	require.Error(t, err)

	// Every index is out of range on an empty container.
	p.Clear()
	_, err = p.Get(0)
	require.Error(t, err)
	_, err = p.Get(-1)
	require.Error(t, err)
}

func TestPairs_Sort(t *testing.T) {
	p := New()
	p.AppendPair(5, 6)
	p.AppendPair(1, 3)
	p.AppendPair(1, 2)
	p.AppendPair(2, 4)

	p.Sort()
	want := []Pair{{1, 2}, {1, 3}, {2, 4}, {5, 6}}
	assert.Equal(t, want, p.All())

	// Sorting again changes nothing.
	p.Sort()
	assert.Equal(t, want, p.All())
}

func TestPairs_Equal(t *testing.T) {
	a := New()
	a.AppendPair(1, 3)
	a.AppendPair(2, 4)

	b := New()
	b.AppendPair(2, 4)
	b.AppendPair(1, 3)

	// Same pairs, different stored order.
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.AppendPair(5, 6)
	assert.False(t, a.Equal(b))

	c := New()
	c.AppendPair(1, 3)
	c.AppendPair(2, 5)
	assert.False(t, a.Equal(c))

	// Equal must not reorder the operands.
	assert.Equal(t, []Pair{{2, 4}, {1, 3}, {5, 6}}, b.All())

	assert.True(t, New().Equal(New()))
}

func TestPairs_AllIsCopy(t *testing.T) {
	p := New()
	p.AppendPair(1, 3)

	out := p.All()
	out[0] = Pair{Birth: 9, Death: 10}

	got, err := p.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Pair{Birth: 1, Death: 3}, got)
}

func TestOutOfRangeError_Message(t *testing.T) {
	err := &OutOfRangeError{Index: 5, Len: 3}
	assert.Equal(t, "pairs: index 5 out of range [0, 3)", err.Error())
	assert.False(t, errors.Is(err, ErrMalformedFile))
}
