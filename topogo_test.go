package topogo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/column"
	"github.com/hupe1980/topogo/pairs"
	"github.com/hupe1980/topogo/reduction"
	"github.com/hupe1980/topogo/resource"
	"github.com/hupe1980/topogo/testutil"
)

func triangleMatrix(t *testing.T, kind column.Kind) *boundary.Matrix {
	t.Helper()

	cx := testutil.Triangle()
	m := boundary.New(kind)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))
	return m
}

func TestComputePersistencePairs_Triangle(t *testing.T) {
	want := pairs.New()
	want.AppendPair(1, 3) // vertex 1 dies with edge 01
	want.AppendPair(2, 4) // vertex 2 dies with edge 12
	want.AppendPair(5, 6) // the cycle dies with the 2-cell

	for _, ck := range column.Kinds() {
		t.Run(ck.String(), func(t *testing.T) {
			m := triangleMatrix(t, ck)

			p, err := ComputePersistencePairs(context.Background(), m)
			require.NoError(t, err)

			assert.True(t, want.Equal(p))
			assert.Equal(t, boundary.StateReduced, m.State())
		})
	}
}

func TestComputePersistencePairs_Strategies(t *testing.T) {
	rng := testutil.NewRNG(4711)
	cx := testutil.RandomRips(rng, 30, 0.5)

	load := func() *boundary.Matrix {
		m := boundary.New(column.VectorVector)
		require.NoError(t, m.Load(cx.Columns, cx.Dims))
		return m
	}

	want, err := ComputePersistencePairs(context.Background(), load(), WithReduction(reduction.Standard))
	require.NoError(t, err)
	require.Positive(t, want.Len())

	for _, rk := range reduction.Kinds() {
		t.Run(rk.String(), func(t *testing.T) {
			p, err := ComputePersistencePairs(context.Background(), load(),
				WithReduction(rk),
				WithNumWorkers(4),
			)
			require.NoError(t, err)
			assert.True(t, want.Equal(p))
		})

		t.Run(fmt.Sprintf("%s dualized", rk), func(t *testing.T) {
			p, err := ComputePersistencePairsDualized(context.Background(), load(),
				WithReduction(rk),
				WithNumWorkers(4),
			)
			require.NoError(t, err)
			assert.True(t, want.Equal(p))
		})
	}
}

func TestComputePersistencePairs_WithResourceController(t *testing.T) {
	rng := testutil.NewRNG(42)
	cx := testutil.RandomRips(rng, 25, 0.5)

	m := boundary.New(column.SparsePivot)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))

	rc := resource.NewController(resource.Config{MaxWorkers: 2})

	p, err := ComputePersistencePairs(context.Background(), m,
		WithReduction(reduction.Chunk),
		WithNumWorkers(4),
		WithChunkSize(32),
		WithResourceController(rc),
	)
	require.NoError(t, err)
	assert.Positive(t, p.Len())
}

func TestComputePersistencePairs_AlreadyReduced(t *testing.T) {
	m := triangleMatrix(t, column.VectorVector)

	_, err := ComputePersistencePairs(context.Background(), m)
	require.NoError(t, err)

	_, err = ComputePersistencePairs(context.Background(), m)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, err, boundary.ErrAlreadyReduced)

	_, err = ComputePersistencePairsDualized(context.Background(), m)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestComputePersistencePairs_PairProperties(t *testing.T) {
	rng := testutil.NewRNG(7)
	cx := testutil.RandomRips(rng, 25, 0.6)

	m := boundary.New(column.BitTreePivot)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))

	p, err := ComputePersistencePairs(context.Background(), m)
	require.NoError(t, err)

	for _, pair := range p.All() {
		// Birth strictly precedes death and dimensions differ by one.
		assert.Less(t, pair.Birth, pair.Death)
		assert.Equal(t, cx.Dims[pair.Birth]+1, cx.Dims[pair.Death])
	}
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	err := translateError(&boundary.SizeMismatchError{Cols: 3, Dims: 2})
	var sm *ErrSizeMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 3, sm.Cols)
	assert.Equal(t, 2, sm.Dims)

	err = translateError(&pairs.OutOfRangeError{Index: -5, Len: 2})
	var oor *ErrOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, -5, oor.Index)
}
