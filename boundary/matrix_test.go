package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/column"
	"github.com/hupe1980/topogo/testutil"
)

func triangle(t *testing.T, kind column.Kind) *Matrix {
	t.Helper()

	cx := testutil.Triangle()
	m := New(kind)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))
	return m
}

func TestMatrix_Load(t *testing.T) {
	for _, kind := range column.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m := triangle(t, kind)

			require.Equal(t, kind, m.Kind())
			require.Equal(t, int64(7), m.NumColumns())
			require.Equal(t, StateLoaded, m.State())

			assert.Equal(t, []int64{0, 0, 0, 1, 1, 1, 2}, m.Dims())
			assert.Equal(t, int64(2), m.MaxDim())
			assert.Equal(t, int64(9), m.NumEntries())
			assert.False(t, m.IsEmpty())

			assert.True(t, m.IsEmptyColumn(0))
			assert.Equal(t, int64(-1), m.MaxIndex(0))
			assert.Equal(t, []int64{0, 1}, m.GetColumn(3))
			assert.Equal(t, int64(5), m.MaxIndex(6))
			assert.Equal(t, int64(1), m.GetDim(3))
		})
	}
}

func TestMatrix_Load_SizeMismatch(t *testing.T) {
	m := New(column.VectorVector)
	err := m.Load([][]int64{{}, {}}, []int64{0})
	require.Error(t, err)

	var mismatch *SizeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Cols)
	assert.Equal(t, 1, mismatch.Dims)
}

func TestMatrix_ColumnOps(t *testing.T) {
	for _, kind := range column.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m := triangle(t, kind)

			m.AddTo(3, 4) // {0,1} + {1,2} = {0,2}
			assert.Equal(t, []int64{0, 2}, m.GetColumn(4))

			m.RemoveMax(4)
			assert.Equal(t, []int64{0}, m.GetColumn(4))

			m.ClearColumn(6)
			assert.True(t, m.IsEmptyColumn(6))

			m.FinalizeColumn(4)
			assert.Equal(t, int64(0), m.MaxIndex(4))

			m.SetColumn(6, []int64{3, 4, 5})
			m.SetDim(6, 2)
			assert.Equal(t, []int64{3, 4, 5}, m.GetColumn(6))
		})
	}
}

func TestMatrix_SetDims(t *testing.T) {
	m := New(column.VectorVector)
	require.Equal(t, int64(0), m.NumColumns())
	assert.Equal(t, int64(-1), m.MaxDim())

	m.SetDims([]int64{0, 0, 1})
	require.Equal(t, int64(3), m.NumColumns())
	for i := int64(0); i < 3; i++ {
		assert.True(t, m.IsEmptyColumn(i))
	}

	m.SetColumn(2, []int64{0, 1})
	assert.Equal(t, int64(2), m.NumEntries())
}

func TestMatrix_BeginReduction(t *testing.T) {
	m := triangle(t, column.VectorVector)

	require.NoError(t, m.BeginReduction())
	assert.Equal(t, StateReduced, m.State())

	err := m.BeginReduction()
	require.ErrorIs(t, err, ErrAlreadyReduced)

	// Reloading makes the matrix reducible again.
	cx := testutil.Triangle()
	require.NoError(t, m.Load(cx.Columns, cx.Dims))
	require.NoError(t, m.BeginReduction())
}

func TestMatrix_Equal(t *testing.T) {
	a := triangle(t, column.VectorVector)

	for _, kind := range column.Kinds() {
		b := triangle(t, kind)
		assert.True(t, a.Equal(b), "kind %s", kind)
		assert.True(t, b.Equal(a), "kind %s", kind)
	}

	b := triangle(t, column.VectorSet)
	b.SetColumn(6, []int64{3, 4})
	assert.False(t, a.Equal(b))

	c := triangle(t, column.VectorVector)
	c.SetDim(0, 1)
	assert.False(t, a.Equal(c))

	d := New(column.VectorVector)
	assert.False(t, a.Equal(d))
}

func TestMatrix_Convert(t *testing.T) {
	rng := testutil.NewRNG(7)
	cx := testutil.RandomRips(rng, 20, 0.6)

	src := New(column.VectorVector)
	require.NoError(t, src.Load(cx.Columns, cx.Dims))

	for _, kind := range column.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			got := src.Convert(kind)
			require.Equal(t, kind, got.Kind())
			assert.True(t, src.Equal(got))
			assert.Equal(t, src.State(), got.State())

			// Round trip back to the source backend.
			back := got.Convert(src.Kind())
			assert.True(t, src.Equal(back))

			// The conversion is a copy, not a view.
			got.ClearColumn(got.NumColumns() - 1)
			assert.False(t, src.IsEmptyColumn(src.NumColumns()-1))
		})
	}
}

func TestMatrix_Convert_CarriesState(t *testing.T) {
	m := triangle(t, column.VectorVector)
	require.NoError(t, m.BeginReduction())

	got := m.Convert(column.BitTreePivot)
	require.ErrorIs(t, got.BeginReduction(), ErrAlreadyReduced)
}
