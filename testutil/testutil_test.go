package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle(t *testing.T) {
	cx := Triangle()

	assert.Equal(t, int64(7), cx.NumCells())
	assert.Equal(t, len(cx.Columns), len(cx.Dims))

	// Faces precede cofaces.
	for j, col := range cx.Columns {
		for _, row := range col {
			assert.Less(t, row, int64(j))
		}
	}
}

func TestRandomRips(t *testing.T) {
	rng := NewRNG(4711)
	cx := RandomRips(rng, 20, 0.5)

	require.Greater(t, cx.NumCells(), int64(20))

	for j, col := range cx.Columns {
		// Boundary size matches the cell dimension.
		switch cx.Dims[j] {
		case 0:
			assert.Empty(t, col)
		case 1:
			assert.Len(t, col, 2)
		case 2:
			assert.Len(t, col, 3)
		}

		// Sorted ascending, all faces strictly earlier, dimensions drop
		// by exactly one across the boundary.
		for i, row := range col {
			require.Less(t, row, int64(j))
			assert.Equal(t, cx.Dims[j]-1, cx.Dims[row])
			if i > 0 {
				assert.Greater(t, row, col[i-1])
			}
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	cx1 := RandomRips(rng, 15, 0.4)

	rng.Reset()
	cx2 := RandomRips(rng, 15, 0.4)

	assert.Equal(t, cx1, cx2)
}
