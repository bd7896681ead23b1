package topogo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/blobstore"
	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/column"
	"github.com/hupe1980/topogo/pairs"
	"github.com/hupe1980/topogo/resource"
	"github.com/hupe1980/topogo/testutil"
)

func TestSaveLoadMatrix(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(4711)
	cx := testutil.RandomRips(rng, 20, 0.5)

	m := boundary.New(column.VectorVector)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))

	for _, codec := range []boundary.Codec{boundary.CodecNone, boundary.CodecZstd, boundary.CodecLZ4} {
		t.Run(codec.String(), func(t *testing.T) {
			name := "complex-" + codec.String() + ".bin"
			require.NoError(t, SaveMatrix(ctx, store, name, m, WithCodec(codec)))

			got, err := LoadMatrix(ctx, store, name, column.VectorSet)
			require.NoError(t, err)
			assert.True(t, m.Equal(got))
		})
	}
}

func TestSaveLoadMatrix_Throttled(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	m := boundary.New(column.VectorVector)
	cx := testutil.Triangle()
	require.NoError(t, m.Load(cx.Columns, cx.Dims))

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	require.NoError(t, SaveMatrix(ctx, store, "complex.bin", m, WithResourceController(rc)))

	got, err := LoadMatrix(ctx, store, "complex.bin", column.VectorVector, WithResourceController(rc))
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
}

func TestLoadMatrix_NotFound(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	_, err := LoadMatrix(ctx, store, "missing.bin", column.VectorVector)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestLoadMatrix_Malformed(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "garbage.bin", []byte("not a matrix")))

	_, err := LoadMatrix(ctx, store, "garbage.bin", column.VectorVector)
	assert.ErrorIs(t, err, ErrMalformedFile)
}

func TestSaveLoadPairs(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	p := pairs.New()
	p.AppendPair(1, 3)
	p.AppendPair(2, 4)
	p.AppendPair(5, 6)

	require.NoError(t, SavePairs(ctx, store, "diagram.bin", p))

	got, err := LoadPairs(ctx, store, "diagram.bin")
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

func TestSaveLoadPairs_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	rng := testutil.NewRNG(7)
	cx := testutil.RandomRips(rng, 20, 0.5)

	m := boundary.New(column.VectorVector)
	require.NoError(t, m.Load(cx.Columns, cx.Dims))
	require.NoError(t, SaveMatrix(ctx, store, "complex.bin", m, WithCodec(boundary.CodecZstd)))

	loaded, err := LoadMatrix(ctx, store, "complex.bin", column.BitTreePivot)
	require.NoError(t, err)

	p, err := ComputePersistencePairs(ctx, loaded)
	require.NoError(t, err)
	require.NoError(t, SavePairs(ctx, store, "diagram.bin", p))

	got, err := LoadPairs(ctx, store, "diagram.bin")
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}
