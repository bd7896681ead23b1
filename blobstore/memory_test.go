package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("in-memory blob")
	require.NoError(t, store.Put(ctx, "a/one.bin", data))

	blob, err := store.Open(ctx, "a/one.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(data)), blob.Size())

	got, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Streaming create
	w, err := store.Create(ctx, "a/two.bin")
	require.NoError(t, err)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, err := store.List(ctx, "a/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a/one.bin", "a/two.bin"}, names)

	require.NoError(t, store.Delete(ctx, "a/one.bin"))
	_, err = store.Open(ctx, "a/one.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte{1, 2, 3}
	require.NoError(t, store.Put(ctx, "blob", data))

	// Mutating the caller's slice must not affect the stored blob.
	data[0] = 99

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer blob.Close()

	got := make([]byte, 3)
	_, err = blob.ReadAt(got, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
