package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topogo/resource"
)

func TestThrottled_PassThrough(t *testing.T) {
	ctx := context.Background()
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	store := NewThrottled(NewMemoryStore(), rc)

	data := []byte("throttled payload")
	require.NoError(t, store.Put(ctx, "blob", data))

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer blob.Close()

	got, err := io.ReadAll(NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	w, err := store.Create(ctx, "blob2")
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"blob", "blob2"}, names)

	require.NoError(t, store.Delete(ctx, "blob2"))
}

func TestThrottled_NilController(t *testing.T) {
	ctx := context.Background()
	store := NewThrottled(NewMemoryStore(), nil)

	require.NoError(t, store.Put(ctx, "blob", []byte("no limit")))

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(8), blob.Size())
}

func TestThrottled_CanceledWrite(t *testing.T) {
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewThrottled(NewMemoryStore(), rc)
	err := store.Put(ctx, "blob", []byte("blocked by the rate limit"))
	assert.ErrorIs(t, err, context.Canceled)
}
