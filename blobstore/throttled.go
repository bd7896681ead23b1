package blobstore

import (
	"context"

	"github.com/hupe1980/topogo/resource"
)

// Throttled wraps a BlobStore so that all payload traffic passes through
// the byte-rate limit of a resource.Controller. A nil controller makes
// the wrapper transparent.
type Throttled struct {
	inner BlobStore
	rc    *resource.Controller
}

// NewThrottled creates a rate-limited view of the given store.
func NewThrottled(inner BlobStore, rc *resource.Controller) *Throttled {
	return &Throttled{inner: inner, rc: rc}
}

// Open opens a blob for reading. Reads are admitted by buffer size, the
// maximum that a single ReadAt can transfer.
func (t *Throttled) Open(ctx context.Context, name string) (Blob, error) {
	b, err := t.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{inner: b, rc: t.rc}, nil
}

// Create creates a new writable blob with throttled writes.
func (t *Throttled) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := t.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledWritableBlob{ctx: ctx, inner: w, rc: t.rc}, nil
}

// Put writes a blob atomically after the rate limit admits it.
func (t *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := t.rc.AcquireIO(ctx, int64(len(data))); err != nil {
		return err
	}
	return t.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (t *Throttled) Delete(ctx context.Context, name string) error {
	return t.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix.
func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	return t.inner.List(ctx, prefix)
}

type throttledBlob struct {
	inner Blob
	rc    *resource.Controller
}

func (b *throttledBlob) ReadAt(p []byte, off int64) (int, error) {
	if err := b.rc.AcquireIO(context.Background(), int64(len(p))); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(p, off)
}

func (b *throttledBlob) Close() error {
	return b.inner.Close()
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}

type throttledWritableBlob struct {
	ctx   context.Context
	inner WritableBlob
	rc    *resource.Controller
}

func (w *throttledWritableBlob) Write(p []byte) (int, error) {
	if err := w.rc.AcquireIO(w.ctx, int64(len(p))); err != nil {
		return 0, err
	}
	return w.inner.Write(p)
}

func (w *throttledWritableBlob) Sync() error {
	return w.inner.Sync()
}

func (w *throttledWritableBlob) Close() error {
	return w.inner.Close()
}
