package topogo

import (
	"context"
	"io"

	"github.com/hupe1980/topogo/blobstore"
	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/column"
	"github.com/hupe1980/topogo/pairs"
)

// SaveMatrix streams a boundary matrix into the blob store using the
// binary format. Use WithCodec to compress the payload and
// WithResourceController to throttle the upload.
func SaveMatrix(ctx context.Context, store blobstore.BlobStore, name string, m *boundary.Matrix, optFns ...Option) error {
	o := applyOptions(optFns)
	store = throttled(store, &o)

	w, err := store.Create(ctx, name)
	if err != nil {
		o.logger.LogSave(ctx, name, 0, err)
		return err
	}

	cw := &countingWriter{w: w}
	if err := m.SaveBinary(cw, func(so *boundary.SaveOptions) { so.Codec = o.codec }); err != nil {
		_ = w.Close()
		o.logger.LogSave(ctx, name, 0, err)
		return translateError(err)
	}
	if err := w.Close(); err != nil {
		o.logger.LogSave(ctx, name, 0, err)
		return err
	}

	o.logger.LogSave(ctx, name, cw.n, nil)
	return nil
}

// LoadMatrix reads a boundary matrix from the blob store into the given
// column representation.
func LoadMatrix(ctx context.Context, store blobstore.BlobStore, name string, kind column.Kind, optFns ...Option) (*boundary.Matrix, error) {
	o := applyOptions(optFns)
	store = throttled(store, &o)

	b, err := store.Open(ctx, name)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}
	defer func() { _ = b.Close() }()

	m := boundary.New(kind)
	if err := m.LoadBinary(blobstore.NewReader(b)); err != nil {
		err = translateError(err)
		o.logger.LogLoad(ctx, name, b.Size(), err)
		return nil, err
	}

	o.logger.LogLoad(ctx, name, b.Size(), nil)
	return m, nil
}

// SavePairs writes a persistence diagram into the blob store using the
// binary pair format.
func SavePairs(ctx context.Context, store blobstore.BlobStore, name string, p *pairs.Pairs, optFns ...Option) error {
	o := applyOptions(optFns)
	store = throttled(store, &o)

	w, err := store.Create(ctx, name)
	if err != nil {
		o.logger.LogSave(ctx, name, 0, err)
		return err
	}

	cw := &countingWriter{w: w}
	if err := p.SaveBinary(cw); err != nil {
		_ = w.Close()
		o.logger.LogSave(ctx, name, 0, err)
		return translateError(err)
	}
	if err := w.Close(); err != nil {
		o.logger.LogSave(ctx, name, 0, err)
		return err
	}

	o.logger.LogSave(ctx, name, cw.n, nil)
	return nil
}

// LoadPairs reads a persistence diagram from the blob store.
func LoadPairs(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*pairs.Pairs, error) {
	o := applyOptions(optFns)
	store = throttled(store, &o)

	b, err := store.Open(ctx, name)
	if err != nil {
		o.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}
	defer func() { _ = b.Close() }()

	p := pairs.New()
	if err := p.LoadBinary(blobstore.NewReader(b)); err != nil {
		err = translateError(err)
		o.logger.LogLoad(ctx, name, b.Size(), err)
		return nil, err
	}

	o.logger.LogLoad(ctx, name, b.Size(), nil)
	return p, nil
}

func throttled(store blobstore.BlobStore, o *options) blobstore.BlobStore {
	if o.controller == nil {
		return store
	}
	return blobstore.NewThrottled(store, o.controller)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
