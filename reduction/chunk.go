package reduction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/topogo/boundary"
)

// chunkReduction splits the columns into contiguous ranges and reduces
// each range in parallel against pivots claimed inside the same range.
// Column additions always flow from earlier into later columns, so the
// pairing is unaffected. A sequential standard pass resolves whatever
// crosses chunk boundaries.
type chunkReduction struct {
	opts Options
}

func (r *chunkReduction) Kind() Kind { return Chunk }

// minChunkSize keeps the per-goroutine work large enough to amortize
// scheduling.
const minChunkSize = 256

func (r *chunkReduction) chunkSize(n int64, workers int) int64 {
	if r.opts.ChunkSize > 0 {
		return r.opts.ChunkSize
	}
	// Aim for a few chunks per worker so uneven column costs balance out.
	size := n / int64(4*workers)
	if size < minChunkSize {
		size = minChunkSize
	}
	return size
}

func (r *chunkReduction) Reduce(ctx context.Context, m *boundary.Matrix) error {
	if err := m.BeginReduction(); err != nil {
		return err
	}

	n := m.NumColumns()
	workers := r.opts.workers()
	size := r.chunkSize(n, workers)

	logger := r.opts.logger()
	logger.Debug("starting chunk reduction", "columns", n, "workers", workers, "chunk_size", size)

	// Local phase: each chunk reduces only against its own pivots. The
	// chunks cover disjoint column ranges, which is what makes concurrent
	// column operations on the shared store safe.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := int64(0); lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			if rc := r.opts.Controller; rc != nil {
				if err := rc.AcquireWorker(gctx); err != nil {
					return err
				}
				defer rc.ReleaseWorker()
			}
			r.reduceLocal(m, lo, hi)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Global phase: a standard sweep over the partially reduced matrix.
	// Locally reduced columns hit an unclaimed pivot row immediately.
	lookup := newLookup(n)
	for j := int64(0); j < n; j++ {
		if j%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		lowest := m.MaxIndex(j)
		for lowest >= 0 && lookup[lowest] >= 0 {
			m.AddTo(lookup[lowest], j)
			lowest = m.MaxIndex(j)
		}
		if lowest >= 0 {
			lookup[lowest] = j
		}
		m.FinalizeColumn(j)
	}

	return nil
}

// reduceLocal reduces columns [lo, hi) against pivots claimed by columns
// of the same range.
func (r *chunkReduction) reduceLocal(m *boundary.Matrix, lo, hi int64) {
	local := make(map[int64]int64)
	for j := lo; j < hi; j++ {
		lowest := m.MaxIndex(j)
		for lowest >= 0 {
			owner, ok := local[lowest]
			if !ok {
				break
			}
			m.AddTo(owner, j)
			lowest = m.MaxIndex(j)
		}
		if lowest >= 0 {
			local[lowest] = j
		}
		m.FinalizeColumn(j)
	}
}
