package topogo

import (
	"context"
	"time"

	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/pairs"
	"github.com/hupe1980/topogo/reduction"
)

// ComputePersistencePairs reduces the matrix in place with the selected
// strategy (Twist by default) and returns the persistence pairs: one
// (birth, death) pair per nonzero reduced column. Essential classes, cells
// whose columns reduce to zero and never appear as a pivot, are not
// reported.
//
// The matrix is consumed: a second call on the same matrix fails until it
// is reloaded.
func ComputePersistencePairs(ctx context.Context, m *boundary.Matrix, optFns ...Option) (*pairs.Pairs, error) {
	o := applyOptions(optFns)

	algo, err := reduction.New(o.reduction, func(ro *reduction.Options) {
		ro.Logger = o.logger.Logger
		ro.NumWorkers = o.numWorkers
		ro.ChunkSize = o.chunkSize
		ro.Controller = o.controller
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	columns := m.NumColumns()

	if err := algo.Reduce(ctx, m); err != nil {
		err = translateError(err)
		o.logger.LogReduce(ctx, algo.Kind().String(), columns, 0, 0, err)
		return nil, err
	}

	p := extractPairs(m)
	o.logger.LogReduce(ctx, algo.Kind().String(), columns, int64(p.Len()), time.Since(start), nil)

	return p, nil
}

// ComputePersistencePairsDualized computes the same pairing through the
// dual matrix, which is often much faster for complexes dominated by
// top-dimensional cells. The matrix is dualized in place before reduction;
// the returned pairs are mapped back to original indices.
func ComputePersistencePairsDualized(ctx context.Context, m *boundary.Matrix, optFns ...Option) (*pairs.Pairs, error) {
	if m.State() == boundary.StateReduced {
		return nil, translateError(boundary.ErrAlreadyReduced)
	}

	n := m.NumColumns()
	m.Dualize()

	p, err := ComputePersistencePairs(ctx, m, optFns...)
	if err != nil {
		return nil, err
	}

	return boundary.DualizePairs(p, n), nil
}

// extractPairs reads the pairing off a reduced matrix.
func extractPairs(m *boundary.Matrix) *pairs.Pairs {
	p := pairs.New()
	for j := int64(0); j < m.NumColumns(); j++ {
		if lowest := m.MaxIndex(j); lowest >= 0 {
			p.AppendPair(lowest, j)
		}
	}
	return p
}
