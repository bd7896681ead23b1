package reduction

import (
	"context"

	"github.com/hupe1980/topogo/boundary"
)

// standardReduction reduces columns left to right: each column absorbs
// earlier columns until its pivot row is unclaimed.
type standardReduction struct {
	opts Options
}

func (r *standardReduction) Kind() Kind { return Standard }

func (r *standardReduction) Reduce(ctx context.Context, m *boundary.Matrix) error {
	if err := m.BeginReduction(); err != nil {
		return err
	}

	n := m.NumColumns()
	lookup := newLookup(n)

	logger := r.opts.logger()
	logger.Debug("starting standard reduction", "columns", n)

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
