package reduction

import (
	"context"

	"github.com/hupe1980/topogo/boundary"
)

// twistReduction processes dimensions from high to low. Whenever a column
// claims a pivot row, the column at that row index is cleared: it belongs
// to the next lower dimension and is already known to reduce to zero.
type twistReduction struct {
	opts Options
}

func (r *twistReduction) Kind() Kind { return Twist }

func (r *twistReduction) Reduce(ctx context.Context, m *boundary.Matrix) error {
	if err := m.BeginReduction(); err != nil {
		return err
	}

	n := m.NumColumns()
	lookup := newLookup(n)

	logger := r.opts.logger()
	logger.Debug("starting twist reduction", "columns", n, "max_dim", m.MaxDim())

	for dim := m.MaxDim(); dim >= 1; dim-- {
		for j := int64(0); j < n; j++ {
			if j%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if m.GetDim(j) != dim {
				continue
			}

			lowest := m.MaxIndex(j)
			for lowest >= 0 && lookup[lowest] >= 0 {
				m.AddTo(lookup[lowest], j)
				lowest = m.MaxIndex(j)
			}
			if lowest >= 0 {
				lookup[lowest] = j
				m.ClearColumn(lowest)
			}
			m.FinalizeColumn(j)
		}
	}

	return nil
}
