package reduction

import (
	"context"

	"github.com/hupe1980/topogo/boundary"
)

// rowReduction works rows from bottom to top. All columns whose pivot
// lies in the current row are resolved at once: the leftmost one keeps
// the pivot and is added into the others, which drop to a smaller pivot
// row and are re-bucketed there.
type rowReduction struct {
	opts Options
}

func (r *rowReduction) Kind() Kind { return Row }

func (r *rowReduction) Reduce(ctx context.Context, m *boundary.Matrix) error {
	if err := m.BeginReduction(); err != nil {
		return err
	}

	n := m.NumColumns()

	logger := r.opts.logger()
	logger.Debug("starting row reduction", "columns", n)

	// Bucket every nonzero column under its pivot row.
	buckets := make([][]int64, n)
	for j := int64(0); j < n; j++ {
		if lowest := m.MaxIndex(j); lowest >= 0 {
			buckets[lowest] = append(buckets[lowest], j)
		}
	}

	for row := n - 1; row >= 0; row-- {
		if row%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		cols := buckets[row]
		if len(cols) == 0 {
			continue
		}

		source := cols[0]
		for _, c := range cols[1:] {
			if c < source {
				source = c
			}
		}

		for _, target := range cols {
			if target == source {
				continue
			}
			m.AddTo(source, target)
			m.FinalizeColumn(target)
			if lowest := m.MaxIndex(target); lowest >= 0 {
				buckets[lowest] = append(buckets[lowest], target)
			}
		}
		buckets[row] = nil
	}

	return nil
}
