package reduction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/topogo/boundary"
)

// spectralReduction divides rows and columns into equally sized stripes.
// In pass p, the columns of stripe s are reduced only against pivot rows
// of stripe s-p, so every stripe touches a distinct row window and the
// passes can run the stripes in parallel. Columns whose pivot falls below
// the window are carried into the next pass. Clearing follows the twist
// optimization, so dimensions run from high to low.
type spectralReduction struct {
	opts Options
}

func (r *spectralReduction) Kind() Kind { return SpectralSequence }

func (r *spectralReduction) Reduce(ctx context.Context, m *boundary.Matrix) error {
	if err := m.BeginReduction(); err != nil {
		return err
	}

	n := m.NumColumns()
	numStripes := int64(r.opts.workers())
	if numStripes > n {
		numStripes = n
	}
	if numStripes < 1 {
		numStripes = 1
	}
	stripeSize := n / numStripes
	if n%numStripes != 0 {
		stripeSize++
	}

	logger := r.opts.logger()
	logger.Debug("starting spectral sequence reduction", "columns", n, "stripes", numStripes)

	lookup := newLookup(n)

	unreduced := make([][]int64, numStripes)
	carry := make([][]int64, numStripes)

	for dim := m.MaxDim(); dim >= 1; dim-- {
		for s := int64(0); s < numStripes; s++ {
			unreduced[s] = unreduced[s][:0]
			begin := s * stripeSize
			end := begin + stripeSize
			if end > n {
				end = n
			}
			for j := begin; j < end; j++ {
				if m.GetDim(j) == dim && !m.IsEmptyColumn(j) {
					unreduced[s] = append(unreduced[s], j)
				}
			}
		}

		for pass := int64(0); pass < numStripes; pass++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			g := new(errgroup.Group)
			for s := int64(0); s < numStripes; s++ {
				stripe := s
				g.Go(func() error {
					if rc := r.opts.Controller; rc != nil {
						if err := rc.AcquireWorker(ctx); err != nil {
							return err
						}
						defer rc.ReleaseWorker()
					}
					r.reduceStripe(m, lookup, unreduced, carry, stripe, pass, stripeSize)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for s := int64(0); s < numStripes; s++ {
				unreduced[s], carry[s] = carry[s], unreduced[s][:0]
			}
		}
	}

	return nil
}

// reduceStripe reduces the pending columns of one stripe against the row
// window assigned to it in this pass. The windows of concurrent stripes
// are disjoint, so the shared lookup table sees no write conflicts.
func (r *spectralReduction) reduceStripe(m *boundary.Matrix, lookup []int64, unreduced, carry [][]int64, stripe, pass, stripeSize int64) {
	rowBegin := (stripe - pass) * stripeSize
	rowEnd := rowBegin + stripeSize

	for _, j := range unreduced[stripe] {
		lowest := m.MaxIndex(j)
		for lowest >= rowBegin && lowest < rowEnd && lookup[lowest] >= 0 {
			m.AddTo(lookup[lowest], j)
			lowest = m.MaxIndex(j)
		}
		switch {
		case lowest >= rowBegin && lowest < rowEnd:
			lookup[lowest] = j
			m.ClearColumn(lowest)
			m.FinalizeColumn(j)
		case lowest >= 0:
			carry[stripe] = append(carry[stripe], j)
		}
	}
}
