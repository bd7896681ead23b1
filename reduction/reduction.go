package reduction

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/resource"
)

// Kind selects a reduction algorithm.
type Kind int

const (
	// Standard is the textbook left-to-right column reduction.
	Standard Kind = iota
	// Twist processes dimensions top down and clears paired columns early.
	// It is the default used by the engine.
	Twist
	// Chunk runs a parallel local reduction over column ranges before a
	// sequential global pass.
	Chunk
	// Row reduces rows bottom up, adding the leftmost column of each
	// pivot row into the others.
	Row
	// SpectralSequence reduces stripe against stripe in parallel passes.
	SpectralSequence
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Twist:
		return "twist"
	case Chunk:
		return "chunk"
	case Row:
		return "row"
	case SpectralSequence:
		return "spectral_sequence"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Kinds returns all reduction algorithm kinds.
func Kinds() []Kind {
	return []Kind{Standard, Twist, Chunk, Row, SpectralSequence}
}

// Options configures a reduction run.
type Options struct {
	// Logger for reduction progress. Defaults to a discarding logger.
	Logger *slog.Logger

	// NumWorkers bounds the parallelism of Chunk and SpectralSequence.
	// Defaults to runtime.GOMAXPROCS(0). Sequential algorithms ignore it.
	NumWorkers int

	// ChunkSize is the number of columns per chunk for the Chunk
	// algorithm. Zero picks a size based on NumWorkers.
	ChunkSize int64

	// Controller optionally throttles worker goroutines. Nil means no
	// admission control.
	Controller *resource.Controller
}

// DefaultOptions holds the default reduction options.
var DefaultOptions = Options{
	NumWorkers: 0, // resolved to runtime.GOMAXPROCS(0) at run time
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o *Options) workers() int {
	if o.NumWorkers > 0 {
		return o.NumWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// Algorithm reduces a boundary matrix in place.
type Algorithm interface {
	// Kind returns the algorithm identifier.
	Kind() Kind

	// Reduce reduces the matrix until every nonzero column has a unique
	// pivot. The matrix must be freshly loaded; a second run on the same
	// matrix fails with boundary.ErrAlreadyReduced.
	Reduce(ctx context.Context, m *boundary.Matrix) error
}

// New creates the reduction algorithm for the given kind.
func New(kind Kind, optFns ...func(o *Options)) (Algorithm, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	switch kind {
	case Standard:
		return &standardReduction{opts: opts}, nil
	case Twist:
		return &twistReduction{opts: opts}, nil
	case Chunk:
		return &chunkReduction{opts: opts}, nil
	case Row:
		return &rowReduction{opts: opts}, nil
	case SpectralSequence:
		return &spectralReduction{opts: opts}, nil
	default:
		return nil, fmt.Errorf("reduction: unknown kind %d", int(kind))
	}
}

// cancelCheckInterval is the number of columns between context checks in
// the sequential loops.
const cancelCheckInterval = 4096

// newLookup returns a pivot-row-to-column table with every row unclaimed.
func newLookup(n int64) []int64 {
	lookup := make([]int64, n)
	for i := range lookup {
		lookup[i] = -1
	}
	return lookup
}
