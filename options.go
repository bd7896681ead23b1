package topogo

import (
	"log/slog"

	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/reduction"
	"github.com/hupe1980/topogo/resource"
)

type options struct {
	reduction  reduction.Kind
	numWorkers int
	chunkSize  int64
	codec      boundary.Codec
	logger     *Logger
	controller *resource.Controller
}

// Option configures the compute entry points.
type Option func(*options)

// WithReduction selects the reduction strategy. The default is Twist.
func WithReduction(kind reduction.Kind) Option {
	return func(o *options) {
		o.reduction = kind
	}
}

// WithNumWorkers bounds the parallelism of the Chunk and SpectralSequence
// strategies. Zero means runtime.GOMAXPROCS(0). Sequential strategies
// ignore it.
func WithNumWorkers(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithChunkSize sets the number of columns per chunk for the Chunk
// strategy. Zero picks a size based on the worker count.
func WithChunkSize(size int64) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithCodec selects the payload compression for SaveMatrix. The default
// is boundary.CodecNone; loads auto-detect from the file header.
func WithCodec(c boundary.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithResourceController gates reduction workers and storage traffic
// through the given controller. Nil disables admission control.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := topogo.NewJSONLogger(slog.LevelDebug)
//	p, _ := topogo.ComputePersistencePairs(ctx, m, topogo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		reduction: reduction.Twist,
		logger:    NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
