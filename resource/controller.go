// Package resource provides optional admission control for the engine:
// a bound on concurrently running reduction workers and a byte-rate limit
// for blob storage traffic. A nil Controller imposes no limits.
package resource

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits. Zero values disable the corresponding
// limit.
type Config struct {
	// MaxWorkers is the maximum number of concurrently running reduction
	// workers.
	MaxWorkers int64

	// IOLimitBytesPerSec is the maximum blob storage throughput.
	IOLimitBytesPerSec int64
}

// Controller enforces the configured limits. Safe for concurrent use.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted // nil if unlimited
	ioLimiter *rate.Limiter       // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxWorkers > 0 {
		c.workerSem = semaphore.NewWeighted(cfg.MaxWorkers)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireWorker reserves a worker slot, blocking until one is available
// or ctx is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil || c.workerSem == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil || c.workerSem == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker returns a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil || c.workerSem == nil {
		return
	}
	c.workerSem.Release(1)
}

// AcquireIO waits until the IO limit admits the specified number of bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int64) error {
	if c == nil || c.ioLimiter == nil || bytes <= 0 {
		return nil
	}

	// A single reservation cannot exceed the limiter burst.
	burst := int64(c.ioLimiter.Burst())
	for bytes > 0 {
		chunk := bytes
		if chunk > burst {
			chunk = burst
		}
		if err := c.ioLimiter.WaitN(ctx, int(chunk)); err != nil {
			return err
		}
		bytes -= chunk
	}
	return nil
}
