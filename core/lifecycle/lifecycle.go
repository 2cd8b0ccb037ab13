package lifecycle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// CleanupFunc is a teardown action registered with the coordinator.
type CleanupFunc func(ctx context.Context) error

// Coordinator tracks the in-flight request count and the shutdown flag
// shared across all concurrently executing requests, and holds the
// ordered cleanup actions run once at teardown.
//
// The counter and flag use atomic updates; everything else is guarded
// by a mutex. The flag is advisory: the coordinator never refuses work
// itself, it only exposes the signal so a supervisor can stop accepting
// connections and wait for the counter to drain.
type Coordinator struct {
	inflight atomic.Int64
	down     atomic.Bool

	mu       sync.Mutex
	cleanups []CleanupFunc
	once     sync.Once
}

// New creates a coordinator with no registered cleanups.
func New() *Coordinator {
	return &Coordinator{}
}

// Begin marks one request as executing. Pair with a deferred End so
// the decrement survives panics and early returns.
func (c *Coordinator) Begin() {
	c.inflight.Add(1)
}

// End marks one request as finished.
func (c *Coordinator) End() {
	c.inflight.Add(-1)
}

// InFlight returns the number of requests currently executing.
func (c *Coordinator) InFlight() int64 {
	return c.inflight.Load()
}

// SignalShutdown raises the shutdown flag. Idempotent.
func (c *Coordinator) SignalShutdown() {
	c.down.Store(true)
}

// ShuttingDown reports whether shutdown has been signaled.
func (c *Coordinator) ShuttingDown() bool {
	return c.down.Load()
}

// OnCleanup registers a teardown action. Actions run in registration
// order, once, when Cleanup is called.
func (c *Coordinator) OnCleanup(fn CleanupFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, fn)
}

// Drain blocks until the in-flight counter reaches zero or the context
// expires.
func (c *Coordinator) Drain(ctx context.Context) error {
	if c.inflight.Load() == 0 {
		return nil
	}
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.inflight.Load() == 0 {
				return nil
			}
		}
	}
}

// Cleanup runs the registered actions in registration order. Only the
// first call runs them; later calls return nil. All actions run even
// when earlier ones fail; their errors are joined.
func (c *Coordinator) Cleanup(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		cleanups := c.cleanups
		c.mu.Unlock()

		var errs []error
		for _, fn := range cleanups {
			if e := fn(ctx); e != nil {
				errs = append(errs, e)
			}
		}
		err = errors.Join(errs...)
	})
	return err
}
