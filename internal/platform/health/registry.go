// Package health collects the readiness checks of a tab: the OCC client's
// breaker and, with the bolt driver, the snapshot file.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/fanout"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
)

const (
	maxConcurrentChecks = 4

	// DefaultCheckTimeout bounds one check. A bolt check waits on the file
	// lock, which another tab may be holding for a write.
	DefaultCheckTimeout = 2 * time.Second
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent use.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Zero disables the bound.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check in parallel and returns the outcomes by name; a
// nil error means healthy. A check that overruns the timeout reports it. If
// two checkers share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := fanout.Each(ctx, maxConcurrentChecks, checkers, r.check)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: no answer within %s: %w", c.Name(), r.timeout, ctx.Err())
	}
}
