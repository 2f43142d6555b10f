// Package fanout calls a function for every item of a slice with a cap on
// how many calls are in flight. The readiness probe checks OCC and the
// snapshot medium through it.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Each calls fn for every item, at most limit at a time, and returns the
// errors in input order. An item still waiting for a slot when ctx ends gets
// ctx.Err() and fn is not called for it. A limit below 1 means no cap.
func Each[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) []error {
	errs := make([]error, len(items))
	if len(items) == 0 {
		return errs
	}
	if limit < 1 || limit > len(items) {
		limit = len(items)
	}

	sem := semaphore.NewWeighted(int64(limit))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release(1)
			errs[i] = fn(ctx, item)
		})
	}
	wg.Wait()
	return errs
}
