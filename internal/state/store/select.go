package store

import "context"

// Select streams project(state) on the returned channel: the current value
// first, then each value that differs from the last one sent according to
// equal. A slow reader only ever sees the latest value. The channel is closed
// when ctx is done.
func Select[T any](ctx context.Context, s *Store, project func(State) T, equal func(a, b T) bool) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)

		var last T
		sent := false
		for {
			st, changed := s.snapshot()
			v := project(st)
			if !sent || !equal(last, v) {
				last, sent = v, true
				select {
				case <-out:
				default:
				}
				out <- v
			}

			select {
			case <-ctx.Done():
				return
			case <-changed:
			}
		}
	}()

	return out
}

// SelectValue is Select for comparable values.
func SelectValue[T comparable](ctx context.Context, s *Store, project func(State) T) <-chan T {
	return Select(ctx, s, project, func(a, b T) bool { return a == b })
}
