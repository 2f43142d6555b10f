package persist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

// DefaultKey is the medium key the snapshot is stored under.
const DefaultKey = "storefront-local-data"

// Sync writes the persisted features of a store to a medium whenever a local
// action changes them.
type Sync struct {
	medium   ports.SnapshotMedium
	key      string
	features []string
	logger   *slog.Logger

	// last is the encoding of the features as of the latest reduced action.
	// Only touched on the store loop.
	last []byte

	writeMu sync.Mutex
	written uint64 // seq of the newest snapshot written
}

// Option configures a Sync.
type Option func(*Sync)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Sync) { s.key = key }
}

// WithFeatures overrides DefaultFeatures.
func WithFeatures(features ...string) Option {
	return func(s *Sync) { s.features = features }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sync) { s.logger = logger }
}

// NewSync creates a Sync over medium.
func NewSync(medium ports.SnapshotMedium, opts ...Option) *Sync {
	s := &Sync{
		medium:   medium,
		key:      DefaultKey,
		features: DefaultFeatures,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the medium key the snapshot lives under.
func (s *Sync) Key() string {
	return s.key
}

// Restore reads the persisted snapshot and rehydrates it into base. A
// missing snapshot returns base unchanged. A malformed one is logged and
// ignored.
func (s *Sync) Restore(ctx context.Context, base store.State) (store.State, error) {
	data, err := s.medium.Read(ctx, s.key)
	if err != nil {
		return base, fmt.Errorf("reading snapshot %q: %w", s.key, err)
	}
	if data == nil {
		return base, nil
	}

	snap, err := Decode(data)
	if err != nil {
		s.logger.WarnContext(ctx, "ignoring malformed snapshot",
			slog.String("key", s.key),
			slog.Any("error", err),
		)
		return base, nil
	}

	return Rehydrate(base, snap, s.features), nil
}

// Attach subscribes the sync to st and returns the unsubscribe function.
// The state st holds at that point is taken as already persisted. It fails
// when the configured features cannot be encoded.
func (s *Sync) Attach(st *store.Store) (func(), error) {
	last, err := Encode(st.State(), s.features)
	if err != nil {
		return nil, fmt.Errorf("attaching snapshot sync: %w", err)
	}
	s.last = last
	return st.Subscribe(func(ctx context.Context, ev store.Event) {
		s.observe(ctx, st, ev)
	}), nil
}

func (s *Sync) observe(ctx context.Context, st *store.Store, ev store.Event) {
	data, err := Encode(ev.Next, s.features)
	if err != nil {
		s.logger.ErrorContext(ctx, "encoding snapshot",
			slog.String("kind", string(ev.Action.Kind())),
			slog.Any("error", err),
		)
		return
	}
	if bytes.Equal(data, s.last) {
		return
	}
	s.last = data

	// Remote actions mirror what another tab already wrote.
	if ev.Origin == store.OriginRemote {
		return
	}

	seq, origin := ev.Seq, st.TabID()
	st.Go(func(ctx context.Context) {
		s.write(ctx, seq, data, origin)
	})
}

// write stores data unless a newer snapshot was already written.
func (s *Sync) write(ctx context.Context, seq uint64, data []byte, origin string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if seq <= s.written {
		return
	}

	if err := s.medium.Write(ctx, s.key, data, origin); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.ErrorContext(ctx, "writing snapshot",
			slog.String("key", s.key),
			slog.Uint64("seq", seq),
			slog.Any("error", err),
		)
		return
	}
	s.written = seq
}
