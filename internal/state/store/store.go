// Package store holds the state tree of one tab, the pure reducers that fold
// actions into it, and the Store container that serializes every state
// transition through a single writer goroutine.
//
// Actions enter a FIFO queue via Dispatch (any goroutine). Run drains the
// queue: each action is reduced, then every listener sees (prev, next,
// action) synchronously on the loop goroutine. Listeners that need I/O start
// a tracked task with Go and dispatch their results back onto the queue, so
// results are applied in arrival order and never concurrently.
//
//	s := store.New(store.WithLogger(logger))
//	go s.Run(ctx)
//	s.Dispatch(store.LoadCart{UserID: "current", CartID: "current"})
//	st, err := s.WaitFor(ctx, func(st store.State) bool { return st.Cart.Active.Success })
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/queue"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/telemetry"
)

// ErrRunning is returned by Run when the loop is already running.
var ErrRunning = errors.New("store: already running")

// Origin says where an action came from.
type Origin int

const (
	// OriginLocal actions were issued in this tab (commands and effect results).
	OriginLocal Origin = iota
	// OriginRemote actions were synthesized from another tab's snapshot write.
	OriginRemote
)

func (o Origin) String() string {
	if o == OriginRemote {
		return "remote"
	}
	return "local"
}

// Event is what listeners observe for every reduced action.
type Event struct {
	Action Action
	Seq    uint64
	Origin Origin
	Prev   State
	Next   State
}

// Listener observes reduced actions on the loop goroutine. It must not block.
type Listener func(ctx context.Context, ev Event)

type envelope struct {
	action Action
	origin Origin
}

type subscriber struct {
	id int
	fn Listener
}

// Store is the state container of one tab.
type Store struct {
	tabID   string
	logger  *slog.Logger
	metrics *telemetry.Metrics
	queue   *queue.Queue[envelope]

	mu        sync.Mutex
	state     State
	seq       uint64
	listeners []subscriber
	nextSub   int
	pending   int           // queued actions + action being reduced + running tasks
	changed   chan struct{} // closed and replaced whenever state or pending changes
	running   bool
	runCtx    context.Context
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithMetrics records action counts. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithInitialState replaces Initial() as the starting state, e.g. after
// rehydrating a persisted snapshot.
func WithInitialState(st State) Option {
	return func(s *Store) { s.state = st }
}

// WithTabID fixes the tab identity. Defaults to a random UUID.
func WithTabID(id string) Option {
	return func(s *Store) { s.tabID = id }
}

// New creates a store holding Initial() state.
func New(opts ...Option) *Store {
	s := &Store{
		tabID:   uuid.NewString(),
		logger:  slog.Default(),
		queue:   queue.New[envelope](),
		state:   Initial(),
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TabID identifies this tab when writing to a shared snapshot medium.
func (s *Store) TabID() string {
	return s.tabID
}

// Dispatch enqueues locally originated actions.
func (s *Store) Dispatch(actions ...Action) {
	s.DispatchAs(OriginLocal, actions...)
}

// DispatchRemote enqueues actions synthesized from another tab's state.
func (s *Store) DispatchRemote(actions ...Action) {
	s.DispatchAs(OriginRemote, actions...)
}

// DispatchAs enqueues actions with an explicit origin. Effects use it so their
// results keep the origin of the action that triggered them.
func (s *Store) DispatchAs(origin Origin, actions ...Action) {
	for _, a := range actions {
		if a == nil {
			continue
		}
		s.addPending(1)
		if !s.queue.Enqueue(envelope{action: a, origin: origin}) {
			s.addPending(-1)
			s.logger.Warn("action dropped, store stopped", slog.String("kind", string(a.Kind())))
		}
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners = append(s.listeners, subscriber{id: id, fn: l})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscriber) bool { return sub.id == id })
		})
	}
}

// Go runs fn as a task tracked by WaitIdle. fn receives the Run context
// (background before Run starts).
func (s *Store) Go(fn func(ctx context.Context)) {
	s.mu.Lock()
	ctx := s.runCtx
	s.pending++
	s.mu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	go func() {
		defer s.addPending(-1)
		defer func() {
			if r := recover(); r != nil {
				s.logger.ErrorContext(ctx, "store task panicked",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		fn(ctx)
	}()
}

// Run is the single writer loop. It returns when ctx is done; actions still
// queued at that point are discarded.
func (s *Store) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.runCtx = ctx
	s.mu.Unlock()

	defer s.queue.Close()

	for {
		if env, ok := s.queue.TryDequeue(); ok {
			s.apply(ctx, env)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, open := <-s.queue.Wait():
			if !open {
				return nil
			}
		}
	}
}

// WaitIdle blocks until no action is queued or being reduced and no task
// started with Go is running.
func (s *Store) WaitIdle(ctx context.Context) error {
	for {
		s.mu.Lock()
		idle := s.pending == 0
		ch := s.changed
		s.mu.Unlock()

		if idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for idle store: %w", ctx.Err())
		case <-ch:
		}
	}
}

// WaitFor blocks until pred holds for the current state and returns that
// state.
func (s *Store) WaitFor(ctx context.Context, pred func(State) bool) (State, error) {
	for {
		st, ch := s.snapshot()
		if pred(st) {
			return st, nil
		}

		select {
		case <-ctx.Done():
			return st, fmt.Errorf("waiting for state: %w", ctx.Err())
		case <-ch:
		}
	}
}

func (s *Store) snapshot() (State, <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.changed
}

func (s *Store) apply(ctx context.Context, env envelope) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	prev := s.state
	next := Reduce(prev, env.action, seq)
	s.state = next
	listeners := slices.Clone(s.listeners)
	s.notifyLocked()
	s.mu.Unlock()

	kind := string(env.action.Kind())
	s.logger.DebugContext(ctx, "action reduced",
		slog.String("kind", kind),
		slog.Uint64("seq", seq),
		slog.String("origin", env.origin.String()),
	)
	if s.metrics != nil {
		s.metrics.StoreActionTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrActionKind.String(kind),
			telemetry.AttrOrigin.String(env.origin.String()),
		))
	}

	ev := Event{Action: env.action, Seq: seq, Origin: env.origin, Prev: prev, Next: next}
	for _, sub := range listeners {
		s.notify(ctx, sub.fn, ev)
	}

	s.addPending(-1)
}

func (s *Store) notify(ctx context.Context, l Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "store listener panicked",
				slog.String("kind", string(ev.Action.Kind())),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	l(ctx, ev)
}

func (s *Store) addPending(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending += delta
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}
