package effects

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
	"github.com/jsamuelsen11/go-storefront-state/mocks"
)

type harness struct {
	store        *store.Store
	carts        *mocks.MockCartAdapter
	entries      *mocks.MockCartEntryAdapter
	vouchers     *mocks.MockCartVoucherAdapter
	email        *mocks.MockCartEmailAdapter
	templates    *mocks.MockConsentTemplatesAdapter
	userConsents *mocks.MockUserConsentAdapter

	mu     sync.Mutex
	events []store.Event
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newHarness wires the default effects to a store holding initial. The store
// loop is not started; call start.
func newHarness(t *testing.T, initial store.State, required ...string) *harness {
	t.Helper()

	h := &harness{
		store:        store.New(store.WithInitialState(initial), store.WithLogger(discardLogger())),
		carts:        mocks.NewMockCartAdapter(t),
		entries:      mocks.NewMockCartEntryAdapter(t),
		vouchers:     mocks.NewMockCartVoucherAdapter(t),
		email:        mocks.NewMockCartEmailAdapter(t),
		templates:    mocks.NewMockConsentTemplatesAdapter(t),
		userConsents: mocks.NewMockUserConsentAdapter(t),
	}

	deps := Deps{
		Store:            h.store,
		Carts:            h.carts,
		Entries:          h.entries,
		Vouchers:         h.vouchers,
		Email:            h.email,
		Templates:        h.templates,
		UserConsents:     h.userConsents,
		RequiredConsents: required,
		Logger:           discardLogger(),
	}
	NewPipeline(h.store, Default(deps), WithLogger(discardLogger())).Attach()
	h.store.Subscribe(h.record)

	return h
}

func (h *harness) record(_ context.Context, ev store.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

// start runs the store loop until the test ends.
func (h *harness) start(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = h.store.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func (h *harness) idle(t *testing.T) store.State {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.store.WaitIdle(ctx))
	return h.store.State()
}

func (h *harness) waitFor(t *testing.T, pred func(store.State) bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := h.store.WaitFor(ctx, pred)
	require.NoError(t, err)
}

// actions returns the reduced actions of type T in order.
func actionsOf[T store.Action](h *harness) []T {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []T
	for _, ev := range h.events {
		if a, ok := ev.Action.(T); ok {
			out = append(out, a)
		}
	}
	return out
}

// eventsOf returns the events whose action has type T.
func eventsOf[T store.Action](h *harness) []store.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []store.Event
	for _, ev := range h.events {
		if _, ok := ev.Action.(T); ok {
			out = append(out, ev)
		}
	}
	return out
}
