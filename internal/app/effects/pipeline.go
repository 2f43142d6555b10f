// Package effects turns dispatched actions into backend calls and feeds the
// results back into the store.
//
// A Pipeline is a store listener. For every reduced action it looks up the
// effects registered for the action's kind, applies single-flight and gating
// synchronously on the store loop, and runs each surviving invocation as a
// task tracked by the store. The actions an invocation returns are
// dispatched with the origin of the action that triggered it.
//
//	p := effects.NewPipeline(s, effects.Default(deps), effects.WithLogger(logger))
//	defer p.Attach()()
package effects

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/logging"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/loader"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

const tracerName = "effects"

// Effect reacts to actions of the listed kinds.
type Effect struct {
	Name string
	On   []store.Kind

	// SingleFlight drops a triggering LOAD whose slot was already loading
	// before it was dispatched. The LOAD itself was coalesced by the reducer,
	// so the outstanding invocation answers it.
	SingleFlight bool

	// Gate, when set, must hold for the invocation to run. It sees the state
	// before and after the triggering action.
	Gate func(prev, next store.State) bool

	// Run performs the side effect and returns the actions to dispatch.
	// Completions carry ev.Seq as their flight. Run reports failures as
	// failure actions, never as errors.
	Run func(ctx context.Context, ev store.Event) []store.Action
}

// Pipeline routes store events to effects.
type Pipeline struct {
	store   *store.Store
	byKind  map[store.Kind][]Effect
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithMetrics records effect durations. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// NewPipeline indexes effects by the kinds they react to. Effects for the
// same kind run in registration order.
func NewPipeline(s *store.Store, effects []Effect, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  s,
		byKind: make(map[store.Kind][]Effect),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	for _, e := range effects {
		for _, k := range e.On {
			p.byKind[k] = append(p.byKind[k], e)
		}
	}
	return p
}

// Attach subscribes the pipeline to its store and returns the unsubscribe
// function.
func (p *Pipeline) Attach() func() {
	return p.store.Subscribe(p.handle)
}

func (p *Pipeline) handle(ctx context.Context, ev store.Event) {
	for _, e := range p.byKind[ev.Action.Kind()] {
		if e.SingleFlight && coalesced(ev) {
			p.logger.DebugContext(ctx, "effect skipped, load in flight",
				slog.String("effect", e.Name),
				slog.Uint64("seq", ev.Seq),
			)
			continue
		}
		if e.Gate != nil && !e.Gate(ev.Prev, ev.Next) {
			continue
		}

		p.store.Go(func(ctx context.Context) {
			p.run(ctx, e, ev)
		})
	}
}

// coalesced reports whether ev is a LOAD that found its slot already
// loading.
func coalesced(ev store.Event) bool {
	t, ok := ev.Action.(store.Targeted)
	if !ok {
		return false
	}
	m := t.Target()
	return m.Phase == loader.PhaseLoad && ev.Prev.IsLoading(m)
}

// run executes one invocation. OCC calls it makes carry the tab id and a
// request id of the form "<tab>-<seq>", which ties backend logs to the action
// that caused them.
func (p *Pipeline) run(ctx context.Context, e Effect, ev store.Event) {
	start := time.Now()

	tab := p.store.TabID()
	ctx = httpclient.WithTabID(ctx, tab)
	ctx = httpclient.WithRequestID(ctx, fmt.Sprintf("%s-%d", tab, ev.Seq))
	ctx = logging.WithLogger(ctx, p.logger.With(
		slog.String("effect", e.Name),
		slog.Uint64("seq", ev.Seq),
	))

	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx, "effect "+e.Name,
		trace.WithAttributes(
			telemetry.AttrEffect.String(e.Name),
			telemetry.AttrActionKind.String(string(ev.Action.Kind())),
			attribute.Int64("store.action.seq", int64(ev.Seq)), //nolint:gosec // sequence numbers stay far below MaxInt64
		),
	)
	defer span.End()

	out := e.Run(ctx, ev)

	result := "ok"
	if len(out) == 0 {
		result = "empty"
	}
	span.SetAttributes(attribute.Int("effect.outputs", len(out)))

	if p.metrics != nil {
		p.metrics.EffectDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			telemetry.AttrEffect.String(e.Name),
			telemetry.AttrResult.String(result),
		))
	}

	if ctx.Err() != nil {
		p.logger.DebugContext(ctx, "effect output dropped, store stopping",
			slog.String("effect", e.Name),
			slog.Int("outputs", len(out)),
		)
		return
	}

	p.store.DispatchAs(ev.Origin, out...)
}
