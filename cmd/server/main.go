// Package main is the entry point for one storefront tab. It wires all
// dependencies using samber/do v2, restores the persisted snapshot, runs the
// store with its effects and cross-tab channel, serves the tab API, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/clients/occ"
	adapthttp "github.com/jsamuelsen11/go-storefront-state/internal/adapters/http"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/storage/bolt"
	"github.com/jsamuelsen11/go-storefront-state/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/go-storefront-state/internal/app/cartmerge"
	"github.com/jsamuelsen11/go-storefront-state/internal/app/consents"
	"github.com/jsamuelsen11/go-storefront-state/internal/app/crosstab"
	"github.com/jsamuelsen11/go-storefront-state/internal/app/effects"
	"github.com/jsamuelsen11/go-storefront-state/internal/app/session"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/config"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/health"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/logging"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-storefront-state/internal/ports"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/persist"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeDrainTimeout     = 5 * time.Second

	// occService names the OCC client in spans, metrics and health checks.
	occService = "occ"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	st := do.MustInvoke[*store.Store](injector)
	logger = logger.With(slog.String("tab_id", st.TabID()))

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	medium := do.MustInvoke[ports.SnapshotMedium](injector)
	if hc, ok := medium.(ports.HealthChecker); ok {
		registry.Register(hc)
	}

	stopTab, err := startTab(injector, cfg, logger)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(sigCtx, serverShutdownTimeout); err != nil {
		stopTab()
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("shutdown signal received, tab API drained")

	stopTab()

	if c, ok := medium.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Error("snapshot store close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// startTab attaches the store's subscribers, starts its run loop and opens
// the session. The returned function undoes all of it, letting pending
// effects settle first.
func startTab(injector do.Injector, cfg *config.Config, logger *slog.Logger) (func(), error) {
	st := do.MustInvoke[*store.Store](injector)

	detachSync, err := do.MustInvoke[*persist.Sync](injector).Attach(st)
	if err != nil {
		return nil, err
	}
	detach := []func(){
		detachSync,
		do.MustInvoke[*effects.Pipeline](injector).Attach(),
		do.MustInvoke[*cartmerge.Orchestrator](injector).Attach(),
	}

	var channel ports.Subscription
	if cfg.Sync.Enabled {
		sub, err := do.MustInvoke[*crosstab.Channel](injector).Open()
		if err != nil {
			for _, d := range detach {
				d()
			}
			return nil, fmt.Errorf("opening cross-tab channel: %w", err)
		}
		channel = sub
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := st.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("store stopped", slog.Any("error", err))
		}
	}()

	do.MustInvoke[*session.Service](injector).Start("")
	logger.Info("tab started",
		slog.Bool("cross_tab_sync", cfg.Sync.Enabled),
		slog.String("storage", cfg.Storage.Driver),
	)

	return func() {
		if channel != nil {
			_ = channel.Close()
		}

		drainCtx, drainCancel := context.WithTimeout(context.Background(), storeDrainTimeout)
		defer drainCancel()
		if err := st.WaitIdle(drainCtx); err != nil {
			logger.Warn("store did not settle before shutdown", slog.Any("error", err))
		}

		for _, d := range detach {
			d()
		}
		cancel()
		<-done
	}, nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	setup := telemetry.Setup{
		Service:  cfg.Telemetry.ServiceName,
		Instance: cfg.Sync.TabID,
		Exporter: cfg.Telemetry.Exporter,
		Endpoint: cfg.Telemetry.Endpoint,
	}

	tp, err := telemetry.InitTracer(ctx, setup)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, setup)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// openMedium returns the snapshot medium selected by cfg.Driver.
func openMedium(cfg config.StorageConfig, logger *slog.Logger) (ports.SnapshotMedium, error) {
	switch cfg.Driver {
	case "bolt":
		m, err := bolt.Open(cfg.Path,
			bolt.WithOpenTimeout(cfg.OpenTimeout),
			bolt.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot store: %w", err)
		}
		return m, nil
	default:
		return memory.New(), nil
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerBackend(injector, cfg, logger)
	registerState(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

// registerBackend provides the OCC adapters.
func registerBackend(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, occService, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*occ.Requester, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return occ.NewRequester(client, occ.SiteFromConfig(&cfg.Client), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*occ.CartClient, error) {
		return occ.NewCartClient(do.MustInvoke[*occ.Requester](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*occ.EntryClient, error) {
		return occ.NewEntryClient(do.MustInvoke[*occ.Requester](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*occ.VoucherClient, error) {
		return occ.NewVoucherClient(do.MustInvoke[*occ.Requester](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*occ.ConsentClient, error) {
		return occ.NewConsentClient(do.MustInvoke[*occ.Requester](i)), nil
	})
}

// registerState provides the snapshot medium, the store restored from it and
// the store's subscribers.
func registerState(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.SnapshotMedium, error) {
		return openMedium(cfg.Storage, logger)
	})

	do.Provide(injector, func(i do.Injector) (*persist.Sync, error) {
		medium := do.MustInvoke[ports.SnapshotMedium](i)
		return persist.NewSync(medium,
			persist.WithKey(cfg.Storage.Key),
			persist.WithFeatures(cfg.Storage.Features...),
			persist.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*store.Store, error) {
		sync := do.MustInvoke[*persist.Sync](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.OpenTimeout)
		defer cancel()

		initial, err := sync.Restore(ctx, store.Initial())
		if err != nil {
			logger.Warn("starting without persisted state", slog.Any("error", err))
		}

		opts := []store.Option{
			store.WithLogger(logger),
			store.WithMetrics(metrics),
			store.WithInitialState(initial),
		}
		if cfg.Sync.TabID != "" {
			opts = append(opts, store.WithTabID(cfg.Sync.TabID))
		}
		return store.New(opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*effects.Pipeline, error) {
		st := do.MustInvoke[*store.Store](i)
		carts := do.MustInvoke[*occ.CartClient](i)
		consentClient := do.MustInvoke[*occ.ConsentClient](i)

		deps := effects.Deps{
			Store:            st,
			Carts:            carts,
			Entries:          do.MustInvoke[*occ.EntryClient](i),
			Vouchers:         do.MustInvoke[*occ.VoucherClient](i),
			Email:            carts,
			Templates:        consentClient,
			UserConsents:     consentClient,
			RequiredConsents: cfg.Consents.Required,
			Logger:           logger,
		}
		return effects.NewPipeline(st, effects.Default(deps),
			effects.WithLogger(logger),
			effects.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*crosstab.Channel, error) {
		return crosstab.New(
			do.MustInvoke[*store.Store](i),
			do.MustInvoke[ports.SnapshotMedium](i),
			crosstab.WithKey(cfg.Storage.Key),
			crosstab.WithLogger(logger),
		), nil
	})
}

// registerServices provides the application services behind the tab API.
func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.ConsentService, error) {
		return consents.NewService(do.MustInvoke[*store.Store](i), consents.Config{
			Required: cfg.Consents.Required,
			Hidden:   cfg.Consents.Hidden,
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*cartmerge.Orchestrator, error) {
		return cartmerge.New(do.MustInvoke[*store.Store](i), do.MustInvoke[*occ.CartClient](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CartService, error) {
		return do.MustInvoke[*cartmerge.Orchestrator](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*session.Service, error) {
		return session.NewService(do.MustInvoke[*store.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SessionService, error) {
		return do.MustInvoke[*session.Service](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		st := do.MustInvoke[*store.Store](i)

		h := adapthttp.Handlers{
			Consents: handlers.NewConsentHandler(do.MustInvoke[ports.ConsentService](i)),
			Cart:     handlers.NewCartHandler(do.MustInvoke[ports.CartService](i)),
			Session:  handlers.NewSessionHandler(do.MustInvoke[ports.SessionService](i)),
			State:    handlers.NewStateHandler(st),
			Health:   handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), occService),
		}

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Tab(st.TabID()),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
