// Package httpclient is the outbound side of the tab: every OCC call goes
// through Client.Do, which wraps net/http in
//
//	breaker → rate limiter → tab/request headers → client span → retry
//
// Effects run on the store's context rather than a request's, so the ids
// stamped on outbound calls are the tab id and a per-effect request id that
// the effect pipeline puts in the context:
//
//	ctx = httpclient.WithTabID(ctx, s.TabID())
//	ctx = httpclient.WithRequestID(ctx, "tab-a-42")
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/config"
	"github.com/jsamuelsen11/go-storefront-state/internal/platform/telemetry"
)

// Outbound header names.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderTabID     = "X-Tab-ID"
)

type (
	requestIDKey struct{}
	tabIDKey     struct{}
)

// WithRequestID stores the id sent as X-Request-ID on calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithTabID stores the id sent as X-Tab-ID on calls made with ctx.
func WithTabID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, tabIDKey{}, id)
}

// Client sends requests to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for serviceName ("occ" in production), which labels
// spans, metrics and the breaker. Nil metrics skips recording.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A tab closing mid-call cancels the store context. That says
		// nothing about OCC's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     cb,
		limiter:     limiter,
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do sends req. On success resp carries an open body the caller closes.
// When retries run out on a 429 or 5xx, both resp and err are non-nil so the
// caller can still read OCC's error list. A rejected breaker or a transport
// error returns a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		c.injectHeaders(ctx, req)

		spanCtx, end := c.startSpan(ctx, req)
		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		end(resp, retryErr)
		return struct{}{}, retryErr
	})

	c.record(ctx, method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck reports the breaker state without calling OCC: nil when
// closed, an error naming the state otherwise. A failing OCC degrades the
// tab but does not make it unready; the health handler decides what that
// means for the response.
func (c *Client) HealthCheck(_ context.Context) error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

// Name returns the downstream service name. With HealthCheck it makes Client
// a ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
	if id, ok := ctx.Value(tabIDKey{}).(string); ok && id != "" {
		req.Header.Set(HeaderTabID, id)
	}
}

// startSpan opens a client span and writes its W3C trace context into the
// outbound headers. The URL is recorded without its query, which carries the
// guest e-mail on some OCC calls. The returned func ends the span with the
// final response and error.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, func(*http.Response, error)) {
	attrs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(req.Method),
		attribute.String("http.url", req.URL.Scheme+"://"+req.URL.Host+req.URL.Path),
		telemetry.AttrPeerService.String(c.serviceName),
	}
	if id, ok := ctx.Value(tabIDKey{}).(string); ok && id != "" {
		attrs = append(attrs, attribute.String("tab.id", id))
	}

	ctx, span := otel.Tracer("httpclient").Start(ctx, req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, func(resp *http.Response, err error) {
		defer span.End()
		if resp != nil {
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, took time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)

	c.metrics.ClientRequestDuration.Record(ctx, took.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// outcome labels a finished call for metrics.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// toUint32 clamps v into uint32; negatives become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
