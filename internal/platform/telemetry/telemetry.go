// Package telemetry sets up tracing and metrics for a tab process and owns
// the instruments the tab API, the OCC client, the store and the effect
// pipeline record on.
//
//	setup := telemetry.Setup{Service: "storefront", Instance: tabID, Exporter: "stdout"}
//	tp, err := telemetry.InitTracer(ctx, setup)
//	mp, err := telemetry.InitMeter(ctx, setup)
//	metrics, err := telemetry.NewMetrics(mp, "storefront")
//	metrics.StoreActionTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrActionKind.String(kind)))
//
// Both providers are registered globally and must be shut down on exit so
// the batch processors flush.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Attribute keys shared by spans and metrics. Action kinds and effect names
// come from a closed set, so they are safe as metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrActionKind  = attribute.Key("store.action.kind")
	AttrOrigin      = attribute.Key("store.action.origin")
	AttrEffect      = attribute.Key("effect.name")
)

// Metrics holds the instruments recorded by the HTTP server, the OCC client,
// the store and the effect pipeline.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	StoreActionTotal      metric.Int64Counter
	EffectDuration        metric.Float64Histogram
}

// Setup names the process and where its telemetry goes. Exporter is
// ExporterStdout or ExporterOTLP; OTLP needs Endpoint. Instance is the tab
// id when one is pinned, so traces from two tabs of one shopper separate.
type Setup struct {
	Service  string
	Instance string
	Exporter string
	Endpoint string
}

func (s Setup) validate() error {
	switch s.Exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if s.Endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", s.Exporter)
	}
}

func (s Setup) resource() (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(s.Service)}
	if s.Instance != "" {
		attrs = append(attrs, semconv.ServiceInstanceID(s.Instance))
	}
	return resource.Merge(resource.Default(), resource.NewWithAttributes(semconv.SchemaURL, attrs...))
}

// InitTracer installs a batching TracerProvider and the W3C trace context
// and baggage propagators.
func InitTracer(ctx context.Context, s Setup) (*sdktrace.TracerProvider, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	res, err := s.resource()
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter installs a MeterProvider exporting on a periodic reader.
func InitMeter(ctx context.Context, s Setup) (*sdkmetric.MeterProvider, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	res, err := s.resource()
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers the shared instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	b := builder{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of tab API requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Tab API requests served", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of OCC calls, retries included"),
		ClientRequestTotal:    b.counter("http.client.request.total", "OCC calls by outcome", "{request}"),
		StoreActionTotal:      b.counter("store.action.total", "Actions reduced by the store, by kind and origin", "{action}"),
		EffectDuration:        b.seconds("effect.duration", "Duration of effect invocations"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return m, nil
}

// builder keeps the first instrument error so NewMetrics reads as a table.
type builder struct {
	meter metric.Meter
	err   error
}

func (b *builder) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.keep(name, err)
	return h
}

func (b *builder) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.keep(name, err)
	return c
}

func (b *builder) keep(name string, err error) {
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("creating %s: %w", name, err)
	}
}

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

func newSpanExporter(ctx context.Context, s Setup) (sdktrace.SpanExporter, error) {
	if s.Exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, secure := collector(s.Endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, s Setup) (sdkmetric.Exporter, error) {
	if s.Exporter == ExporterStdout {
		return stdoutmetric.New()
	}
	host, secure := collector(s.Endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// collector splits "https://otel-collector:4318" into its host and whether
// it speaks TLS. A bare "host:port" is taken as plaintext.
func collector(endpoint string) (host string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
