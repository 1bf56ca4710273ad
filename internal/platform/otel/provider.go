package otel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/lazyseq/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls trace export. Variables carry the LAZYSEQ_ prefix.
type Config struct {
	Enabled         bool          `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint        string        `env:"OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"OTEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Active reports whether Setup will install a tracer provider.
func (c Config) Active() bool {
	return c.Enabled && strings.TrimSpace(c.Endpoint) != ""
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when the endpoint is empty or tracing is disabled, Setup
// returns a no-op shutdown function and the global provider is left alone.
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	tp, err := NewProvider(ctx, serviceName, exporter)
	if err != nil {
		return noop, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// NewProvider builds a batching tracer provider that exports to exporter and
// tags spans with serviceName.
func NewProvider(ctx context.Context, serviceName string, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}
