package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracingOptions controls the global tracer provider.
type TracingOptions struct {
	ServiceName string
	Environment string
	// Endpoint is the OTLP/HTTP collector address (host:port). Spans are
	// written to stdout when it is empty.
	Endpoint string
	Insecure bool
	// SampleRatio is the fraction of root spans recorded, clamped to [0, 1].
	SampleRatio float64
	// Exporter replaces the OTLP or stdout exporter when set.
	Exporter sdktrace.SpanExporter
}

// SetupTracing installs a global tracer provider. Its Shutdown flushes
// pending spans and must be called before exit.
func SetupTracing(ctx context.Context, opts TracingOptions) (*sdktrace.TracerProvider, error) {
	exp := opts.Exporter
	if exp == nil {
		var err error
		exp, err = newTraceExporter(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("could not create trace exporter: %w", err)
		}
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = instrumentationName
	}
	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", opts.Environment),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(opts.SampleRatio)))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

func newTraceExporter(ctx context.Context, opts TracingOptions) (sdktrace.SpanExporter, error) {
	if opts.Endpoint == "" {
		return stdouttrace.New()
	}

	httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}

	return otlptracehttp.New(ctx, httpOpts...)
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
