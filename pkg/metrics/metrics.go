// Package metrics wires OpenTelemetry instruments to the Prometheus registry
// and hands out the meter and tracer used across the service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "sharecart"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Setup installs a global meter provider that exports through reg. Instruments
// created before Setup are delegated to the new provider.
func Setup(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Int64Counter returns a counter from the global meter, or a no-op counter
// when the instrument cannot be created.
func Int64Counter(name, description string) metric.Int64Counter {
	c, err := Meter().Int64Counter(name, metric.WithDescription(description))
	if err != nil || c == nil {
		return noop.Int64Counter{}
	}

	return c
}

// Float64Histogram returns a latency histogram in seconds using DefaultBuckets.
func Float64Histogram(name, description string) metric.Float64Histogram {
	h, err := Meter().Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil || h == nil {
		return noop.Float64Histogram{}
	}

	return h
}
