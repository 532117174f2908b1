package main

import (
	"context"
	"sharecart/internal/config"
	"sharecart/pkg/logger"
	"sharecart/pkg/metrics"

	"go.uber.org/zap"
)

// setupTracing installs the tracer provider when tracing is enabled and
// returns a function flushing it. Spans stay no-ops otherwise.
func setupTracing(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	if !cfg.Tracing.Enabled {
		return func(context.Context) {}
	}

	tp, err := metrics.SetupTracing(ctx, metrics.TracingOptions{
		ServiceName: "sharecart",
		Environment: cfg.Environment,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Fatal(ctx, "could not set up tracing", zap.Error(err))
	}
	logger.Info(ctx, "tracing enabled",
		zap.String("endpoint", cfg.Tracing.Endpoint),
		zap.Float64("sample_ratio", cfg.Tracing.SampleRatio))

	return func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not flush traces", zap.Error(err))
		}
	}
}
