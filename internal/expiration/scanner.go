package expiration

import (
	"context"
	"errors"
	"fmt"
	"sharecart/internal/config"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	"sharecart/pkg/metrics"
	"sharecart/pkg/storage"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	DefaultCandidateLimit uint = 250
	DefaultBatchSize           = config.MaxExpirationBatchSize
)

// Options bound the work done by a single scan.
type Options struct {
	// CandidateLimit caps the candidates collected per order type and scan.
	// Carts beyond the limit are picked up by later scans.
	CandidateLimit uint
	// BatchSize is the maximum number of cart IDs per queued batch, at most
	// config.MaxExpirationBatchSize.
	BatchSize int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		CandidateLimit: cfg.Expiration.CandidateLimit,
		BatchSize:      cfg.Expiration.BatchSize,
	}
}

func (o Options) withDefaults() Options {
	if o.CandidateLimit == 0 {
		o.CandidateLimit = DefaultCandidateLimit
	}
	if o.BatchSize <= 0 || o.BatchSize > config.MaxExpirationBatchSize {
		o.BatchSize = DefaultBatchSize
	}

	return o
}

// ScanReport summarizes one scan.
type ScanReport struct {
	OrderTypes int
	Candidates int
	Batches    int
}

type scanner struct {
	options  Options
	clock    clock.Clock
	policies PolicyProvider
	carts    storage.CartStorage
	queue    Queue

	candidates metric.Int64Counter
	batches    metric.Int64Counter
	duration   metric.Float64Histogram
}

func NewScanner(clk clock.Clock,
	policies PolicyProvider,
	carts storage.CartStorage,
	queue Queue,
	options Options) Scanner {
	return &scanner{
		options:  options.withDefaults(),
		clock:    clk,
		policies: policies,
		carts:    carts,
		queue:    queue,

		candidates: metrics.Int64Counter("sharecart_expiration_candidates",
			"Shared carts found past their expiration cutoff"),
		batches: metrics.Int64Counter("sharecart_expiration_batches",
			"Expiration batches enqueued"),
		duration: metrics.Float64Histogram("sharecart_expiration_scan_duration",
			"Duration of expiration scans"),
	}
}

// Scan enqueues the stale shared carts of every order type with a policy.
// A failing order type does not stop the others; the joined error is
// returned so the scan gets retried. Re-enqueueing a batch is harmless.
func (s *scanner) Scan(ctx context.Context) (ScanReport, error) {
	ctx, span := metrics.Tracer().Start(ctx, "expiration.Scan")
	defer span.End()

	start := time.Now()
	defer func() {
		s.duration.Record(ctx, time.Since(start).Seconds())
	}()

	var report ScanReport

	orderTypes, err := s.policies.Expiring(ctx)
	if err != nil {
		return report, fmt.Errorf("could not resolve expiration policies: %w", err)
	}

	now := s.clock.Now()
	var errs []error
	for _, ot := range orderTypes {
		report.OrderTypes++

		candidates, batches, err := s.scanOrderType(ctx, ot, now)
		report.Candidates += candidates
		report.Batches += batches
		if err != nil {
			errs = append(errs, err)
		}
	}

	logger.Info(ctx, "expiration scan finished",
		zap.Int("orderTypes", report.OrderTypes),
		zap.Int("candidates", report.Candidates),
		zap.Int("batches", report.Batches))

	return report, errors.Join(errs...)
}

func (s *scanner) scanOrderType(ctx context.Context, ot domain.OrderType, now time.Time) (int, int, error) {
	if ot.Expiration == nil {
		return 0, 0, nil
	}

	cutoff := ot.Expiration.Cutoff(now)
	ctx = logger.WithFields(ctx,
		zap.String("orderType", ot.ID),
		zap.Stringer("policy", ot.Expiration),
		zap.Time("cutoff", cutoff))

	ids, err := s.carts.ExpirationCandidates(ctx, ot.ID, cutoff, s.options.CandidateLimit)
	if err != nil {
		logger.Error(ctx, "could not fetch expiration candidates", zap.Error(err))

		return 0, 0, fmt.Errorf("could not fetch candidates of %q: %w", ot.ID, err)
	}

	attrs := metric.WithAttributes(attribute.String("order_type", ot.ID))
	s.candidates.Add(ctx, int64(len(ids)), attrs)

	enqueued := 0
	for _, batch := range Chunk(ids, s.options.BatchSize) {
		if err := s.queue.Enqueue(ctx, batch); err != nil {
			logger.Error(ctx, "could not enqueue expiration batch", zap.Error(err))

			return len(ids), enqueued, fmt.Errorf("could not enqueue batch of %q: %w", ot.ID, err)
		}
		enqueued++
		s.batches.Add(ctx, 1, attrs)
	}

	logger.Debug(ctx, "order type scanned", zap.Int("candidates", len(ids)), zap.Int("batches", enqueued))

	return len(ids), enqueued, nil
}

// Chunk splits ids into consecutive batches of at most size IDs, keeping
// their order. A non-positive size falls back to DefaultBatchSize.
func Chunk(ids []domain.CartID, size int) [][]domain.CartID {
	if size <= 0 {
		size = DefaultBatchSize
	}

	return slices.Collect(slices.Chunk(ids, size))
}
