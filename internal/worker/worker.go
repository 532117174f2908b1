// Package worker runs the River client that executes expiration jobs and
// schedules the periodic scan.
package worker

import (
	"context"
	"fmt"
	"sharecart/internal/config"
	"sharecart/internal/expiration"
	"sharecart/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// ScanInterval is the period of the scan job.
	ScanInterval time.Duration
	// MaxAttempts bounds retries of the scan job.
	MaxAttempts int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:   cfg.Expiration.Workers,
		ScanInterval: cfg.Expiration.ScanInterval,
		MaxAttempts:  cfg.Expiration.MaxAttempts,
	}
}

// Workers registers the expiration workers.
func Workers(scanner expiration.Scanner, expirer expiration.Expirer) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewScanWorker(scanner))
	river.AddWorker(workers, NewExpireWorker(expirer))

	return workers
}

// ScanJob is the periodic job enqueueing a scan every interval, starting
// right after the client starts.
func ScanJob(interval time.Duration, maxAttempts int) *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return expiration.NewScanArgs(maxAttempts), nil
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	scanner expiration.Scanner,
	expirer expiration.Expirer,
	options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      Workers(scanner, expirer),
		PeriodicJobs: []*river.PeriodicJob{ScanJob(options.ScanInterval, options.MaxAttempts)},
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
