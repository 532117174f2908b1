package worker

import (
	"context"
	"fmt"
	"sharecart/internal/expiration"
	"sharecart/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ScanWorker runs one expiration scan per job. A failed scan is retried by
// River; batches already enqueued by the failed attempt are safe to repeat.
type ScanWorker struct {
	river.WorkerDefaults[expiration.ScanArgs]

	scanner expiration.Scanner
}

func NewScanWorker(scanner expiration.Scanner) *ScanWorker {
	return &ScanWorker{scanner: scanner}
}

func (w *ScanWorker) Work(ctx context.Context, job *river.Job[expiration.ScanArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))

	report, err := w.scanner.Scan(ctx)
	if err != nil {
		logger.Error(ctx, "expiration scan failed", zap.Error(err), zap.Int("batches", report.Batches))

		return fmt.Errorf("could not scan shared carts: %w", err)
	}

	return nil
}
