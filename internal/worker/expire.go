package worker

import (
	"context"
	"fmt"
	"sharecart/internal/expiration"
	"sharecart/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExpireWorker deletes one batch of expired shared carts. Batches may arrive
// more than once; the expirer re-validates every cart before deleting.
type ExpireWorker struct {
	river.WorkerDefaults[expiration.ExpireBatchArgs]

	expirer expiration.Expirer
}

func NewExpireWorker(expirer expiration.Expirer) *ExpireWorker {
	return &ExpireWorker{expirer: expirer}
}

func (w *ExpireWorker) Work(ctx context.Context, job *river.Job[expiration.ExpireBatchArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Int("batchSize", len(job.Args.CartIDs)))

	if len(job.Args.CartIDs) == 0 {
		return river.JobCancel(fmt.Errorf("job %d has an empty batch", job.ID)) //nolint: wrapcheck
	}

	report, err := w.expirer.Expire(ctx, job.Args.CartIDs)
	if err != nil {
		logger.Error(ctx, "could not expire batch", zap.Error(err))

		return fmt.Errorf("could not expire shared carts: %w", err)
	}

	logger.Debug(ctx, "batch processed",
		zap.Int64("deleted", report.Deleted),
		zap.Int("missing", report.Missing),
		zap.Int("skipped", report.Skipped))

	return nil
}
