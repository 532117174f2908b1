package expiration

import (
	"context"
	"fmt"
	"sharecart/pkg/domain"
	"sharecart/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ScanArgs triggers one scan. It carries no data: every scan starts from the
// current time and the current policies.
type ScanArgs struct {
	maxAttempts int
}

func NewScanArgs(maxAttempts int) ScanArgs {
	return ScanArgs{maxAttempts: maxAttempts}
}

func (ScanArgs) Kind() string { return "ScanSharedCarts" }

// InsertOpts keeps at most one scan waiting or running at a time.
func (args ScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ExpireBatchArgs is one Queue batch.
type ExpireBatchArgs struct {
	CartIDs []domain.CartID `json:"cartIds"`

	maxAttempts int
}

func (ExpireBatchArgs) Kind() string { return "ExpireSharedCarts" }

// InsertOpts allows duplicate batches; the Expirer is idempotent.
func (args ExpireBatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}

// JobQueue is a Queue backed by River jobs stored next to the carts.
type JobQueue struct {
	jobs        storage.JobStorage
	maxAttempts int
}

func NewJobQueue(jobs storage.JobStorage, maxAttempts int) *JobQueue {
	return &JobQueue{jobs: jobs, maxAttempts: maxAttempts}
}

func (q *JobQueue) Enqueue(ctx context.Context, batch []domain.CartID) error {
	if len(batch) == 0 {
		return nil
	}

	if _, err := q.jobs.AddJob(ctx, ExpireBatchArgs{
		CartIDs:     batch,
		maxAttempts: q.maxAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not enqueue expiration batch: %w", err)
	}

	return nil
}
