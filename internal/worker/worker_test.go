package worker_test

import (
	"context"
	"errors"
	"sharecart/internal/expiration"
	mockexpiration "sharecart/internal/expiration/mock"
	"sharecart/internal/worker"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeExpireJob(id int64, ids ...domain.CartID) *river.Job[expiration.ExpireBatchArgs] {
	return &river.Job[expiration.ExpireBatchArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   expiration.ExpireBatchArgs{CartIDs: ids},
	}
}

func makeScanJob(id int64) *river.Job[expiration.ScanArgs] {
	return &river.Job[expiration.ScanArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   expiration.ScanArgs{},
	}
}

func TestExpireWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockexpiration.NewMockExpirer(ctrl)
	w := worker.NewExpireWorker(mock)

	mock.EXPECT().Expire(gomock.Any(), []domain.CartID{1, 2, 3}).
		Return(expiration.ExpireReport{Requested: 3, Deleted: 2, Skipped: 1}, nil)

	require.NoError(t, w.Work(context.Background(), makeExpireJob(1, 1, 2, 3)))
}

func TestExpireWorker_Work_ErrorIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockexpiration.NewMockExpirer(ctrl)
	w := worker.NewExpireWorker(mock)

	mock.EXPECT().Expire(gomock.Any(), []domain.CartID{1}).
		Return(expiration.ExpireReport{}, errors.New("connection refused"))

	err := w.Work(context.Background(), makeExpireJob(2, 1))
	require.ErrorContains(t, err, "connection refused")
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestExpireWorker_Work_EmptyBatchCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewExpireWorker(mockexpiration.NewMockExpirer(ctrl))

	err := w.Work(context.Background(), makeExpireJob(3))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestScanWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockexpiration.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock)

	mock.EXPECT().Scan(gomock.Any()).Return(expiration.ScanReport{OrderTypes: 1, Candidates: 60, Batches: 2}, nil)
	require.NoError(t, w.Work(context.Background(), makeScanJob(4)))

	mock.EXPECT().Scan(gomock.Any()).Return(expiration.ScanReport{}, errors.New("boom"))
	require.ErrorContains(t, w.Work(context.Background(), makeScanJob(5)), "boom")
}

func TestWorkers_RegistersBothKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	workers := worker.Workers(mockexpiration.NewMockScanner(ctrl), mockexpiration.NewMockExpirer(ctrl))
	require.NotNil(t, workers)

	// adding the same kind twice is rejected, proving both are registered
	require.Error(t, river.AddWorkerSafely(workers, worker.NewScanWorker(nil)))
	require.Error(t, river.AddWorkerSafely(workers, worker.NewExpireWorker(nil)))
}

func TestScanJob(t *testing.T) {
	require.NotNil(t, worker.ScanJob(30*time.Minute, 3))
}
