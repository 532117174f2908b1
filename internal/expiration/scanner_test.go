package expiration_test

import (
	"context"
	"errors"
	"sharecart/internal/expiration"
	mockexpiration "sharecart/internal/expiration/mock"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	mockstorage "sharecart/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func weekly() *domain.ExpirationPolicy {
	return &domain.ExpirationPolicy{Count: 7, Unit: domain.IntervalUnitDay}
}

func cartIDs(from, n int) []domain.CartID {
	ids := make([]domain.CartID, 0, n)
	for i := range n {
		ids = append(ids, domain.CartID(from+i))
	}

	return ids
}

func TestChunk(t *testing.T) {
	for _, n := range []int{0, 1, 49, 50, 51, 100, 149, 250} {
		ids := cartIDs(1, n)
		batches := expiration.Chunk(ids, 50)

		require.Len(t, batches, (n+49)/50, "n=%d", n)

		seen := map[domain.CartID]bool{}
		var union []domain.CartID
		for _, b := range batches {
			require.NotEmpty(t, b)
			require.LessOrEqual(t, len(b), 50)
			for _, id := range b {
				require.False(t, seen[id], "duplicate id %d", id)
				seen[id] = true
			}
			union = append(union, b...)
		}
		if n > 0 {
			require.Equal(t, ids, union)
		}
	}
}

func TestChunk_NonPositiveSize(t *testing.T) {
	require.Len(t, expiration.Chunk(cartIDs(1, 120), 0), 3)
}

func TestScanner_Scan_OnlyOrderTypesWithPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	orderTypes := mockstorage.NewMockOrderTypeStorage(ctrl)
	carts := mockstorage.NewMockCartStorage(ctrl)
	queue := mockexpiration.NewMockQueue(ctrl)

	orderTypes.EXPECT().OrderTypes(gomock.Any()).Return([]domain.OrderType{
		{ID: "default"},
		{ID: "gift", Expiration: weekly()},
		{ID: "b2b", Expiration: &domain.ExpirationPolicy{Count: 1, Unit: domain.IntervalUnitMonth}},
	}, nil)

	carts.EXPECT().ExpirationCandidates(gomock.Any(), "gift", now.AddDate(0, 0, -7), uint(250)).
		Return(cartIDs(1, 120), nil)
	carts.EXPECT().ExpirationCandidates(gomock.Any(), "b2b", now.AddDate(0, -1, 0), uint(250)).
		Return(nil, nil)

	var enqueued [][]domain.CartID
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []domain.CartID) error {
			enqueued = append(enqueued, batch)

			return nil
		}).Times(3)

	s := expiration.NewScanner(clock.NewFixed(now), expiration.NewStoragePolicies(orderTypes), carts, queue,
		expiration.Options{CandidateLimit: 250, BatchSize: 50})

	report, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Equal(t, expiration.ScanReport{OrderTypes: 2, Candidates: 120, Batches: 3}, report)

	require.Len(t, enqueued, 3)
	require.Len(t, enqueued[0], 50)
	require.Len(t, enqueued[1], 50)
	require.Len(t, enqueued[2], 20)
	require.Equal(t, domain.CartID(1), enqueued[0][0])
	require.Equal(t, domain.CartID(120), enqueued[2][19])
}

func TestScanner_Scan_BatchSizeCappedAtMaximum(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)
	carts := mockstorage.NewMockCartStorage(ctrl)
	queue := mockexpiration.NewMockQueue(ctrl)

	policies.EXPECT().Expiring(gomock.Any()).Return([]domain.OrderType{
		{ID: "gift", Expiration: weekly()},
	}, nil)
	carts.EXPECT().ExpirationCandidates(gomock.Any(), "gift", gomock.Any(), gomock.Any()).
		Return(cartIDs(1, 120), nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []domain.CartID) error {
			require.LessOrEqual(t, len(batch), expiration.DefaultBatchSize)

			return nil
		}).Times(3)

	s := expiration.NewScanner(clock.NewFixed(now), policies, carts, queue,
		expiration.Options{BatchSize: 500})

	report, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, report.Batches)
}

func TestScanner_Scan_NoPolicies(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)
	carts := mockstorage.NewMockCartStorage(ctrl)
	queue := mockexpiration.NewMockQueue(ctrl)

	policies.EXPECT().Expiring(gomock.Any()).Return(nil, nil)

	s := expiration.NewScanner(clock.NewFixed(now), policies, carts, queue, expiration.Options{})

	report, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Zero(t, report)
}

func TestScanner_Scan_FailingOrderTypeDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)
	carts := mockstorage.NewMockCartStorage(ctrl)
	queue := mockexpiration.NewMockQueue(ctrl)

	policies.EXPECT().Expiring(gomock.Any()).Return([]domain.OrderType{
		{ID: "broken", Expiration: weekly()},
		{ID: "gift", Expiration: weekly()},
	}, nil)

	carts.EXPECT().ExpirationCandidates(gomock.Any(), "broken", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))
	carts.EXPECT().ExpirationCandidates(gomock.Any(), "gift", gomock.Any(), gomock.Any()).
		Return(cartIDs(1, 3), nil)
	queue.EXPECT().Enqueue(gomock.Any(), cartIDs(1, 3)).Return(nil)

	s := expiration.NewScanner(clock.NewFixed(now), policies, carts, queue, expiration.Options{})

	report, err := s.Scan(context.Background())
	require.ErrorContains(t, err, "connection reset")
	require.Equal(t, 1, report.Batches)
	require.Equal(t, 3, report.Candidates)
}

func TestScanner_Scan_EnqueueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)
	carts := mockstorage.NewMockCartStorage(ctrl)
	queue := mockexpiration.NewMockQueue(ctrl)

	policies.EXPECT().Expiring(gomock.Any()).Return([]domain.OrderType{{ID: "gift", Expiration: weekly()}}, nil)
	carts.EXPECT().ExpirationCandidates(gomock.Any(), "gift", gomock.Any(), gomock.Any()).
		Return(cartIDs(1, 60), nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))

	s := expiration.NewScanner(clock.NewFixed(now), policies, carts, queue, expiration.Options{})

	report, err := s.Scan(context.Background())
	require.ErrorContains(t, err, "queue down")
	require.Zero(t, report.Batches)
}

func TestScanner_Scan_PolicyLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)

	policies.EXPECT().Expiring(gomock.Any()).Return(nil, errors.New("boom"))

	s := expiration.NewScanner(clock.NewFixed(now), policies,
		mockstorage.NewMockCartStorage(ctrl), mockexpiration.NewMockQueue(ctrl), expiration.Options{})

	_, err := s.Scan(context.Background())
	require.Error(t, err)
}
