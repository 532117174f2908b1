package expiration_test

import (
	"context"
	"errors"
	"sharecart/internal/expiration"
	mockexpiration "sharecart/internal/expiration/mock"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	mockstorage "sharecart/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memCarts backs a MockCartStorage with a map so repeated deliveries observe
// earlier deletions.
func memCarts(ctrl *gomock.Controller, carts ...domain.Cart) (*mockstorage.MockCartStorage, map[domain.CartID]domain.Cart) {
	m := mockstorage.NewMockCartStorage(ctrl)
	state := map[domain.CartID]domain.Cart{}
	for _, c := range carts {
		state[c.ID] = c
	}

	m.EXPECT().CartByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id domain.CartID) (*domain.Cart, error) {
			c, ok := state[id]
			if !ok {
				return nil, nil
			}

			return &c, nil
		}).AnyTimes()
	m.EXPECT().DeleteExpiredCarts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, orderType string, cutoff time.Time, ids ...domain.CartID) (int64, error) {
			var n int64
			for _, id := range ids {
				c, ok := state[id]
				if !ok || c.OrderType != orderType || c.State != domain.CartStateShared ||
					!c.IsCart || c.ChangedAt.After(cutoff) {
					continue
				}
				delete(state, id)
				n++
			}

			return n, nil
		}).AnyTimes()

	return m, state
}

func sharedCart(id domain.CartID, orderType string, changedAt time.Time) domain.Cart {
	return domain.Cart{
		ID:        id,
		OrderType: orderType,
		State:     domain.CartStateShared,
		IsCart:    true,
		ChangedAt: changedAt,
	}
}

func gift(ctrl *gomock.Controller) *mockexpiration.MockPolicyProvider {
	p := mockexpiration.NewMockPolicyProvider(ctrl)
	p.EXPECT().Policy(gomock.Any(), "gift").Return(weekly(), nil).AnyTimes()
	p.EXPECT().Policy(gomock.Any(), "default").Return(nil, nil).AnyTimes()

	return p
}

func TestExpirer_Expire_RevalidatesEveryCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	cutoff := now.AddDate(0, 0, -7)

	draft := sharedCart(3, "gift", cutoff.Add(-time.Hour))
	draft.State = domain.CartStateDraft
	placed := sharedCart(4, "gift", cutoff.Add(-time.Hour))
	placed.IsCart = false

	carts, state := memCarts(ctrl,
		sharedCart(1, "gift", cutoff.Add(-time.Hour)),
		sharedCart(2, "gift", cutoff),
		draft,
		placed,
		sharedCart(5, "gift", cutoff.Add(time.Minute)), // reused after the scan
		sharedCart(6, "default", cutoff.Add(-time.Hour)),
	)

	e := expiration.NewExpirer(clock.NewFixed(now), gift(ctrl), carts)

	report, err := e.Expire(context.Background(), []domain.CartID{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, expiration.ExpireReport{Requested: 7, Missing: 1, Skipped: 4, Deleted: 2}, report)

	require.NotContains(t, state, domain.CartID(1))
	require.NotContains(t, state, domain.CartID(2))
	for _, id := range []domain.CartID{3, 4, 5, 6} {
		require.Contains(t, state, id)
	}
}

func TestExpirer_Expire_UsesCurrentTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := clock.NewFixed(now)
	carts, state := memCarts(ctrl, sharedCart(1, "gift", now.AddDate(0, 0, -6)))

	e := expiration.NewExpirer(clk, gift(ctrl), carts)

	report, err := e.Expire(context.Background(), []domain.CartID{1})
	require.NoError(t, err)
	require.Zero(t, report.Deleted)

	clk.Advance(48 * time.Hour)

	report, err = e.Expire(context.Background(), []domain.CartID{1})
	require.NoError(t, err)
	require.Equal(t, int64(1), report.Deleted)
	require.Empty(t, state)
}

func TestExpirer_Expire_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	stale := now.AddDate(0, 0, -10)
	carts, state := memCarts(ctrl,
		sharedCart(1, "gift", stale),
		sharedCart(2, "gift", stale),
		sharedCart(3, "gift", now),
	)

	e := expiration.NewExpirer(clock.NewFixed(now), gift(ctrl), carts)
	batch := []domain.CartID{1, 2, 3}

	first, err := e.Expire(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, int64(2), first.Deleted)
	after := len(state)

	second, err := e.Expire(context.Background(), batch)
	require.NoError(t, err)
	require.Zero(t, second.Deleted)
	require.Equal(t, 2, second.Missing)
	require.Len(t, state, after)
}

func TestExpirer_Expire_PolicyRemovedAfterScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	carts := mockstorage.NewMockCartStorage(ctrl)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)

	carts.EXPECT().CartByID(gomock.Any(), domain.CartID(1)).
		Return(&domain.Cart{ID: 1, OrderType: "gift", State: domain.CartStateShared, IsCart: true}, nil)
	carts.EXPECT().CartByID(gomock.Any(), domain.CartID(2)).
		Return(&domain.Cart{ID: 2, OrderType: "gift", State: domain.CartStateShared, IsCart: true}, nil)
	// resolved once per batch
	policies.EXPECT().Policy(gomock.Any(), "gift").Return(nil, nil).Times(1)

	e := expiration.NewExpirer(clock.NewFixed(now), policies, carts)

	report, err := e.Expire(context.Background(), []domain.CartID{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, report.Skipped)
	require.Zero(t, report.Deleted)
}

func TestExpirer_Expire_StorageFailures(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mockstorage.NewMockCartStorage(ctrl)
		carts.EXPECT().CartByID(gomock.Any(), domain.CartID(1)).Return(nil, errors.New("timeout"))

		e := expiration.NewExpirer(clock.NewFixed(now), mockexpiration.NewMockPolicyProvider(ctrl), carts)
		_, err := e.Expire(context.Background(), []domain.CartID{1})
		require.ErrorContains(t, err, "timeout")
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mockstorage.NewMockCartStorage(ctrl)
		carts.EXPECT().CartByID(gomock.Any(), domain.CartID(1)).
			Return(&domain.Cart{ID: 1, OrderType: "gift", State: domain.CartStateShared, IsCart: true}, nil)
		carts.EXPECT().DeleteExpiredCarts(gomock.Any(), "gift", now.AddDate(0, 0, -7), domain.CartID(1)).
			Return(int64(0), errors.New("deadlock"))

		e := expiration.NewExpirer(clock.NewFixed(now), gift(ctrl), carts)
		_, err := e.Expire(context.Background(), []domain.CartID{1})
		require.ErrorContains(t, err, "deadlock")
	})
}

func TestExpirer_Expire_CartChangedBeforeDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	carts := mockstorage.NewMockCartStorage(ctrl)
	cutoff := now.AddDate(0, 0, -7)

	carts.EXPECT().CartByID(gomock.Any(), domain.CartID(1)).
		Return(&domain.Cart{ID: 1, OrderType: "gift", State: domain.CartStateShared, IsCart: true,
			ChangedAt: cutoff.Add(-time.Hour)}, nil)
	carts.EXPECT().CartByID(gomock.Any(), domain.CartID(2)).
		Return(&domain.Cart{ID: 2, OrderType: "gift", State: domain.CartStateShared, IsCart: true,
			ChangedAt: cutoff.Add(-time.Hour)}, nil)
	// cart 2 was claimed from after it was loaded, the guarded delete keeps it
	carts.EXPECT().DeleteExpiredCarts(gomock.Any(), "gift", cutoff, domain.CartID(1), domain.CartID(2)).
		Return(int64(1), nil)

	e := expiration.NewExpirer(clock.NewFixed(now), gift(ctrl), carts)

	report, err := e.Expire(context.Background(), []domain.CartID{1, 2})
	require.NoError(t, err)
	require.Equal(t, expiration.ExpireReport{Requested: 2, Skipped: 1, Deleted: 1}, report)
}

func TestExpirer_Expire_GroupsByOrderType(t *testing.T) {
	ctrl := gomock.NewController(t)
	carts := mockstorage.NewMockCartStorage(ctrl)
	policies := mockexpiration.NewMockPolicyProvider(ctrl)
	policies.EXPECT().Policy(gomock.Any(), "gift").Return(weekly(), nil)
	policies.EXPECT().Policy(gomock.Any(), "promo").
		Return(&domain.ExpirationPolicy{Count: 1, Unit: domain.IntervalUnitMonth}, nil)

	stale := now.AddDate(-1, 0, 0)
	for id, orderType := range map[domain.CartID]string{1: "gift", 2: "promo", 3: "gift"} {
		carts.EXPECT().CartByID(gomock.Any(), id).
			Return(&domain.Cart{ID: id, OrderType: orderType, State: domain.CartStateShared, IsCart: true,
				ChangedAt: stale}, nil)
	}
	carts.EXPECT().DeleteExpiredCarts(gomock.Any(), "gift", now.AddDate(0, 0, -7), domain.CartID(1), domain.CartID(3)).
		Return(int64(2), nil)
	carts.EXPECT().DeleteExpiredCarts(gomock.Any(), "promo", now.AddDate(0, -1, 0), domain.CartID(2)).
		Return(int64(1), nil)

	e := expiration.NewExpirer(clock.NewFixed(now), policies, carts)

	report, err := e.Expire(context.Background(), []domain.CartID{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), report.Deleted)
	require.Zero(t, report.Skipped)
}
