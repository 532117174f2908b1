package sharing_test

import (
	"context"
	"errors"
	"sharecart/internal/sharing"
	"sharecart/pkg/domain"
	"sharecart/pkg/serrors"
	"sharecart/pkg/storage"
	mockstorage "sharecart/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *fixture) expectSharedCart(cart *domain.Cart, settings domain.ClaimSettings) {
	f.storage.EXPECT().CartByID(gomock.Any(), cart.ID).Return(cart, nil)
	f.storage.EXPECT().OrderTypeByID(gomock.Any(), cart.OrderType).
		Return(&domain.OrderType{ID: cart.OrderType, Expiration: weekly(), Claim: settings}, nil).AnyTimes()
}

func TestService_Claim_IntoNewCart(t *testing.T) {
	f := newFixture(t)
	shared := sharedCart()
	link := f.guard.Sign(shared, t0.Unix())
	requester := domain.Requester{UserID: strangerID}

	f.expectSharedCart(shared, domain.ClaimSettings{})
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActiveCart(gomock.Any(), strangerID, "gift").Return(nil, nil)
		tx.EXPECT().StoreCart(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cart domain.Cart) (*domain.Cart, error) {
				require.Equal(t, domain.CartStateDraft, cart.State)
				require.Equal(t, strangerID, cart.OwnerID)
				require.Equal(t, "gift", cart.OrderType)
				require.True(t, cart.IsCart)
				cart.ID = 20

				return &cart, nil
			})
		tx.EXPECT().AddCartItems(gomock.Any(), domain.CartID(20), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.CartID, items ...domain.LineItem) ([]domain.LineItem, error) {
				require.Len(t, items, 1)
				require.Equal(t, "pear", items[0].Title)
				require.Zero(t, items[0].ID)
				require.Zero(t, items[0].CartID)

				return items, nil
			})
		tx.EXPECT().CartByID(gomock.Any(), domain.CartID(20)).
			Return(&domain.Cart{ID: 20, OwnerID: strangerID, Items: []domain.LineItem{{ID: 200, Title: "pear"}}}, nil)
	})

	cart, err := f.svc.Claim(context.Background(), requester, link, []domain.LineItemID{111})
	require.NoError(t, err)
	require.Equal(t, domain.CartID(20), cart.ID)
	require.Len(t, cart.Items, 1)
}

func TestService_Claim_IntoActiveCartAndDeleteItems(t *testing.T) {
	f := newFixture(t)
	shared := sharedCart()
	link := f.guard.Sign(shared, t0.Unix())

	f.expectSharedCart(shared, domain.ClaimSettings{DeleteClaimedItems: true})
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActiveCart(gomock.Any(), strangerID, "gift").Return(&domain.Cart{ID: 30}, nil)
		tx.EXPECT().AddCartItems(gomock.Any(), domain.CartID(30), gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().DeleteCartItems(gomock.Any(), domain.CartID(11), domain.LineItemID(110), domain.LineItemID(111)).
			Return(nil)
		tx.EXPECT().CartByID(gomock.Any(), domain.CartID(30)).Return(&domain.Cart{ID: 30}, nil)
	})

	// duplicates are claimed once
	cart, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID}, link,
		[]domain.LineItemID{111, 110, 111})
	require.NoError(t, err)
	require.Equal(t, domain.CartID(30), cart.ID)
}

func TestService_Claim_DeleteSharedCart(t *testing.T) {
	f := newFixture(t)
	shared := sharedCart()
	link := f.guard.Sign(shared, t0.Unix())

	f.expectSharedCart(shared, domain.ClaimSettings{DeleteClaimedItems: true, DeleteSharedCart: true})
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ActiveCart(gomock.Any(), strangerID, "gift").Return(&domain.Cart{ID: 30}, nil)
		tx.EXPECT().AddCartItems(gomock.Any(), domain.CartID(30), gomock.Any()).Return(nil, nil)
		tx.EXPECT().DeleteCarts(gomock.Any(), domain.CartID(11)).Return(int64(1), nil)
		tx.EXPECT().CartByID(gomock.Any(), domain.CartID(30)).Return(&domain.Cart{ID: 30}, nil)
	})

	_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID}, link, []domain.LineItemID{110})
	require.NoError(t, err)
}

func TestService_Claim_Rejected(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Claim(context.Background(), domain.Anonymous(), sharing.Link{CartID: 11}, []domain.LineItemID{1})
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("no items", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID}, sharing.Link{CartID: 11}, nil)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		shared := sharedCart()
		f.expectSharedCart(shared, domain.ClaimSettings{})

		_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID},
			f.guard.Sign(shared, t0.Unix()), []domain.LineItemID{999})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("expired link", func(t *testing.T) {
		f := newFixture(t)
		shared := sharedCart()
		f.expectSharedCart(shared, domain.ClaimSettings{})
		link := f.guard.Sign(shared, t0.Unix())
		f.clock.Set(t0.AddDate(0, 0, 8))

		_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID}, link, []domain.LineItemID{110})
		require.ErrorIs(t, err, serrors.ErrForbidden)

		var denied *sharing.DeniedError
		require.ErrorAs(t, err, &denied)
		require.Equal(t, sharing.ReasonExpired, denied.Reason)
		require.Equal(t, "expired", serrors.MessageOf(err, ""))
	})

	t.Run("transaction failure", func(t *testing.T) {
		f := newFixture(t)
		shared := sharedCart()
		f.expectSharedCart(shared, domain.ClaimSettings{})
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ActiveCart(gomock.Any(), strangerID, "gift").Return(&domain.Cart{ID: 30}, nil)
			tx.EXPECT().AddCartItems(gomock.Any(), domain.CartID(30), gomock.Any()).Return(nil, errors.New("boom"))
		})

		_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID},
			f.guard.Sign(shared, t0.Unix()), []domain.LineItemID{110})
		require.ErrorContains(t, err, "boom")
	})
}

func TestService_Claim_SharedCartDeletedConcurrently(t *testing.T) {
	for name, tc := range map[string]struct {
		settings domain.ClaimSettings
		remove   func(tx *mockstorage.MockAllStorage)
	}{
		"delete shared cart": {
			settings: domain.ClaimSettings{DeleteSharedCart: true},
			remove: func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().DeleteCarts(gomock.Any(), domain.CartID(11)).Return(int64(0), nil)
			},
		},
		"delete claimed items": {
			settings: domain.ClaimSettings{DeleteClaimedItems: true},
			remove: func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().DeleteCartItems(gomock.Any(), domain.CartID(11), domain.LineItemID(110)).
					Return(storage.ErrCartNotFound)
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			shared := sharedCart()

			f.expectSharedCart(shared, tc.settings)
			f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().ActiveCart(gomock.Any(), strangerID, "gift").Return(&domain.Cart{ID: 30}, nil)
				tx.EXPECT().AddCartItems(gomock.Any(), domain.CartID(30), gomock.Any()).Return(nil, nil)
				tc.remove(tx)
			})

			_, err := f.svc.Claim(context.Background(), domain.Requester{UserID: strangerID},
				f.guard.Sign(shared, t0.Unix()), []domain.LineItemID{110})
			require.ErrorIs(t, err, serrors.ErrConflict)
		})
	}
}
