package postgres_test

import (
	"context"
	"sharecart/pkg/domain"
	"sharecart/pkg/storage"
	"sharecart/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestCart(owner domain.UserID, state domain.CartState, items ...string) domain.Cart {
	cart := domain.Cart{
		OrderType: "default",
		Label:     "Cart",
		State:     state,
		IsCart:    true,
		OwnerID:   owner,
	}
	for i, title := range items {
		cart.Items = append(cart.Items, domain.LineItem{
			Title:     title,
			SKU:       "SKU-" + title,
			Quantity:  i + 1,
			UnitPrice: 1000,
			Currency:  "EUR",
		})
	}

	return cart
}

func setChangedAt(t *testing.T, pg *postgres.PgSQL, id domain.CartID, at time.Time) {
	t.Helper()
	_, err := pg.DB.ExecContext(context.Background(), `UPDATE carts SET changed_at = $1 WHERE id = $2`, at, int64(id))
	require.NoError(t, err)
}

func TestPgSQL_StoreCart_AndCartByID(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := domain.UserID(uuid.New())

	stored, err := pg.StoreCart(ctx, newTestCart(owner, domain.CartStateDraft, "apple", "pear"))
	require.NoError(t, err)
	require.NotZero(t, stored.ID)
	require.NotEqual(t, uuid.Nil, stored.UUID)
	require.False(t, stored.ChangedAt.IsZero())
	require.Len(t, stored.Items, 2)
	require.Equal(t, stored.ID, stored.Items[0].CartID)

	loaded, err := pg.CartByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, owner, loaded.OwnerID)
	require.Equal(t, domain.CartStateDraft, loaded.State)
	require.Equal(t, "apple", loaded.Items[0].Title)
	require.Equal(t, "pear", loaded.Items[1].Title)
	require.Equal(t, 2, loaded.Items[1].Quantity)

	missing, err := pg.CartByID(ctx, stored.ID+1000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_StoreCart_AnonymousOwner(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	cart := newTestCart(domain.AnonymousUserID, domain.CartStateShared)
	cart.Email = "friend@example.com"

	stored, err := pg.StoreCart(ctx, cart)
	require.NoError(t, err)

	loaded, err := pg.CartByID(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, loaded.OwnerID.IsAnonymous())
	require.Equal(t, "friend@example.com", loaded.Email)
	require.Empty(t, loaded.Items)
}

func TestPgSQL_StoreCart_InsideTx_RolledBack(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := tx.StoreCart(ctx, newTestCart(domain.AnonymousUserID, domain.CartStateShared, "apple"))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	loaded, err := pg.CartByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestPgSQL_CartByID_DoesNotTouchChangedAt(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreCart(ctx, newTestCart(domain.AnonymousUserID, domain.CartStateShared, "apple"))
	require.NoError(t, err)

	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	setChangedAt(t, pg, stored.ID, past)

	for range 2 {
		loaded, err := pg.CartByID(ctx, stored.ID)
		require.NoError(t, err)
		require.True(t, past.Equal(loaded.ChangedAt))
	}
}

func TestPgSQL_ActiveCart(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := domain.UserID(uuid.New())

	active, err := pg.ActiveCart(ctx, owner, "default")
	require.NoError(t, err)
	require.Nil(t, active)

	older, err := pg.StoreCart(ctx, newTestCart(owner, domain.CartStateDraft))
	require.NoError(t, err)
	newer, err := pg.StoreCart(ctx, newTestCart(owner, domain.CartStateDraft))
	require.NoError(t, err)
	_, err = pg.StoreCart(ctx, newTestCart(owner, domain.CartStateShared))
	require.NoError(t, err)

	setChangedAt(t, pg, older.ID, time.Now().Add(-time.Hour))

	active, err = pg.ActiveCart(ctx, owner, "default")
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, newer.ID, active.ID)
}

func TestPgSQL_AddAndDeleteCartItems(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	stored, err := pg.StoreCart(ctx, newTestCart(domain.AnonymousUserID, domain.CartStateDraft, "apple"))
	require.NoError(t, err)

	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	setChangedAt(t, pg, stored.ID, past)

	added, err := pg.AddCartItems(ctx, stored.ID,
		domain.LineItem{Title: "pear", Quantity: 1},
		domain.LineItem{Title: "plum", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, added, 2)

	loaded, err := pg.CartByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 3)
	require.Equal(t, []string{"apple", "pear", "plum"},
		[]string{loaded.Items[0].Title, loaded.Items[1].Title, loaded.Items[2].Title})
	require.True(t, loaded.ChangedAt.After(past))

	require.NoError(t, pg.DeleteCartItems(ctx, stored.ID, added[0].ID))

	loaded, err = pg.CartByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	_, found := loaded.Item(added[0].ID)
	require.False(t, found)

	_, err = pg.AddCartItems(ctx, stored.ID+1000, domain.LineItem{Title: "ghost"})
	require.ErrorIs(t, err, storage.ErrCartNotFound)
}

func TestPgSQL_DeleteCarts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first, err := pg.StoreCart(ctx, newTestCart(domain.AnonymousUserID, domain.CartStateShared, "apple"))
	require.NoError(t, err)
	second, err := pg.StoreCart(ctx, newTestCart(domain.AnonymousUserID, domain.CartStateShared))
	require.NoError(t, err)

	deleted, err := pg.DeleteCarts(ctx, first.ID, second.ID, second.ID+1000)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	var items int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cart_items WHERE cart_id = $1`, int64(first.ID)).Scan(&items))
	require.Zero(t, items)

	deleted, err = pg.DeleteCarts(ctx, first.ID)
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestPgSQL_ExpirationCandidates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	cutoff := time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)

	_, err := pg.StoreOrderType(ctx, domain.OrderType{ID: "other", Label: "Other"})
	require.NoError(t, err)

	store := func(cart domain.Cart, changedAt time.Time) domain.CartID {
		stored, err := pg.StoreCart(ctx, cart)
		require.NoError(t, err)
		setChangedAt(t, pg, stored.ID, changedAt)

		return stored.ID
	}

	stale := store(newTestCart(domain.AnonymousUserID, domain.CartStateShared), cutoff.Add(-time.Hour))
	atCutoff := store(newTestCart(domain.AnonymousUserID, domain.CartStateShared), cutoff)
	store(newTestCart(domain.AnonymousUserID, domain.CartStateShared), cutoff.Add(time.Second))
	store(newTestCart(domain.AnonymousUserID, domain.CartStateDraft), cutoff.Add(-time.Hour))

	placed := newTestCart(domain.AnonymousUserID, domain.CartStateShared)
	placed.IsCart = false
	store(placed, cutoff.Add(-time.Hour))

	otherType := newTestCart(domain.AnonymousUserID, domain.CartStateShared)
	otherType.OrderType = "other"
	store(otherType, cutoff.Add(-time.Hour))

	ids, err := pg.ExpirationCandidates(ctx, "default", cutoff, 250)
	require.NoError(t, err)
	require.Equal(t, []domain.CartID{stale, atCutoff}, ids)

	ids, err = pg.ExpirationCandidates(ctx, "default", cutoff, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.CartID{stale}, ids)
}

func TestPgSQL_DeleteExpiredCarts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	cutoff := time.Now().UTC().AddDate(0, 0, -7)

	store := func(cart domain.Cart) domain.CartID {
		stored, err := pg.StoreCart(ctx, cart)
		require.NoError(t, err)
		setChangedAt(t, pg, stored.ID, cutoff.Add(-time.Hour))

		return stored.ID
	}

	stale := store(newTestCart(domain.AnonymousUserID, domain.CartStateShared, "apple"))
	reused := store(newTestCart(domain.AnonymousUserID, domain.CartStateShared, "pear"))
	draft := store(newTestCart(domain.AnonymousUserID, domain.CartStateDraft))
	placed := newTestCart(domain.AnonymousUserID, domain.CartStateShared)
	placed.IsCart = false
	placedID := store(placed)

	// changed after the expirer loaded it
	_, err := pg.AddCartItems(ctx, reused, domain.LineItem{Title: "plum", Quantity: 1})
	require.NoError(t, err)

	deleted, err := pg.DeleteExpiredCarts(ctx, "other", cutoff, stale)
	require.NoError(t, err)
	require.Zero(t, deleted)

	deleted, err = pg.DeleteExpiredCarts(ctx, "default", cutoff, stale, reused, draft, placedID)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	gone, err := pg.CartByID(ctx, stale)
	require.NoError(t, err)
	require.Nil(t, gone)
	for _, id := range []domain.CartID{reused, draft, placedID} {
		kept, err := pg.CartByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, kept, "cart %d", id)
	}

	deleted, err = pg.DeleteExpiredCarts(ctx, "default", cutoff)
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestPgSQL_UserByEmail(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var id uuid.UUID
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`INSERT INTO users (email) VALUES ($1) RETURNING id`, "Friend@Example.com").Scan(&id))

	user, err := pg.UserByEmail(ctx, "friend@example.COM")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, domain.UserID(id), user.ID)

	user, err = pg.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
