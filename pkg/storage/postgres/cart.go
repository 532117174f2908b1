package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sharecart/pkg/domain"
	"sharecart/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	cartsTable     = "carts"
	cartItemsTable = "cart_items"
)

// CartByID loads a cart and its items. It is a plain read: changed_at is
// left untouched so expiration sees the same staleness signal the scan did.
func (p *PgSQL) CartByID(ctx context.Context, id domain.CartID) (*domain.Cart, error) {
	var row PgCart
	found, err := p.Builder.From(cartsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch cart by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.withItems(ctx, &row)
}

// StoreCart inserts the cart and its items. When called outside a
// transaction it opens one, so a cart is never visible without its items.
func (p *PgSQL) StoreCart(ctx context.Context, cart domain.Cart) (*domain.Cart, error) {
	if _, ok := p.DB.(*sql.DB); ok {
		var stored *domain.Cart
		err := p.WithTx(ctx, func(tx storage.AllStorage) error {
			var err error
			stored, err = tx.StoreCart(ctx, cart)

			return err
		})

		return stored, err
	}

	var pgCart PgCart
	pgCart.FromDomain(cart)

	var row PgCart
	if _, err := p.Builder.Insert(cartsTable).
		Rows(pgCart).
		Returning(&PgCart{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store cart into pg: %w", err)
	}

	stored := row.ToDomain()
	items, err := p.insertItems(ctx, stored.ID, 0, cart.Items)
	if err != nil {
		return nil, err
	}
	stored.Items = items

	return stored, nil
}

// ActiveCart returns the most recently changed draft cart of the owner.
func (p *PgSQL) ActiveCart(ctx context.Context, ownerID domain.UserID, orderType string) (*domain.Cart, error) {
	var row PgCart
	found, err := p.Builder.From(cartsTable).
		Where(
			goqu.I("owner_id").Eq(uuid.UUID(ownerID)),
			goqu.I("order_type").Eq(orderType),
			goqu.I("state").Eq(string(domain.CartStateDraft)),
			goqu.I("is_cart").IsTrue(),
		).
		Order(goqu.I("changed_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active cart: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.withItems(ctx, &row)
}

// AddCartItems appends items after the last position of the cart and bumps
// changed_at. storage.ErrCartNotFound is returned for a missing cart.
func (p *PgSQL) AddCartItems(ctx context.Context,
	cartID domain.CartID,
	items ...domain.LineItem) ([]domain.LineItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	if err := p.touchCart(ctx, cartID); err != nil {
		return nil, err
	}

	var last sql.NullInt64
	if _, err := p.Builder.From(cartItemsTable).
		Select(goqu.MAX("position")).
		Where(goqu.I("cart_id").Eq(int64(cartID))).
		Executor().ScanValContext(ctx, &last); err != nil {
		return nil, fmt.Errorf("could not fetch last item position: %w", err)
	}

	next := 0
	if last.Valid {
		next = int(last.Int64) + 1
	}

	return p.insertItems(ctx, cartID, next, items)
}

// DeleteCartItems removes items of a cart and bumps its changed_at.
func (p *PgSQL) DeleteCartItems(ctx context.Context, cartID domain.CartID, ids ...domain.LineItemID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := p.touchCart(ctx, cartID); err != nil {
		return err
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	if _, err := p.Builder.Delete(cartItemsTable).
		Where(
			goqu.I("cart_id").Eq(int64(cartID)),
			goqu.I("id").In(raw),
		).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete cart items in pg: %w", err)
	}

	return nil
}

// DeleteCarts removes carts in a single statement; items go with them
// through ON DELETE CASCADE.
func (p *PgSQL) DeleteCarts(ctx context.Context, ids ...domain.CartID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	res, err := p.Builder.Delete(cartsTable).
		Where(goqu.I("id").In(raw)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete carts in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted cart count: %w", err)
	}

	return n, nil
}

// DeleteExpiredCarts repeats the candidate predicate in the DELETE itself, so
// a cart changed after it was loaded survives.
func (p *PgSQL) DeleteExpiredCarts(ctx context.Context,
	orderType string,
	cutoff time.Time,
	ids ...domain.CartID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	res, err := p.Builder.Delete(cartsTable).
		Where(
			goqu.I("id").In(raw),
			goqu.I("order_type").Eq(orderType),
			goqu.I("state").Eq(string(domain.CartStateShared)),
			goqu.I("is_cart").IsTrue(),
			goqu.I("changed_at").Lte(cutoff),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired carts in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read deleted cart count: %w", err)
	}

	return n, nil
}

// ExpirationCandidates lists shared carts of the order type that were not
// changed since cutoff.
func (p *PgSQL) ExpirationCandidates(ctx context.Context,
	orderType string,
	cutoff time.Time,
	limit uint) ([]domain.CartID, error) {
	var raw []int64
	if err := p.Builder.From(cartsTable).
		Select("id").
		Where(
			goqu.I("order_type").Eq(orderType),
			goqu.I("state").Eq(string(domain.CartStateShared)),
			goqu.I("is_cart").IsTrue(),
			goqu.I("changed_at").Lte(cutoff),
		).
		Order(goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanValsContext(ctx, &raw); err != nil {
		return nil, fmt.Errorf("could not fetch expiration candidates from pg: %w", err)
	}

	ids := make([]domain.CartID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, domain.CartID(id))
	}

	return ids, nil
}

func (p *PgSQL) withItems(ctx context.Context, row *PgCart) (*domain.Cart, error) {
	var items []PgLineItem
	if err := p.Builder.From(cartItemsTable).
		Where(goqu.I("cart_id").Eq(row.ID)).
		Order(goqu.I("position").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &items); err != nil {
		return nil, fmt.Errorf("could not fetch cart items: %w", err)
	}

	cart := row.ToDomain()
	cart.Items = pgItemsToDomain(items)

	return cart, nil
}

func (p *PgSQL) insertItems(ctx context.Context,
	cartID domain.CartID,
	firstPosition int,
	items []domain.LineItem) ([]domain.LineItem, error) {
	if len(items) == 0 {
		return []domain.LineItem{}, nil
	}

	rows := make([]PgLineItem, len(items))
	for i, item := range items {
		rows[i].FromDomain(cartID, firstPosition+i, item)
	}

	var stored []PgLineItem
	if err := p.Builder.Insert(cartItemsTable).
		Rows(rows).
		Returning(&PgLineItem{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store cart items into pg: %w", err)
	}

	return pgItemsToDomain(stored), nil
}

func (p *PgSQL) touchCart(ctx context.Context, cartID domain.CartID) error {
	res, err := p.Builder.Update(cartsTable).
		Set(goqu.Record{"changed_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(int64(cartID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not touch cart in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read touched cart count: %w", err)
	}
	if n == 0 {
		return storage.ErrCartNotFound
	}

	return nil
}
