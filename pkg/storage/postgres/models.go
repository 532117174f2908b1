package postgres

import (
	"database/sql"
	"sharecart/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgCart struct {
	ID        int64          `db:"id"         goqu:"skipinsert"`
	UUID      uuid.UUID      `db:"uuid"`
	OrderType string         `db:"order_type"`
	Label     string         `db:"label"`
	State     string         `db:"state"`
	IsCart    bool           `db:"is_cart"`
	OwnerID   uuid.NullUUID  `db:"owner_id"`
	Email     sql.NullString `db:"email"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	ChangedAt time.Time `db:"changed_at" goqu:"skipinsert"`
}

func (p *PgCart) ToDomain() *domain.Cart {
	owner := domain.AnonymousUserID
	if p.OwnerID.Valid {
		owner = domain.UserID(p.OwnerID.UUID)
	}

	return &domain.Cart{
		ID:        domain.CartID(p.ID),
		UUID:      p.UUID,
		OrderType: p.OrderType,
		Label:     p.Label,
		State:     domain.CartState(p.State),
		IsCart:    p.IsCart,
		OwnerID:   owner,
		Email:     p.Email.String,
		CreatedAt: p.CreatedAt,
		ChangedAt: p.ChangedAt,
	}
}

func (p *PgCart) FromDomain(cart domain.Cart) {
	id := cart.UUID
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgCart{
		ID:        int64(cart.ID),
		UUID:      id,
		OrderType: cart.OrderType,
		Label:     cart.Label,
		State:     string(cart.State),
		IsCart:    cart.IsCart,
		// anonymous owners are stored as NULL
		OwnerID: uuid.NullUUID{
			UUID:  uuid.UUID(cart.OwnerID),
			Valid: !cart.OwnerID.IsAnonymous(),
		},
		Email: sql.NullString{
			String: cart.Email,
			Valid:  cart.Email != "",
		},
		CreatedAt: cart.CreatedAt,
		ChangedAt: cart.ChangedAt,
	}
}

type PgLineItem struct {
	ID        int64  `db:"id"         goqu:"skipinsert"`
	CartID    int64  `db:"cart_id"`
	Position  int    `db:"position"`
	Title     string `db:"title"`
	SKU       string `db:"sku"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
	Currency  string `db:"currency"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgLineItem) ToDomain() domain.LineItem {
	return domain.LineItem{
		ID:        domain.LineItemID(p.ID),
		CartID:    domain.CartID(p.CartID),
		Title:     p.Title,
		SKU:       p.SKU,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgLineItem) FromDomain(cartID domain.CartID, position int, item domain.LineItem) {
	*p = PgLineItem{
		CartID:    int64(cartID),
		Position:  position,
		Title:     item.Title,
		SKU:       item.SKU,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Currency:  item.Currency,
	}
}

func pgItemsToDomain(rows []PgLineItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type PgOrderType struct {
	ID                 string         `db:"id"`
	Label              string         `db:"label"`
	ExpirationCount    sql.NullInt32  `db:"expiration_count"`
	ExpirationUnit     sql.NullString `db:"expiration_unit"`
	DeleteClaimedItems bool           `db:"delete_claimed_items"`
	DeleteSharedCart   bool           `db:"delete_shared_cart"`
}

func (p *PgOrderType) ToDomain() *domain.OrderType {
	ot := &domain.OrderType{
		ID:    p.ID,
		Label: p.Label,
		Claim: domain.ClaimSettings{
			DeleteClaimedItems: p.DeleteClaimedItems,
			DeleteSharedCart:   p.DeleteSharedCart,
		},
	}
	if p.ExpirationCount.Valid && p.ExpirationUnit.Valid {
		ot.Expiration = &domain.ExpirationPolicy{
			Count: int(p.ExpirationCount.Int32),
			Unit:  domain.IntervalUnit(p.ExpirationUnit.String),
		}
	}

	return ot
}

func (p *PgOrderType) FromDomain(ot domain.OrderType) {
	*p = PgOrderType{
		ID:                 ot.ID,
		Label:              ot.Label,
		DeleteClaimedItems: ot.Claim.DeleteClaimedItems,
		DeleteSharedCart:   ot.Claim.DeleteSharedCart,
	}
	if ot.Expiration != nil {
		p.ExpirationCount = sql.NullInt32{Int32: int32(ot.Expiration.Count), Valid: true} //nolint: gosec
		p.ExpirationUnit = sql.NullString{String: string(ot.Expiration.Unit), Valid: true}
	}
}

type PgUser struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:    domain.UserID(p.ID),
		Email: p.Email,
	}
}
