package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartID identifies a cart (an order aggregate). Cart IDs are sequential
// integers assigned by storage.
type CartID int64

// LineItemID identifies a single line item.
type LineItemID int64

// CartState is the workflow state of a cart.
type CartState string

const (
	// CartStateDraft is the state of a regular, editable cart.
	CartStateDraft CartState = "draft"
	// CartStateShared marks a cart created by duplicating another cart for
	// sharing. Only shared carts are subject to expiration.
	CartStateShared CartState = "shared"
	// CartStateCompleted marks a cart that was checked out.
	CartStateCompleted CartState = "completed"
	// CartStateCanceled marks a cart that was abandoned on purpose.
	CartStateCanceled CartState = "canceled"
)

// LineItem is a single purchasable entry of a cart. Line items belong to
// exactly one cart and are copied by value when the cart is shared.
type LineItem struct {
	ID     LineItemID `json:"id"`
	CartID CartID     `json:"cartId"`

	// Title is the human readable name of the purchased entity.
	Title string `json:"title"`
	// SKU identifies the purchased entity.
	SKU string `json:"sku"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// UnitPrice is kept in minor units and carried over untouched.
	UnitPrice int64  `json:"unitPrice"`
	Currency  string `json:"currency"`

	CreatedAt time.Time `json:"createdAt"`
}

// Duplicate returns a copy of the item detached from its cart so it can be
// attached to another one.
func (li LineItem) Duplicate() LineItem {
	dup := li
	dup.ID = 0
	dup.CartID = 0
	dup.CreatedAt = time.Time{}

	return dup
}

// Cart is an order aggregate with its ordered line items.
type Cart struct {
	// ID is the storage assigned identifier.
	ID CartID `json:"id"`
	// UUID is a stable, globally unique identifier of the cart.
	UUID uuid.UUID `json:"uuid"`
	// OrderType is the bundle (order type) the cart belongs to.
	OrderType string `json:"orderType"`
	// Label is the human readable label of the cart.
	Label string `json:"label"`
	// State is the workflow state.
	State CartState `json:"state"`
	// IsCart is true while the order is still a cart (not placed).
	IsCart bool `json:"isCart"`
	// OwnerID is the owning user, AnonymousUserID for anonymous carts.
	OwnerID UserID `json:"ownerId"`
	// Email is the contact email of the owner, if any.
	Email string `json:"email,omitempty"`

	Items []LineItem `json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	// ChangedAt is the time of the last mutation. It is the staleness signal
	// used by shared cart expiration.
	ChangedAt time.Time `json:"changedAt"`
}

// Duplicate clones the cart and its items by value. The clone has no ID,
// a fresh UUID and no timestamps; storage assigns them on insert.
func (c Cart) Duplicate() Cart {
	dup := c
	dup.ID = 0
	dup.UUID = uuid.New()
	dup.CreatedAt = time.Time{}
	dup.ChangedAt = time.Time{}
	dup.Items = make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		dup.Items = append(dup.Items, item.Duplicate())
	}

	return dup
}

// Item returns the line item with the given ID.
func (c Cart) Item(id LineItemID) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}

	return LineItem{}, false
}
