// Package sharing lets cart owners hand out signed links to duplicates of
// their carts, and lets recipients open and claim them.
package sharing

import (
	"context"
	"sharecart/pkg/domain"
)

//go:generate mockgen -package mocksharing -source=interface.go -destination=mock/mocksharing.go *

// Sharing is the use case layer behind the share endpoints.
type Sharing interface {
	// Share duplicates a cart into a new shared cart for recipientEmail
	// (optional) and returns it together with a signed link.
	Share(ctx context.Context, requester domain.Requester, cartID domain.CartID, recipientEmail string) (*SharedCart, error)
	// Access loads the cart behind a link and checks the requester may open
	// it. A denied access is a Decision, not an error.
	Access(ctx context.Context, requester domain.Requester, link Link) (*domain.Cart, Decision, error)
	// Claim copies the selected items of a shared cart into the requester's
	// active cart of the same order type and returns that cart.
	Claim(ctx context.Context, requester domain.Requester, link Link, itemIDs []domain.LineItemID) (*domain.Cart, error)
}

// PolicyResolver resolves the expiration policy of an order type, nil when
// carts of that type never expire.
type PolicyResolver interface {
	Policy(ctx context.Context, orderType string) (*domain.ExpirationPolicy, error)
}
