// Package expiration discovers shared carts that outlived their order type's
// expiration policy and deletes them in batches.
//
// Discovery (Scanner) and deletion (Expirer) are decoupled by a Queue that
// delivers batches at least once. The Expirer re-validates every cart right
// before deleting it, so late, duplicate and overlapping batches are harmless.
package expiration

import (
	"context"
	"sharecart/pkg/domain"
)

//go:generate mockgen -package mockexpiration -source=interface.go -destination=mock/mockexpiration.go *

// PolicyProvider resolves per order type expiration policies.
type PolicyProvider interface {
	// Policy returns the policy of the order type, nil when carts of that
	// type never expire or the type does not exist.
	Policy(ctx context.Context, orderType string) (*domain.ExpirationPolicy, error)
	// Expiring lists the order types that have a policy.
	Expiring(ctx context.Context) ([]domain.OrderType, error)
}

// Queue hands batches of cart IDs to the Expirer.
//
// Delivery is at least once: a batch may be processed more than once, late,
// or concurrently with an overlapping batch from a later scan. A batch is
// never delivered partially.
type Queue interface {
	Enqueue(ctx context.Context, batch []domain.CartID) error
}

// Scanner finds expiration candidates and enqueues them. It never deletes.
type Scanner interface {
	Scan(ctx context.Context) (ScanReport, error)
}

// Expirer deletes the carts of a batch that still qualify for expiration.
type Expirer interface {
	Expire(ctx context.Context, batch []domain.CartID) (ExpireReport, error)
}
