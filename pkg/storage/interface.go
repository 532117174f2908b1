// Package storage defines the persistence interfaces the application relies
// on. It abstracts cart, order type, user and job persistence together with
// transaction management so that backends (PostgreSQL) can provide concrete
// implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"sharecart/pkg/domain"
	"time"

	"github.com/riverqueue/river"
)

// CartStorage persists carts and their line items.
type CartStorage interface {
	// CartByID loads a cart with its items ordered by position. It never
	// mutates the cart, in particular it never touches changed_at. Returns
	// nil when the cart does not exist.
	CartByID(ctx context.Context, id domain.CartID) (*domain.Cart, error)
	// StoreCart inserts a cart together with its items and returns the stored
	// cart including generated IDs and timestamps. The cart and its items are
	// written atomically: outside a transaction the call opens its own.
	StoreCart(ctx context.Context, cart domain.Cart) (*domain.Cart, error)
	// ActiveCart returns the most recently changed draft cart of the given
	// owner and order type, or nil.
	ActiveCart(ctx context.Context, ownerID domain.UserID, orderType string) (*domain.Cart, error)
	// AddCartItems appends items to an existing cart and bumps its changed_at.
	AddCartItems(ctx context.Context, cartID domain.CartID, items ...domain.LineItem) ([]domain.LineItem, error)
	// DeleteCartItems removes the given items from a cart and bumps its changed_at.
	DeleteCartItems(ctx context.Context, cartID domain.CartID, ids ...domain.LineItemID) error
	// DeleteCarts hard deletes carts (items cascade) and returns the number
	// of carts removed. Missing IDs are ignored.
	DeleteCarts(ctx context.Context, ids ...domain.CartID) (int64, error)
	// DeleteExpiredCarts deletes those of ids that are still shared carts of
	// orderType last changed at or before cutoff. Carts reused in the
	// meantime are kept.
	DeleteExpiredCarts(ctx context.Context, orderType string, cutoff time.Time, ids ...domain.CartID) (int64, error)
	// ExpirationCandidates returns up to limit IDs of shared carts of the given
	// order type that are still carts and were last changed at or before
	// cutoff, ordered by ID.
	ExpirationCandidates(ctx context.Context, orderType string, cutoff time.Time, limit uint) ([]domain.CartID, error)
}

// OrderTypeStorage persists order type (bundle) configuration.
type OrderTypeStorage interface {
	// OrderTypes lists all order types ordered by ID.
	OrderTypes(ctx context.Context) ([]domain.OrderType, error)
	// OrderTypeByID returns the order type or nil when it does not exist.
	OrderTypeByID(ctx context.Context, id string) (*domain.OrderType, error)
	// StoreOrderType inserts or replaces an order type.
	StoreOrderType(ctx context.Context, orderType domain.OrderType) (*domain.OrderType, error)
}

// UserStorage resolves registered users.
type UserStorage interface {
	// UserByEmail returns the user with the given email (case-insensitive) or nil.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only when the transaction commits.
type JobStorage interface {
	// AddJob enqueues a new job. The boolean is false when the job was skipped
	// as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage is the composite of all domain storage capabilities.
type AllStorage interface {
	CartStorage
	OrderTypeStorage
	UserStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying resources (connection pool).
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits when cb
	// returns nil or rolls back otherwise. On a transactional handle cb joins
	// the running transaction.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
