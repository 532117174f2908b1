package storage

import "errors"

var (
	// ErrAlreadyInTx is returned when a transaction is started from a
	// handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a
	// transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrCartNotFound is returned by writes that target a missing cart.
	ErrCartNotFound = errors.New("cart not found")
)
