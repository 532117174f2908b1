package domain

import (
	"slices"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
// The zero value identifies the anonymous user.
type UserID uuid.UUID

// AnonymousUserID is the owner marker used for carts that belong to nobody.
var AnonymousUserID = UserID(uuid.Nil) //nolint: gochecknoglobals

// IsAnonymous reports whether the ID is the anonymous marker.
func (id UserID) IsAnonymous() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// User is a registered account that carts can be shared with.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
}

// Permission is a capability granted to a requester, usually through the
// bearer token claims.
type Permission string

const (
	// PermissionAccessAnySharedCart lets a requester open shared carts owned by other users.
	PermissionAccessAnySharedCart Permission = "access any shared cart"
	// PermissionShareAnyCart lets a requester share carts they do not own.
	PermissionShareAnyCart Permission = "share any cart"
)

// Requester is the identity behind an incoming request. A zero UserID means
// the request is anonymous.
type Requester struct {
	UserID      UserID
	Permissions []Permission
}

// Anonymous returns a requester without identity or permissions.
func Anonymous() Requester {
	return Requester{UserID: AnonymousUserID}
}

func (r Requester) IsAnonymous() bool {
	return r.UserID.IsAnonymous()
}

// HasPermission reports whether the requester was granted p.
func (r Requester) HasPermission(p Permission) bool {
	return slices.Contains(r.Permissions, p)
}
