package sharing

import (
	"context"
	"fmt"
	"sharecart/internal/token"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	"time"
)

// Reason tells why access to a shared cart was denied.
type Reason string

const (
	ReasonExpired      Reason = "expired"
	ReasonUnauthorized Reason = "unauthorized"
	ReasonInvalidToken Reason = "invalid-token"
)

// Decision is the outcome of an access check. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Guard decides whether a requester may open a shared cart link.
type Guard struct {
	clock    clock.Clock
	policies PolicyResolver
	tokens   *token.Service
}

func NewGuard(clk clock.Clock, policies PolicyResolver, tokens *token.Service) *Guard {
	return &Guard{clock: clk, policies: policies, tokens: tokens}
}

// Check evaluates, in order, link expiry, ownership and the token; the first
// failing check decides. Order types without a policy skip the expiry check.
// The only error is a failed policy lookup.
func (g *Guard) Check(ctx context.Context,
	cart *domain.Cart,
	timestamp int64,
	candidate string,
	requester domain.Requester) (Decision, error) {
	policy, err := g.policies.Policy(ctx, cart.OrderType)
	if err != nil {
		return Decision{}, fmt.Errorf("could not resolve expiration policy: %w", err)
	}

	if policy != nil && time.Unix(timestamp, 0).Before(policy.Cutoff(g.clock.Now())) {
		return deny(ReasonExpired), nil
	}

	if !requester.HasPermission(domain.PermissionAccessAnySharedCart) &&
		!cart.OwnerID.IsAnonymous() &&
		cart.OwnerID != requester.UserID {
		return deny(ReasonUnauthorized), nil
	}

	if !g.tokens.Verify(token.FieldsOf(cart, timestamp), candidate) {
		return deny(ReasonInvalidToken), nil
	}

	return allow(), nil
}

// Sign returns the link of cart for timestamp.
func (g *Guard) Sign(cart *domain.Cart, timestamp int64) Link {
	return Link{
		CartID:    cart.ID,
		Timestamp: timestamp,
		Token:     g.tokens.Sign(token.FieldsOf(cart, timestamp)),
	}
}
