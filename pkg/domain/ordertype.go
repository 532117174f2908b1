package domain

import (
	"fmt"
	"time"
)

// IntervalUnit is the time unit of an expiration interval.
type IntervalUnit string

const (
	IntervalUnitDay   IntervalUnit = "day"
	IntervalUnitWeek  IntervalUnit = "week"
	IntervalUnitMonth IntervalUnit = "month"
	IntervalUnitYear  IntervalUnit = "year"
)

// Valid reports whether u is one of the supported units.
func (u IntervalUnit) Valid() bool {
	switch u {
	case IntervalUnitDay, IntervalUnitWeek, IntervalUnitMonth, IntervalUnitYear:
		return true
	default:
		return false
	}
}

// ExpirationPolicy defines how long an unused shared cart of an order type
// may live.
type ExpirationPolicy struct {
	Count int          `json:"count"`
	Unit  IntervalUnit `json:"unit"`
}

// Validate checks that the policy has a positive count and a known unit.
func (p ExpirationPolicy) Validate() error {
	if p.Count <= 0 {
		return fmt.Errorf("expiration count must be positive, got %d", p.Count)
	}
	if !p.Unit.Valid() {
		return fmt.Errorf("unknown expiration unit %q", p.Unit)
	}

	return nil
}

// Cutoff returns now minus the policy interval. Months and years use
// calendar arithmetic, so a month back from March 31st normalizes the same
// way time.AddDate does.
func (p ExpirationPolicy) Cutoff(now time.Time) time.Time {
	switch p.Unit {
	case IntervalUnitWeek:
		return now.AddDate(0, 0, -7*p.Count)
	case IntervalUnitMonth:
		return now.AddDate(0, -p.Count, 0)
	case IntervalUnitYear:
		return now.AddDate(-p.Count, 0, 0)
	default:
		return now.AddDate(0, 0, -p.Count)
	}
}

func (p ExpirationPolicy) String() string {
	return fmt.Sprintf("%d %s", p.Count, p.Unit)
}

// ClaimSettings controls what happens to a shared cart when a recipient
// claims its items into their own cart.
type ClaimSettings struct {
	// DeleteClaimedItems removes claimed line items from the shared cart.
	DeleteClaimedItems bool `json:"deleteClaimedItems"`
	// DeleteSharedCart deletes the whole shared cart after a claim.
	DeleteSharedCart bool `json:"deleteSharedCart"`
}

// OrderType (bundle) is a configuration class of carts.
type OrderType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Expiration is nil when shared carts of this type never expire.
	Expiration *ExpirationPolicy `json:"expiration,omitempty"`
	Claim      ClaimSettings     `json:"claim"`
}
