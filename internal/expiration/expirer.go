package expiration

import (
	"context"
	"fmt"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	"sharecart/pkg/metrics"
	"sharecart/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ExpireReport summarizes one processed batch.
type ExpireReport struct {
	// Requested is the batch size.
	Requested int
	// Missing counts carts already gone, usually deleted by an earlier delivery.
	Missing int
	// Skipped counts carts that no longer qualify.
	Skipped int
	// Deleted is the number of carts actually removed.
	Deleted int64
}

type expiredGroup struct {
	orderType string
	cutoff    time.Time
	ids       []domain.CartID
}

type expirer struct {
	clock    clock.Clock
	policies PolicyProvider
	carts    storage.CartStorage

	deleted metric.Int64Counter
	skipped metric.Int64Counter
}

func NewExpirer(clk clock.Clock, policies PolicyProvider, carts storage.CartStorage) Expirer {
	return &expirer{
		clock:    clk,
		policies: policies,
		carts:    carts,

		deleted: metrics.Int64Counter("sharecart_expiration_deleted",
			"Shared carts deleted by expiration"),
		skipped: metrics.Int64Counter("sharecart_expiration_skipped",
			"Queued carts that no longer qualified for expiration"),
	}
}

// Expire deletes the carts of batch that still qualify at the current time.
// Policies are resolved now, not at scan time. Carts that are gone or no
// longer qualify are left out silently; storage failures are returned so the
// batch is delivered again.
func (e *expirer) Expire(ctx context.Context, batch []domain.CartID) (ExpireReport, error) {
	ctx, span := metrics.Tracer().Start(ctx, "expiration.Expire")
	defer span.End()

	report := ExpireReport{Requested: len(batch)}
	policies := newPolicyCache(e.policies)
	now := e.clock.Now()

	// survivors grouped by order type, each group deleted against its cutoff
	var groups []*expiredGroup
	byType := map[string]*expiredGroup{}
	for _, id := range batch {
		cart, err := e.carts.CartByID(ctx, id)
		if err != nil {
			return report, fmt.Errorf("could not load cart %d: %w", id, err)
		}
		if cart == nil {
			report.Missing++

			continue
		}

		policy, err := policies.Policy(ctx, cart.OrderType)
		if err != nil {
			return report, fmt.Errorf("could not resolve policy of cart %d: %w", id, err)
		}

		if !qualifies(cart, policy, now) {
			logger.Debug(ctx, "cart no longer qualifies for expiration", zap.Int64("cartID", int64(id)))
			report.Skipped++

			continue
		}

		group, ok := byType[cart.OrderType]
		if !ok {
			group = &expiredGroup{orderType: cart.OrderType, cutoff: policy.Cutoff(now)}
			byType[cart.OrderType] = group
			groups = append(groups, group)
		}
		group.ids = append(group.ids, id)
	}

	for _, group := range groups {
		deleted, err := e.carts.DeleteExpiredCarts(ctx, group.orderType, group.cutoff, group.ids...)
		if err != nil {
			return report, fmt.Errorf("could not delete expired carts: %w", err)
		}
		report.Deleted += deleted
		// changed between the re-check and the delete
		report.Skipped += len(group.ids) - int(deleted)
	}

	e.skipped.Add(ctx, int64(report.Skipped+report.Missing))
	e.deleted.Add(ctx, report.Deleted)

	if report.Deleted == 0 {
		return report, nil
	}

	logger.Info(ctx, "expired shared carts deleted",
		zap.Int("requested", report.Requested),
		zap.Int64("deleted", report.Deleted))

	return report, nil
}

// qualifies reports whether cart is an unused shared cart past its policy.
func qualifies(cart *domain.Cart, policy *domain.ExpirationPolicy, now time.Time) bool {
	if policy == nil {
		return false
	}

	return cart.IsCart &&
		cart.State == domain.CartStateShared &&
		!cart.ChangedAt.After(policy.Cutoff(now))
}
