package sharing

import (
	"context"
	"errors"
	"fmt"
	"sharecart/internal/config"
	"sharecart/pkg/clock"
	"sharecart/pkg/domain"
	"sharecart/pkg/logger"
	"sharecart/pkg/metrics"
	"sharecart/pkg/serrors"
	"sharecart/pkg/storage"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// defaultCartLabel labels carts created to receive claimed items.
const defaultCartLabel = "Cart"

// Options configure link rendering.
type Options struct {
	// BaseURL is prepended to link paths in SharedCart.URL.
	BaseURL string
}

func NewOptions(cfg *config.Config) Options {
	return Options{BaseURL: cfg.Sharing.BaseURL}
}

// SharedCart is the result of sharing a cart.
type SharedCart struct {
	Cart *domain.Cart
	Link Link
	// URL is Link rendered against Options.BaseURL.
	URL string
}

// DeniedError is the cause of the ErrForbidden returned when a link does not
// grant access.
type DeniedError struct {
	Reason Reason
}

func (e *DeniedError) Error() string {
	return "shared cart access denied: " + string(e.Reason)
}

type service struct {
	options Options
	clock   clock.Clock
	guard   *Guard
	storage storage.Storage

	shares    metric.Int64Counter
	decisions metric.Int64Counter
	claims    metric.Int64Counter
}

func New(clk clock.Clock, guard *Guard, storage storage.Storage, options Options) Sharing {
	return &service{
		options: options,
		clock:   clk,
		guard:   guard,
		storage: storage,

		shares: metrics.Int64Counter("sharecart_shares",
			"Carts shared"),
		decisions: metrics.Int64Counter("sharecart_access_decisions",
			"Shared cart access checks by outcome"),
		claims: metrics.Int64Counter("sharecart_claims",
			"Shared cart claims"),
	}
}

// Share duplicates the cart by value and stores the copy in the shared state.
// When recipientEmail belongs to a registered user, that user owns the copy
// and their email is recorded; otherwise the copy is anonymous. The copy and
// its items are written in one transaction.
func (s *service) Share(ctx context.Context,
	requester domain.Requester,
	cartID domain.CartID,
	recipientEmail string) (*SharedCart, error) {
	if requester.IsAnonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "sharing a cart requires authentication")
	}

	ctx = logger.WithFields(ctx, zap.Int64("cartID", int64(cartID)))

	var shared *domain.Cart
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cart, err := tx.CartByID(ctx, cartID)
		if err != nil {
			return fmt.Errorf("could not get cart: %w", err)
		}
		if cart == nil {
			return serrors.With(serrors.ErrNotFound, "cart not found")
		}
		if cart.OwnerID != requester.UserID && !requester.HasPermission(domain.PermissionShareAnyCart) {
			return serrors.With(serrors.ErrForbidden, "only the owner can share this cart")
		}
		if !cart.IsCart {
			return serrors.With(serrors.ErrConflict, "cart %d was already placed as an order", cart.ID)
		}

		dup := cart.Duplicate()
		dup.State = domain.CartStateShared
		dup.OwnerID = domain.AnonymousUserID
		dup.Email = ""

		if email := strings.TrimSpace(recipientEmail); email != "" {
			recipient, err := tx.UserByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("could not resolve recipient: %w", err)
			}
			if recipient != nil {
				dup.OwnerID = recipient.ID
				dup.Email = recipient.Email
			}
		}

		shared, err = tx.StoreCart(ctx, dup)
		if err != nil {
			return fmt.Errorf("could not store shared cart: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not share cart: %w", err)
	}

	link := s.guard.Sign(shared, s.clock.Now().Unix())
	s.shares.Add(ctx, 1, metric.WithAttributes(attribute.String("order_type", shared.OrderType)))
	logger.Info(ctx, "cart shared",
		zap.Int64("sharedCartID", int64(shared.ID)),
		zap.Bool("anonymous", shared.OwnerID.IsAnonymous()))

	return &SharedCart{
		Cart: shared,
		Link: link,
		URL:  link.URL(s.options.BaseURL),
	}, nil
}

// Access never mutates the cart; opening a link does not count as using it.
func (s *service) Access(ctx context.Context,
	requester domain.Requester,
	link Link) (*domain.Cart, Decision, error) {
	cart, err := s.storage.CartByID(ctx, link.CartID)
	if err != nil {
		return nil, Decision{}, fmt.Errorf("could not get shared cart: %w", err)
	}
	if cart == nil {
		return nil, Decision{}, serrors.With(serrors.ErrNotFound, "cart not found")
	}

	decision, err := s.guard.Check(ctx, cart, link.Timestamp, link.Token, requester)
	if err != nil {
		return nil, Decision{}, err
	}

	outcome := "allowed"
	if !decision.Allowed {
		outcome = string(decision.Reason)
		logger.Debug(ctx, "shared cart access denied",
			zap.Int64("cartID", int64(cart.ID)),
			zap.String("reason", outcome))
	}
	s.decisions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	if !decision.Allowed {
		return nil, decision, nil
	}

	return cart, decision, nil
}

// Claim copies items by value. Depending on the order type's claim settings
// the claimed items are removed from the shared cart, or the shared cart is
// deleted. Everything happens in one transaction.
func (s *service) Claim(ctx context.Context,
	requester domain.Requester,
	link Link,
	itemIDs []domain.LineItemID) (*domain.Cart, error) {
	if requester.IsAnonymous() {
		return nil, serrors.With(serrors.ErrUnauthorized, "claiming items requires authentication")
	}
	if len(itemIDs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one item must be selected")
	}

	shared, decision, err := s.Access(ctx, requester, link)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, serrors.Wrap(serrors.ErrForbidden, &DeniedError{Reason: decision.Reason}, "%s", decision.Reason)
	}

	itemIDs = slices.Compact(slices.Sorted(slices.Values(itemIDs)))
	items := make([]domain.LineItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, ok := shared.Item(id)
		if !ok {
			return nil, serrors.With(serrors.ErrBadRequest, "item %d is not part of the shared cart", id)
		}
		items = append(items, item.Duplicate())
	}

	settings := domain.ClaimSettings{}
	orderType, err := s.storage.OrderTypeByID(ctx, shared.OrderType)
	if err != nil {
		return nil, fmt.Errorf("could not get order type: %w", err)
	}
	if orderType != nil {
		settings = orderType.Claim
	}

	var target *domain.Cart
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		active, err := tx.ActiveCart(ctx, requester.UserID, shared.OrderType)
		if err != nil {
			return fmt.Errorf("could not get active cart: %w", err)
		}
		if active == nil {
			active, err = tx.StoreCart(ctx, domain.Cart{
				OrderType: shared.OrderType,
				Label:     defaultCartLabel,
				State:     domain.CartStateDraft,
				IsCart:    true,
				OwnerID:   requester.UserID,
			})
			if err != nil {
				return fmt.Errorf("could not create cart: %w", err)
			}
		}

		if _, err := tx.AddCartItems(ctx, active.ID, items...); err != nil {
			return fmt.Errorf("could not add claimed items: %w", err)
		}

		switch {
		case settings.DeleteSharedCart:
			deleted, err := tx.DeleteCarts(ctx, shared.ID)
			if err != nil {
				return fmt.Errorf("could not delete shared cart: %w", err)
			}
			if deleted == 0 {
				return serrors.With(serrors.ErrConflict, "shared cart was deleted concurrently")
			}
		case settings.DeleteClaimedItems:
			if err := tx.DeleteCartItems(ctx, shared.ID, itemIDs...); err != nil {
				if errors.Is(err, storage.ErrCartNotFound) {
					return serrors.Wrap(serrors.ErrConflict, err, "shared cart was deleted concurrently")
				}

				return fmt.Errorf("could not remove claimed items: %w", err)
			}
		}

		target, err = tx.CartByID(ctx, active.ID)
		if err != nil {
			return fmt.Errorf("could not reload cart: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not claim items: %w", err)
	}

	s.claims.Add(ctx, 1, metric.WithAttributes(attribute.String("order_type", shared.OrderType)))
	logger.Info(ctx, "shared cart items claimed",
		zap.Int64("sharedCartID", int64(shared.ID)),
		zap.Int64("cartID", int64(target.ID)),
		zap.Int("items", len(items)))

	return target, nil
}
