package expiration

import (
	"context"
	"fmt"
	"sharecart/pkg/domain"
	"sharecart/pkg/storage"
)

// StoragePolicies reads policies from the order type table on every call, so
// a policy change is picked up by the next scan or batch.
type StoragePolicies struct {
	storage storage.OrderTypeStorage
}

func NewStoragePolicies(storage storage.OrderTypeStorage) *StoragePolicies {
	return &StoragePolicies{storage: storage}
}

func (p *StoragePolicies) Policy(ctx context.Context, orderType string) (*domain.ExpirationPolicy, error) {
	ot, err := p.storage.OrderTypeByID(ctx, orderType)
	if err != nil {
		return nil, fmt.Errorf("could not get order type %q: %w", orderType, err)
	}
	if ot == nil {
		return nil, nil
	}

	return ot.Expiration, nil
}

func (p *StoragePolicies) Expiring(ctx context.Context) ([]domain.OrderType, error) {
	all, err := p.storage.OrderTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list order types: %w", err)
	}

	expiring := make([]domain.OrderType, 0, len(all))
	for _, ot := range all {
		if ot.Expiration != nil {
			expiring = append(expiring, ot)
		}
	}

	return expiring, nil
}

// policyCache memoizes lookups for the lifetime of one batch.
type policyCache struct {
	provider PolicyProvider
	policies map[string]*domain.ExpirationPolicy
}

func newPolicyCache(provider PolicyProvider) *policyCache {
	return &policyCache{
		provider: provider,
		policies: map[string]*domain.ExpirationPolicy{},
	}
}

func (c *policyCache) Policy(ctx context.Context, orderType string) (*domain.ExpirationPolicy, error) {
	if p, ok := c.policies[orderType]; ok {
		return p, nil
	}

	p, err := c.provider.Policy(ctx, orderType)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	c.policies[orderType] = p

	return p, nil
}
