package postgres

import (
	"context"
	"fmt"
	"sharecart/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	orderTypesTable = "order_types"
)

func (p *PgSQL) OrderTypes(ctx context.Context) ([]domain.OrderType, error) {
	var rows []PgOrderType
	if err := p.Builder.From(orderTypesTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch order types from pg: %w", err)
	}

	out := make([]domain.OrderType, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) OrderTypeByID(ctx context.Context, id string) (*domain.OrderType, error) {
	var row PgOrderType
	found, err := p.Builder.From(orderTypesTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order type by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreOrderType upserts the order type by ID, replacing every setting.
func (p *PgSQL) StoreOrderType(ctx context.Context, orderType domain.OrderType) (*domain.OrderType, error) {
	var pgOrderType PgOrderType
	pgOrderType.FromDomain(orderType)

	var row PgOrderType
	if _, err := p.Builder.Insert(orderTypesTable).
		Rows(pgOrderType).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"label":                goqu.L("EXCLUDED.label"),
			"expiration_count":     goqu.L("EXCLUDED.expiration_count"),
			"expiration_unit":      goqu.L("EXCLUDED.expiration_unit"),
			"delete_claimed_items": goqu.L("EXCLUDED.delete_claimed_items"),
			"delete_shared_cart":   goqu.L("EXCLUDED.delete_shared_cart"),
		})).
		Returning(&PgOrderType{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store order type into pg: %w", err)
	}

	return row.ToDomain(), nil
}
