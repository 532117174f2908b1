package postgres

import (
	"context"
	"fmt"
	"sharecart/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// UserByEmail matches emails case-insensitively, using the LOWER(email) index.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.L("LOWER(email)").Eq(strings.ToLower(strings.TrimSpace(email)))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
