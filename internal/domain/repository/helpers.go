package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lycosidae/internal/common"

	"github.com/jackc/pgx/v5/pgconn"
)

// rowExists runs a `SELECT 1 ... WHERE id = $1` style probe.
func rowExists(ctx context.Context, q Querier, query, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("existence probe: %w", err)
	}
	return true, nil
}

// requireRowAffected turns a zero-row UPDATE/DELETE into ErrNotFound.
func requireRowAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// mapDeleteRestricted translates a foreign-key violation on entity
// deletion into a conflict: link rows still reference the entity, and
// the schema restricts rather than cascades.
func mapDeleteRestricted(err error, entity, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%s is still referenced by relationship records: %w", entity, common.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
