package repository

import (
	"context"
	"database/sql"
)

// Querier is the slice of database/sql shared by *sql.DB and *sql.Tx.
// Repository methods that must run inside a caller-owned transaction
// take one; passing nil makes the repository fall back to its own pool.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ExistenceChecker is the per-entity adapter the link service consults
// before creating an association. Every entity repository implements it.
type ExistenceChecker interface {
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}
