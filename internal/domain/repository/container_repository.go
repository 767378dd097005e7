package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
)

type ContainerRepository interface {
	Create(ctx context.Context, container *model.Container) error
	FindByID(ctx context.Context, id string) (*model.Container, error)
	ListExpired(ctx context.Context, now time.Time) ([]model.Container, error)
	Update(ctx context.Context, container *model.Container) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}

type pgContainerRepository struct {
	db *sql.DB
}

func NewPgContainerRepository(db *sql.DB) ContainerRepository {
	return &pgContainerRepository{db: db}
}

func (r *pgContainerRepository) Create(ctx context.Context, container *model.Container) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO containers (id, deadline) VALUES ($1, $2)`, container.ID, container.Deadline)
	if err != nil {
		return fmt.Errorf("pgContainerRepository.Create: %w", err)
	}
	return nil
}

func (r *pgContainerRepository) FindByID(ctx context.Context, id string) (*model.Container, error) {
	query := `SELECT id, deadline, created_at, updated_at FROM containers WHERE id = $1`
	container := &model.Container{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&container.ID, &container.Deadline, &container.CreatedAt, &container.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgContainerRepository.FindByID: %w", err)
	}
	return container, nil
}

// ListExpired returns containers whose deadline has passed; the expiry
// worker uses it to detach them from competitions.
func (r *pgContainerRepository) ListExpired(ctx context.Context, now time.Time) ([]model.Container, error) {
	query := `SELECT id, deadline, created_at, updated_at FROM containers WHERE deadline < $1`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("pgContainerRepository.ListExpired: %w", err)
	}
	defer rows.Close()

	var containers []model.Container
	for rows.Next() {
		var container model.Container
		if err := rows.Scan(&container.ID, &container.Deadline, &container.CreatedAt, &container.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgContainerRepository.ListExpired scan: %w", err)
		}
		containers = append(containers, container)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgContainerRepository.ListExpired rows: %w", err)
	}
	return containers, nil
}

func (r *pgContainerRepository) Update(ctx context.Context, container *model.Container) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE containers SET deadline = $2, updated_at = now() WHERE id = $1`, container.ID, container.Deadline)
	if err != nil {
		return fmt.Errorf("pgContainerRepository.Update: %w", err)
	}
	return requireRowAffected(res, "pgContainerRepository.Update")
}

func (r *pgContainerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return mapDeleteRestricted(err, "container", "pgContainerRepository.Delete")
	}
	return requireRowAffected(res, "pgContainerRepository.Delete")
}

func (r *pgContainerRepository) Exists(ctx context.Context, q Querier, id string) (bool, error) {
	if q == nil {
		q = r.db
	}
	return rowExists(ctx, q, `SELECT 1 FROM containers WHERE id = $1`, id)
}
