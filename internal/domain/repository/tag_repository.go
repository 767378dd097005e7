package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	FindByID(ctx context.Context, id string) (*model.Tag, error)
	FindByType(ctx context.Context, tagType string) (*model.Tag, error)
	Update(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}

type pgTagRepository struct {
	db *sql.DB
}

func NewPgTagRepository(db *sql.DB) TagRepository {
	return &pgTagRepository{db: db}
}

func (r *pgTagRepository) Create(ctx context.Context, tag *model.Tag) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO tags (id, type) VALUES ($1, $2)`, tag.ID, tag.Type)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("tag with given type already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgTagRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTagRepository) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	return r.findBy(ctx, "id", id)
}

func (r *pgTagRepository) FindByType(ctx context.Context, tagType string) (*model.Tag, error) {
	return r.findBy(ctx, "type", tagType)
}

func (r *pgTagRepository) findBy(ctx context.Context, column, value string) (*model.Tag, error) {
	query := `SELECT id, type, created_at FROM tags WHERE ` + column + ` = $1`
	tag := &model.Tag{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(&tag.ID, &tag.Type, &tag.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTagRepository.findBy %s: %w", column, err)
	}
	return tag, nil
}

func (r *pgTagRepository) Update(ctx context.Context, tag *model.Tag) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tags SET type = $2 WHERE id = $1`, tag.ID, tag.Type)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("tag with given type already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgTagRepository.Update: %w", err)
	}
	return requireRowAffected(res, "pgTagRepository.Update")
}

func (r *pgTagRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return mapDeleteRestricted(err, "tag", "pgTagRepository.Delete")
	}
	return requireRowAffected(res, "pgTagRepository.Delete")
}

func (r *pgTagRepository) Exists(ctx context.Context, q Querier, id string) (bool, error) {
	if q == nil {
		q = r.db
	}
	return rowExists(ctx, q, `SELECT 1 FROM tags WHERE id = $1`, id)
}
