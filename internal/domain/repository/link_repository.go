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

// LinkRepository persists the six association tables. Write methods
// take a Querier so the link service can run its existence check,
// uniqueness check, and write on one transactional connection.
type LinkRepository interface {
	Insert(ctx context.Context, q Querier, link *model.Link) error
	FindByPair(ctx context.Context, q Querier, kind model.LinkKind, leftID, rightID string) (*model.Link, error)
	DeleteByPair(ctx context.Context, q Querier, kind model.LinkKind, leftID, rightID string) (bool, error)
	ListByLeft(ctx context.Context, q Querier, kind model.LinkKind, leftID string) ([]model.Link, error)
}

type pgLinkRepository struct {
	db *sql.DB
}

func NewPgLinkRepository(db *sql.DB) LinkRepository {
	return &pgLinkRepository{db: db}
}

func (r *pgLinkRepository) querier(q Querier) Querier {
	if q == nil {
		return r.db
	}
	return q
}

func specFor(kind model.LinkKind) (model.LinkSpec, error) {
	spec, ok := model.SpecFor(kind)
	if !ok {
		return model.LinkSpec{}, fmt.Errorf("unknown link kind %q: %w", kind, common.ErrBadRequest)
	}
	return spec, nil
}

func (r *pgLinkRepository) Insert(ctx context.Context, q Querier, link *model.Link) error {
	spec, err := specFor(link.Kind)
	if err != nil {
		return err
	}
	// Table and column names come from the static kind registry, never
	// from request input.
	query := fmt.Sprintf(`INSERT INTO %s (id, %s, %s, created_at) VALUES ($1, $2, $3, $4)`,
		spec.Table, spec.LeftField, spec.RightField)
	_, err = r.querier(q).ExecContext(ctx, query, link.ID, link.LeftID, link.RightID, link.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // composite unique on (left, right): lost a concurrent create race
				return common.ErrDuplicateLink
			case "23503": // referenced entity deleted between check and insert
				return fmt.Errorf("referenced entity no longer exists: %w", common.ErrBadRequest)
			}
		}
		return fmt.Errorf("pgLinkRepository.Insert %s: %w", spec.Table, err)
	}
	return nil
}

func (r *pgLinkRepository) FindByPair(ctx context.Context, q Querier, kind model.LinkKind, leftID, rightID string) (*model.Link, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, %s, %s, created_at FROM %s WHERE %s = $1 AND %s = $2`,
		spec.LeftField, spec.RightField, spec.Table, spec.LeftField, spec.RightField)
	link := &model.Link{Kind: kind}
	err = r.querier(q).QueryRowContext(ctx, query, leftID, rightID).Scan(
		&link.ID, &link.LeftID, &link.RightID, &link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgLinkRepository.FindByPair %s: %w", spec.Table, err)
	}
	return link, nil
}

func (r *pgLinkRepository) DeleteByPair(ctx context.Context, q Querier, kind model.LinkKind, leftID, rightID string) (bool, error) {
	spec, err := specFor(kind)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		spec.Table, spec.LeftField, spec.RightField)
	res, err := r.querier(q).ExecContext(ctx, query, leftID, rightID)
	if err != nil {
		return false, fmt.Errorf("pgLinkRepository.DeleteByPair %s: %w", spec.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("pgLinkRepository.DeleteByPair %s: %w", spec.Table, err)
	}
	return n > 0, nil
}

func (r *pgLinkRepository) ListByLeft(ctx context.Context, q Querier, kind model.LinkKind, leftID string) ([]model.Link, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT id, %s, %s, created_at FROM %s WHERE %s = $1`,
		spec.LeftField, spec.RightField, spec.Table, spec.LeftField)
	rows, err := r.querier(q).QueryContext(ctx, query, leftID)
	if err != nil {
		return nil, fmt.Errorf("pgLinkRepository.ListByLeft %s: %w", spec.Table, err)
	}
	defer rows.Close()

	var links []model.Link
	for rows.Next() {
		link := model.Link{Kind: kind}
		if err := rows.Scan(&link.ID, &link.LeftID, &link.RightID, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgLinkRepository.ListByLeft %s scan: %w", spec.Table, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgLinkRepository.ListByLeft %s rows: %w", spec.Table, err)
	}
	return links, nil
}
