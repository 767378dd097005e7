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

type CompetitionRepository interface {
	Create(ctx context.Context, comp *model.Competition) error
	FindByID(ctx context.Context, id string) (*model.Competition, error)
	FindByInviteCode(ctx context.Context, inviteCode string) (*model.Competition, error)
	Update(ctx context.Context, comp *model.Competition) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}

type pgCompetitionRepository struct {
	db *sql.DB
}

func NewPgCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &pgCompetitionRepository{db: db}
}

const competitionColumns = `id, name, organizer, invite_code, start_date, end_date, created_at, updated_at`

func (r *pgCompetitionRepository) Create(ctx context.Context, comp *model.Competition) error {
	query := `INSERT INTO competitions (id, name, organizer, invite_code, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		comp.ID, comp.Name, comp.Organizer, comp.InviteCode, comp.StartDate, comp.EndDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("competition with given invite code already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgCompetitionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCompetitionRepository) FindByID(ctx context.Context, id string) (*model.Competition, error) {
	return r.findBy(ctx, "id", id)
}

func (r *pgCompetitionRepository) FindByInviteCode(ctx context.Context, inviteCode string) (*model.Competition, error) {
	return r.findBy(ctx, "invite_code", inviteCode)
}

func (r *pgCompetitionRepository) findBy(ctx context.Context, column, value string) (*model.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE ` + column + ` = $1`
	comp := &model.Competition{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&comp.ID, &comp.Name, &comp.Organizer, &comp.InviteCode, &comp.StartDate, &comp.EndDate, &comp.CreatedAt, &comp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCompetitionRepository.findBy %s: %w", column, err)
	}
	return comp, nil
}

func (r *pgCompetitionRepository) Update(ctx context.Context, comp *model.Competition) error {
	query := `UPDATE competitions SET name = $2, organizer = $3, invite_code = $4, start_date = $5, end_date = $6, updated_at = now()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		comp.ID, comp.Name, comp.Organizer, comp.InviteCode, comp.StartDate, comp.EndDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("competition with given invite code already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgCompetitionRepository.Update: %w", err)
	}
	return requireRowAffected(res, "pgCompetitionRepository.Update")
}

func (r *pgCompetitionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM competitions WHERE id = $1`, id)
	if err != nil {
		return mapDeleteRestricted(err, "competition", "pgCompetitionRepository.Delete")
	}
	return requireRowAffected(res, "pgCompetitionRepository.Delete")
}

func (r *pgCompetitionRepository) Exists(ctx context.Context, q Querier, id string) (bool, error) {
	if q == nil {
		q = r.db
	}
	return rowExists(ctx, q, `SELECT 1 FROM competitions WHERE id = $1`, id)
}
