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

type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id string) (*model.Team, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]model.Team, error)
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}

type pgTeamRepository struct {
	db *sql.DB
}

func NewPgTeamRepository(db *sql.DB) TeamRepository {
	return &pgTeamRepository{db: db}
}

const teamColumns = `id, name, competition_id, creator_id, score, created_at, updated_at`

func (r *pgTeamRepository) Create(ctx context.Context, team *model.Team) error {
	query := `INSERT INTO teams (id, name, competition_id, creator_id, score)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, team.ID, team.Name, team.CompetitionID, team.CreatorID, team.Score)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("team references a missing competition or creator: %w", common.ErrBadRequest)
		}
		return fmt.Errorf("pgTeamRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTeamRepository) FindByID(ctx context.Context, id string) (*model.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	team := &model.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.CompetitionID, &team.CreatorID, &team.Score, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTeamRepository.FindByID: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]model.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE competition_id = $1 ORDER BY score DESC, name ASC`
	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("pgTeamRepository.ListByCompetition: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var team model.Team
		if err := rows.Scan(
			&team.ID, &team.Name, &team.CompetitionID, &team.CreatorID, &team.Score, &team.CreatedAt, &team.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgTeamRepository.ListByCompetition scan: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTeamRepository.ListByCompetition rows: %w", err)
	}
	return teams, nil
}

func (r *pgTeamRepository) Update(ctx context.Context, team *model.Team) error {
	query := `UPDATE teams SET name = $2, competition_id = $3, creator_id = $4, score = $5, updated_at = now()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, team.ID, team.Name, team.CompetitionID, team.CreatorID, team.Score)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("team references a missing competition or creator: %w", common.ErrBadRequest)
		}
		return fmt.Errorf("pgTeamRepository.Update: %w", err)
	}
	return requireRowAffected(res, "pgTeamRepository.Update")
}

func (r *pgTeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return mapDeleteRestricted(err, "team", "pgTeamRepository.Delete")
	}
	return requireRowAffected(res, "pgTeamRepository.Delete")
}

func (r *pgTeamRepository) Exists(ctx context.Context, q Querier, id string) (bool, error) {
	if q == nil {
		q = r.db
	}
	return rowExists(ctx, q, `SELECT 1 FROM teams WHERE id = $1`, id)
}
