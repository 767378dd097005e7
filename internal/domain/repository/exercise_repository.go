package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
)

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	FindByID(ctx context.Context, id string) (*model.Exercise, error)
	Update(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, q Querier, id string) (bool, error)
}

type pgExerciseRepository struct {
	db *sql.DB
}

func NewPgExerciseRepository(db *sql.DB) ExerciseRepository {
	return &pgExerciseRepository{db: db}
}

func (r *pgExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	query := `INSERT INTO exercises (id, link, name, score, difficulty, port)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		exercise.ID, exercise.Link, exercise.Name, exercise.Score, exercise.Difficulty, exercise.Port)
	if err != nil {
		return fmt.Errorf("pgExerciseRepository.Create: %w", err)
	}
	return nil
}

func (r *pgExerciseRepository) FindByID(ctx context.Context, id string) (*model.Exercise, error) {
	query := `SELECT id, link, name, score, difficulty, port, created_at, updated_at
	          FROM exercises WHERE id = $1`
	exercise := &model.Exercise{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exercise.ID, &exercise.Link, &exercise.Name, &exercise.Score, &exercise.Difficulty, &exercise.Port,
		&exercise.CreatedAt, &exercise.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgExerciseRepository.FindByID: %w", err)
	}
	return exercise, nil
}

func (r *pgExerciseRepository) Update(ctx context.Context, exercise *model.Exercise) error {
	query := `UPDATE exercises SET link = $2, name = $3, score = $4, difficulty = $5, port = $6, updated_at = now()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		exercise.ID, exercise.Link, exercise.Name, exercise.Score, exercise.Difficulty, exercise.Port)
	if err != nil {
		return fmt.Errorf("pgExerciseRepository.Update: %w", err)
	}
	return requireRowAffected(res, "pgExerciseRepository.Update")
}

func (r *pgExerciseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return mapDeleteRestricted(err, "exercise", "pgExerciseRepository.Delete")
	}
	return requireRowAffected(res, "pgExerciseRepository.Delete")
}

func (r *pgExerciseRepository) Exists(ctx context.Context, q Querier, id string) (bool, error) {
	if q == nil {
		q = r.db
	}
	return rowExists(ctx, q, `SELECT 1 FROM exercises WHERE id = $1`, id)
}
