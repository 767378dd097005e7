package service

import (
	"context"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
)

type ExerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo}
}

type ExerciseRequest struct {
	Link       string                   `json:"link"`
	Name       string                   `json:"name"`
	Score      int                      `json:"score"`
	Difficulty model.ExerciseDifficulty `json:"difficulty"`
	Port       *int                     `json:"port,omitempty"`
}

// validate rejects missing required fields. Updates replace the whole
// record, so they carry the same requirements as creates.
func (req ExerciseRequest) validate() error {
	if req.Link == "" || req.Name == "" || req.Difficulty == "" {
		return common.Errorf("link, name and difficulty are required: %w", common.ErrBadRequest)
	}
	return nil
}

func (s *ExerciseService) CreateExercise(ctx context.Context, req ExerciseRequest) (*model.Exercise, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	exercise := &model.Exercise{
		ID:         uuid.NewString(),
		Link:       req.Link,
		Name:       req.Name,
		Score:      req.Score,
		Difficulty: req.Difficulty,
		Port:       req.Port,
	}
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) GetExercise(ctx context.Context, id string) (*model.Exercise, error) {
	return s.exerciseRepo.FindByID(ctx, id)
}

func (s *ExerciseService) UpdateExercise(ctx context.Context, id string, req ExerciseRequest) (*model.Exercise, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exercise.Link = req.Link
	exercise.Name = req.Name
	exercise.Score = req.Score
	exercise.Difficulty = req.Difficulty
	exercise.Port = req.Port

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) DeleteExercise(ctx context.Context, id string) error {
	return s.exerciseRepo.Delete(ctx, id)
}
