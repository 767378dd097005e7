package service

import (
	"context"
	"log"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
)

type TeamService struct {
	teamRepo repository.TeamRepository
	scores   ScoreCache
}

func NewTeamService(teamRepo repository.TeamRepository, scores ScoreCache) *TeamService {
	return &TeamService{teamRepo: teamRepo, scores: scores}
}

type TeamRequest struct {
	Name          string `json:"name"`
	CompetitionID string `json:"competition_id"`
	CreatorID     string `json:"creator_id"`
	Score         int    `json:"score"`
}

// validate rejects missing required fields. Updates replace the whole
// record, so they carry the same requirements as creates.
func (req TeamRequest) validate() error {
	if req.Name == "" || req.CompetitionID == "" || req.CreatorID == "" {
		return common.Errorf("name, competition_id and creator_id are required: %w", common.ErrBadRequest)
	}
	return nil
}

func (s *TeamService) CreateTeam(ctx context.Context, req TeamRequest) (*model.Team, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	team := &model.Team{
		ID:            uuid.NewString(),
		Name:          req.Name,
		CompetitionID: req.CompetitionID,
		CreatorID:     req.CreatorID,
		Score:         req.Score,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	s.mirrorScore(ctx, team)
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, req TeamRequest) (*model.Team, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousCompetition := team.CompetitionID
	team.Name = req.Name
	team.CompetitionID = req.CompetitionID
	team.CreatorID = req.CreatorID
	team.Score = req.Score

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	if previousCompetition != team.CompetitionID {
		if err := s.scores.RemoveTeam(ctx, previousCompetition, team.ID); err != nil {
			log.Printf("WARN: failed to evict team %s from leaderboard %s: %v", team.ID, previousCompetition, err)
		}
	}
	s.mirrorScore(ctx, team)
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.scores.RemoveTeam(ctx, team.CompetitionID, team.ID); err != nil {
		log.Printf("WARN: failed to evict team %s from leaderboard %s: %v", team.ID, team.CompetitionID, err)
	}
	return nil
}

// mirrorScore keeps the Redis leaderboard in step with Postgres. Cache
// failures are logged, never surfaced: the database already holds the
// truth and the leaderboard read path falls back to it.
func (s *TeamService) mirrorScore(ctx context.Context, team *model.Team) {
	if err := s.scores.SetTeamScore(ctx, team.CompetitionID, team.ID, team.Score); err != nil {
		log.Printf("WARN: failed to mirror score for team %s: %v", team.ID, err)
	}
}
