package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
)

// ScoreCache is the leaderboard mirror kept in Redis.
type ScoreCache interface {
	SetTeamScore(ctx context.Context, competitionID, teamID string, score int) error
	RemoveTeam(ctx context.Context, competitionID, teamID string) error
	TopTeams(ctx context.Context, competitionID string, limit int) ([]model.TeamStanding, error)
}

type CompetitionService struct {
	competitionRepo repository.CompetitionRepository
	teamRepo        repository.TeamRepository
	scores          ScoreCache
}

func NewCompetitionService(
	competitionRepo repository.CompetitionRepository,
	teamRepo repository.TeamRepository,
	scores ScoreCache,
) *CompetitionService {
	return &CompetitionService{competitionRepo: competitionRepo, teamRepo: teamRepo, scores: scores}
}

type CompetitionRequest struct {
	Name       string    `json:"name"`
	Organizer  string    `json:"organizer"`
	InviteCode string    `json:"invite_code"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// validate rejects missing required fields. Updates replace the whole
// record, so they carry the same requirements as creates.
func (req CompetitionRequest) validate() error {
	if req.Name == "" || req.Organizer == "" || req.InviteCode == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return common.Errorf("missing required competition fields: %w", common.ErrBadRequest)
	}
	// start_date/end_date ordering is deliberately not validated.
	return nil
}

func (s *CompetitionService) CreateCompetition(ctx context.Context, req CompetitionRequest) (*model.Competition, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	comp := &model.Competition{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Organizer:  req.Organizer,
		InviteCode: req.InviteCode,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if err := s.competitionRepo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *CompetitionService) GetCompetition(ctx context.Context, id string) (*model.Competition, error) {
	return s.competitionRepo.FindByID(ctx, id)
}

func (s *CompetitionService) GetCompetitionByInviteCode(ctx context.Context, inviteCode string) (*model.Competition, error) {
	if inviteCode == "" {
		return nil, common.Errorf("invite code is required: %w", common.ErrBadRequest)
	}
	return s.competitionRepo.FindByInviteCode(ctx, inviteCode)
}

func (s *CompetitionService) UpdateCompetition(ctx context.Context, id string, req CompetitionRequest) (*model.Competition, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	comp, err := s.competitionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comp.Name = req.Name
	comp.Organizer = req.Organizer
	comp.InviteCode = req.InviteCode
	comp.StartDate = req.StartDate
	comp.EndDate = req.EndDate

	if err := s.competitionRepo.Update(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *CompetitionService) DeleteCompetition(ctx context.Context, id string) error {
	return s.competitionRepo.Delete(ctx, id)
}

// Leaderboard returns teams best-first. It serves from the Redis
// sorted set when warm and falls back to Postgres otherwise,
// re-priming the cache on the way out.
func (s *CompetitionService) Leaderboard(ctx context.Context, competitionID string, limit int) ([]model.TeamStanding, error) {
	if _, err := s.competitionRepo.FindByID(ctx, competitionID); err != nil {
		return nil, err
	}

	standings, err := s.scores.TopTeams(ctx, competitionID, limit)
	if err != nil {
		log.Printf("WARN: leaderboard cache read failed for competition %s: %v", competitionID, err)
	}
	if len(standings) > 0 {
		return standings, nil
	}

	teams, err := s.teamRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("leaderboard fallback: %w", err)
	}

	standings = make([]model.TeamStanding, 0, len(teams))
	for i, team := range teams {
		standings = append(standings, model.TeamStanding{
			TeamID: team.ID,
			Name:   team.Name,
			Score:  team.Score,
			Rank:   i + 1,
		})
		if err := s.scores.SetTeamScore(ctx, competitionID, team.ID, team.Score); err != nil {
			log.Printf("WARN: leaderboard cache prime failed for team %s: %v", team.ID, err)
		}
	}
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings, nil
}
