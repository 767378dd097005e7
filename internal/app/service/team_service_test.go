package service

import (
	"context"
	"testing"

	"lycosidae/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateMirrorsScore(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo()
	scores := newFakeScoreCache()
	svc := NewTeamService(teamRepo, scores)

	team, err := svc.CreateTeam(ctx, TeamRequest{Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, scores.scores["c1"][team.ID])

	_, err = svc.CreateTeam(ctx, TeamRequest{Name: "", CompetitionID: "c1", CreatorID: "u1"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestTeamService_UpdateScoreAndCompetitionMove(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo()
	scores := newFakeScoreCache()
	svc := NewTeamService(teamRepo, scores)

	team, err := svc.CreateTeam(ctx, TeamRequest{Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 10})
	require.NoError(t, err)

	updated, err := svc.UpdateTeam(ctx, team.ID, TeamRequest{Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 120})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Score)
	assert.Equal(t, 120, scores.scores["c1"][team.ID])

	// Moving competitions evicts the stale leaderboard entry.
	_, err = svc.UpdateTeam(ctx, team.ID, TeamRequest{Name: "alpha", CompetitionID: "c2", CreatorID: "u1", Score: 120})
	require.NoError(t, err)
	_, stale := scores.scores["c1"][team.ID]
	assert.False(t, stale)
	assert.Equal(t, 120, scores.scores["c2"][team.ID])
}

// An update missing required fields must not blank the stored record.
func TestTeamService_UpdateRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo()
	scores := newFakeScoreCache()
	svc := NewTeamService(teamRepo, scores)

	team, err := svc.CreateTeam(ctx, TeamRequest{Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 40})
	require.NoError(t, err)

	_, err = svc.UpdateTeam(ctx, team.ID, TeamRequest{})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = svc.UpdateTeam(ctx, team.ID, TeamRequest{Name: "alpha", Score: 99})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	kept, err := svc.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "alpha", kept.Name)
	assert.Equal(t, "c1", kept.CompetitionID)
	assert.Equal(t, 40, kept.Score)
}

func TestTeamService_DeleteEvictsLeaderboard(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo()
	scores := newFakeScoreCache()
	svc := NewTeamService(teamRepo, scores)

	team, err := svc.CreateTeam(ctx, TeamRequest{Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 40})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeam(ctx, team.ID))
	_, present := scores.scores["c1"][team.ID]
	assert.False(t, present)

	assert.ErrorIs(t, svc.DeleteTeam(ctx, team.ID), common.ErrNotFound)
}
