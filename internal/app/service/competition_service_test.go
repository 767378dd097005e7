package service

import (
	"context"
	"testing"
	"time"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompetitionService() (*CompetitionService, *fakeCompetitionRepo, *fakeTeamRepo, *fakeScoreCache) {
	compRepo := newFakeCompetitionRepo()
	teamRepo := newFakeTeamRepo()
	scores := newFakeScoreCache()
	return NewCompetitionService(compRepo, teamRepo, scores), compRepo, teamRepo, scores
}

func validCompetitionRequest() CompetitionRequest {
	return CompetitionRequest{
		Name:       "Lycosidae CTF 2026",
		Organizer:  "lycosidae",
		InviteCode: "WOLF-SPIDER",
		StartDate:  time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
	}
}

func TestCompetitionService_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestCompetitionService()

	comp, err := svc.CreateCompetition(ctx, validCompetitionRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, comp.ID)

	byID, err := svc.GetCompetition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, comp.Name, byID.Name)

	byCode, err := svc.GetCompetitionByInviteCode(ctx, "WOLF-SPIDER")
	require.NoError(t, err)
	assert.Equal(t, comp.ID, byCode.ID)

	_, err = svc.GetCompetitionByInviteCode(ctx, "")
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = svc.CreateCompetition(ctx, CompetitionRequest{Name: "incomplete"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

// An update missing required fields must not blank the stored record.
func TestCompetitionService_UpdateRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestCompetitionService()

	comp, err := svc.CreateCompetition(ctx, validCompetitionRequest())
	require.NoError(t, err)

	_, err = svc.UpdateCompetition(ctx, comp.ID, CompetitionRequest{})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	partial := validCompetitionRequest()
	partial.InviteCode = ""
	_, err = svc.UpdateCompetition(ctx, comp.ID, partial)
	assert.ErrorIs(t, err, common.ErrBadRequest)

	kept, err := svc.GetCompetition(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lycosidae CTF 2026", kept.Name)
	assert.Equal(t, "WOLF-SPIDER", kept.InviteCode)
}

func TestCompetitionService_UpdateReplacesRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestCompetitionService()

	comp, err := svc.CreateCompetition(ctx, validCompetitionRequest())
	require.NoError(t, err)

	req := validCompetitionRequest()
	req.Name = "Lycosidae CTF 2027"
	updated, err := svc.UpdateCompetition(ctx, comp.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Lycosidae CTF 2027", updated.Name)
}

// Start after end is accepted: date ordering carries no invariant.
func TestCompetitionService_NoDateOrderingInvariant(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestCompetitionService()

	req := validCompetitionRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := svc.CreateCompetition(ctx, req)
	assert.NoError(t, err)
}

func TestCompetitionService_Leaderboard_CacheHit(t *testing.T) {
	ctx := context.Background()
	svc, compRepo, _, scores := newTestCompetitionService()

	comp := &model.Competition{ID: "c1", Name: "ctf", Organizer: "org", InviteCode: "x"}
	require.NoError(t, compRepo.Create(ctx, comp))

	require.NoError(t, scores.SetTeamScore(ctx, "c1", "team-a", 300))
	require.NoError(t, scores.SetTeamScore(ctx, "c1", "team-b", 500))

	standings, err := svc.Leaderboard(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "team-b", standings[0].TeamID)
	assert.Equal(t, 500, standings[0].Score)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "team-a", standings[1].TeamID)
}

func TestCompetitionService_Leaderboard_FallbackPrimesCache(t *testing.T) {
	ctx := context.Background()
	svc, compRepo, teamRepo, scores := newTestCompetitionService()

	comp := &model.Competition{ID: "c1", Name: "ctf", Organizer: "org", InviteCode: "x"}
	require.NoError(t, compRepo.Create(ctx, comp))
	require.NoError(t, teamRepo.Create(ctx, &model.Team{ID: "t1", Name: "alpha", CompetitionID: "c1", CreatorID: "u1", Score: 100}))
	require.NoError(t, teamRepo.Create(ctx, &model.Team{ID: "t2", Name: "beta", CompetitionID: "c1", CreatorID: "u2", Score: 250}))

	standings, err := svc.Leaderboard(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "t2", standings[0].TeamID)
	assert.Equal(t, "beta", standings[0].Name)

	assert.Equal(t, 250, scores.scores["c1"]["t2"], "fallback should prime the cache")
	assert.Equal(t, 100, scores.scores["c1"]["t1"])
}

func TestCompetitionService_Leaderboard_UnknownCompetition(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestCompetitionService()

	_, err := svc.Leaderboard(ctx, "missing", 10)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
