package service

import (
	"context"
	"strings"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"
)

// In-memory fakes standing in for Postgres and Redis. The fake
// transactor runs the function directly; fakes ignore the Querier.

type fakeTransactor struct{}

func (fakeTransactor) WithinTx(ctx context.Context, fn func(q repository.Querier) error) error {
	return fn(nil)
}

type fakeChecker struct {
	ids map[string]bool
}

func newFakeChecker(ids ...string) *fakeChecker {
	c := &fakeChecker{ids: make(map[string]bool)}
	for _, id := range ids {
		c.ids[id] = true
	}
	return c
}

func (c *fakeChecker) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	return c.ids[id], nil
}

type fakeLinkRepo struct {
	links map[string]model.Link
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[string]model.Link)}
}

func pairKey(kind model.LinkKind, leftID, rightID string) string {
	return strings.Join([]string{string(kind), leftID, rightID}, "|")
}

func (r *fakeLinkRepo) Insert(ctx context.Context, q repository.Querier, link *model.Link) error {
	key := pairKey(link.Kind, link.LeftID, link.RightID)
	if _, ok := r.links[key]; ok {
		return common.ErrDuplicateLink
	}
	r.links[key] = *link
	return nil
}

func (r *fakeLinkRepo) FindByPair(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID, rightID string) (*model.Link, error) {
	link, ok := r.links[pairKey(kind, leftID, rightID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &link, nil
}

func (r *fakeLinkRepo) DeleteByPair(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID, rightID string) (bool, error) {
	key := pairKey(kind, leftID, rightID)
	if _, ok := r.links[key]; !ok {
		return false, nil
	}
	delete(r.links, key)
	return true, nil
}

func (r *fakeLinkRepo) ListByLeft(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID string) ([]model.Link, error) {
	var out []model.Link
	for _, link := range r.links {
		if link.Kind == kind && link.LeftID == leftID {
			out = append(out, link)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return common.ErrConflict
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

type fakeTeamRepo struct {
	teams map[string]*model.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*model.Team)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, team *model.Team) error {
	clone := *team
	r.teams[team.ID] = &clone
	return nil
}

func (r *fakeTeamRepo) FindByID(ctx context.Context, id string) (*model.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *team
	return &clone, nil
}

func (r *fakeTeamRepo) ListByCompetition(ctx context.Context, competitionID string) ([]model.Team, error) {
	var out []model.Team
	for _, team := range r.teams {
		if team.CompetitionID == competitionID {
			out = append(out, *team)
		}
	}
	// score-descending, as the pg repository orders
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Score > out[i].Score {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(ctx context.Context, team *model.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *team
	r.teams[team.ID] = &clone
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.teams[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	_, ok := r.teams[id]
	return ok, nil
}

type fakeCompetitionRepo struct {
	competitions map[string]*model.Competition
}

func newFakeCompetitionRepo() *fakeCompetitionRepo {
	return &fakeCompetitionRepo{competitions: make(map[string]*model.Competition)}
}

func (r *fakeCompetitionRepo) Create(ctx context.Context, comp *model.Competition) error {
	for _, existing := range r.competitions {
		if existing.InviteCode == comp.InviteCode {
			return common.ErrConflict
		}
	}
	clone := *comp
	r.competitions[comp.ID] = &clone
	return nil
}

func (r *fakeCompetitionRepo) FindByID(ctx context.Context, id string) (*model.Competition, error) {
	comp, ok := r.competitions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *comp
	return &clone, nil
}

func (r *fakeCompetitionRepo) FindByInviteCode(ctx context.Context, inviteCode string) (*model.Competition, error) {
	for _, comp := range r.competitions {
		if comp.InviteCode == inviteCode {
			clone := *comp
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeCompetitionRepo) Update(ctx context.Context, comp *model.Competition) error {
	if _, ok := r.competitions[comp.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *comp
	r.competitions[comp.ID] = &clone
	return nil
}

func (r *fakeCompetitionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.competitions[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.competitions, id)
	return nil
}

func (r *fakeCompetitionRepo) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	_, ok := r.competitions[id]
	return ok, nil
}

type fakeExerciseRepo struct {
	exercises map[string]*model.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[string]*model.Exercise)}
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *model.Exercise) error {
	clone := *exercise
	r.exercises[exercise.ID] = &clone
	return nil
}

func (r *fakeExerciseRepo) FindByID(ctx context.Context, id string) (*model.Exercise, error) {
	exercise, ok := r.exercises[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *exercise
	return &clone, nil
}

func (r *fakeExerciseRepo) Update(ctx context.Context, exercise *model.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return common.ErrNotFound
	}
	clone := *exercise
	r.exercises[exercise.ID] = &clone
	return nil
}

func (r *fakeExerciseRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.exercises[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

func (r *fakeExerciseRepo) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	_, ok := r.exercises[id]
	return ok, nil
}

type fakeScoreCache struct {
	scores map[string]map[string]int // competitionID -> teamID -> score
}

func newFakeScoreCache() *fakeScoreCache {
	return &fakeScoreCache{scores: make(map[string]map[string]int)}
}

func (c *fakeScoreCache) SetTeamScore(ctx context.Context, competitionID, teamID string, score int) error {
	if c.scores[competitionID] == nil {
		c.scores[competitionID] = make(map[string]int)
	}
	c.scores[competitionID][teamID] = score
	return nil
}

func (c *fakeScoreCache) RemoveTeam(ctx context.Context, competitionID, teamID string) error {
	delete(c.scores[competitionID], teamID)
	return nil
}

func (c *fakeScoreCache) TopTeams(ctx context.Context, competitionID string, limit int) ([]model.TeamStanding, error) {
	set := c.scores[competitionID]
	var standings []model.TeamStanding
	for teamID, score := range set {
		standings = append(standings, model.TeamStanding{TeamID: teamID, Score: score})
	}
	for i := 0; i < len(standings); i++ {
		for j := i + 1; j < len(standings); j++ {
			if standings[j].Score > standings[i].Score {
				standings[i], standings[j] = standings[j], standings[i]
			}
		}
	}
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}
