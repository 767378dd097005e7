package worker

import (
	"context"
	"testing"
	"time"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContainerRepo struct {
	containers map[string]*model.Container
}

func (r *stubContainerRepo) Create(ctx context.Context, c *model.Container) error {
	r.containers[c.ID] = c
	return nil
}

func (r *stubContainerRepo) FindByID(ctx context.Context, id string) (*model.Container, error) {
	c, ok := r.containers[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (r *stubContainerRepo) ListExpired(ctx context.Context, now time.Time) ([]model.Container, error) {
	var out []model.Container
	for _, c := range r.containers {
		if c.Expired(now) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubContainerRepo) Update(ctx context.Context, c *model.Container) error { return nil }
func (r *stubContainerRepo) Delete(ctx context.Context, id string) error          { return nil }

func (r *stubContainerRepo) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	_, ok := r.containers[id]
	return ok, nil
}

type stubTransactor struct{}

func (stubTransactor) WithinTx(ctx context.Context, fn func(q repository.Querier) error) error {
	return fn(nil)
}

type stubLinkRepo struct {
	links map[string]model.Link
}

func stubKey(kind model.LinkKind, leftID, rightID string) string {
	return string(kind) + "|" + leftID + "|" + rightID
}

func (r *stubLinkRepo) Insert(ctx context.Context, q repository.Querier, link *model.Link) error {
	r.links[stubKey(link.Kind, link.LeftID, link.RightID)] = *link
	return nil
}

func (r *stubLinkRepo) FindByPair(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID, rightID string) (*model.Link, error) {
	link, ok := r.links[stubKey(kind, leftID, rightID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &link, nil
}

func (r *stubLinkRepo) DeleteByPair(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID, rightID string) (bool, error) {
	key := stubKey(kind, leftID, rightID)
	if _, ok := r.links[key]; !ok {
		return false, nil
	}
	delete(r.links, key)
	return true, nil
}

func (r *stubLinkRepo) ListByLeft(ctx context.Context, q repository.Querier, kind model.LinkKind, leftID string) ([]model.Link, error) {
	var out []model.Link
	for _, link := range r.links {
		if link.Kind == kind && link.LeftID == leftID {
			out = append(out, link)
		}
	}
	return out, nil
}

func TestExpiryWorker_SweepDetachesExpiredContainers(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	containerRepo := &stubContainerRepo{containers: map[string]*model.Container{
		"expired": {ID: "expired", Deadline: now.Add(-time.Hour)},
		"live":    {ID: "live", Deadline: now.Add(time.Hour)},
	}}

	linkRepo := &stubLinkRepo{links: make(map[string]model.Link)}
	linkService := service.NewLinkService(linkRepo, map[model.EntityType]repository.ExistenceChecker{
		model.EntityContainer:   containerRepo,
		model.EntityCompetition: existsAlways{},
	}, stubTransactor{})

	_, err := linkService.CreateLink(ctx, model.LinkContainerCompetition, "expired", "c1")
	require.NoError(t, err)
	_, err = linkService.CreateLink(ctx, model.LinkContainerCompetition, "live", "c1")
	require.NoError(t, err)

	w := NewExpiryWorker(containerRepo, linkService, time.Minute)
	require.NoError(t, w.sweep(ctx))

	expiredLinks, err := linkService.LinksFrom(ctx, model.LinkContainerCompetition, "expired")
	require.NoError(t, err)
	assert.Empty(t, expiredLinks, "expired container should be detached")

	liveLinks, err := linkService.LinksFrom(ctx, model.LinkContainerCompetition, "live")
	require.NoError(t, err)
	assert.Len(t, liveLinks, 1, "live container keeps its link")

	// A second sweep finds nothing left to detach and stays quiet.
	require.NoError(t, w.sweep(ctx))
}

type existsAlways struct{}

func (existsAlways) Exists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	return true, nil
}
