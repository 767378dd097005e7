package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
)

// Transactor scopes a function to a single storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(q repository.Querier) error) error
}

// LinkService mediates every relationship create and delete. It is the
// only path to the association tables: it validates that both
// referenced entities exist, rejects duplicate pairs, and makes
// deletion idempotent. One engine covers all six kinds; per-kind
// differences live in the model.LinkSpec registry and the per-entity
// existence checkers.
type LinkService struct {
	links    repository.LinkRepository
	entities map[model.EntityType]repository.ExistenceChecker
	tx       Transactor
}

func NewLinkService(
	links repository.LinkRepository,
	entities map[model.EntityType]repository.ExistenceChecker,
	tx Transactor,
) *LinkService {
	return &LinkService{links: links, entities: entities, tx: tx}
}

// CreateLink inserts one association record. Order of checks: left
// reference exists, right reference exists, pair not already present.
// The whole operation runs in one transaction; a concurrent create of
// the same pair that slips past the in-transaction check is caught by
// the table's composite unique constraint and surfaces the same way.
func (s *LinkService) CreateLink(ctx context.Context, kind model.LinkKind, leftID, rightID string) (*model.Link, error) {
	spec, ok := model.SpecFor(kind)
	if !ok {
		return nil, common.Errorf("unknown link kind %q: %w", kind, common.ErrBadRequest)
	}
	if leftID == "" || rightID == "" {
		return nil, common.Errorf("both %s and %s are required: %w", spec.LeftField, spec.RightField, common.ErrBadRequest)
	}

	var created *model.Link
	err := s.tx.WithinTx(ctx, func(q repository.Querier) error {
		if err := s.checkReference(ctx, q, spec.Left, leftID); err != nil {
			return err
		}
		if err := s.checkReference(ctx, q, spec.Right, rightID); err != nil {
			return err
		}

		_, err := s.links.FindByPair(ctx, q, kind, leftID, rightID)
		if err == nil {
			return common.ErrDuplicateLink
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("uniqueness check for %s: %w", kind, err)
		}

		link := &model.Link{
			ID:        uuid.NewString(),
			Kind:      kind,
			LeftID:    leftID,
			RightID:   rightID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.links.Insert(ctx, q, link); err != nil {
			return err
		}
		created = link
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteLink removes the record for (kind, leftID, rightID). Deleting
// an absent pair is not fatal: it reports ErrLinkNotFound and leaves
// the store untouched, so repeated deletes converge on ABSENT.
func (s *LinkService) DeleteLink(ctx context.Context, kind model.LinkKind, leftID, rightID string) error {
	if _, ok := model.SpecFor(kind); !ok {
		return common.Errorf("unknown link kind %q: %w", kind, common.ErrBadRequest)
	}

	return s.tx.WithinTx(ctx, func(q repository.Querier) error {
		deleted, err := s.links.DeleteByPair(ctx, q, kind, leftID, rightID)
		if err != nil {
			return fmt.Errorf("delete %s: %w", kind, err)
		}
		if !deleted {
			return common.ErrLinkNotFound
		}
		return nil
	})
}

// LinksFrom lists the records of one kind whose left reference is id.
// The expiry worker uses it to find a container's competition links.
func (s *LinkService) LinksFrom(ctx context.Context, kind model.LinkKind, leftID string) ([]model.Link, error) {
	if _, ok := model.SpecFor(kind); !ok {
		return nil, common.Errorf("unknown link kind %q: %w", kind, common.ErrBadRequest)
	}
	return s.links.ListByLeft(ctx, nil, kind, leftID)
}

func (s *LinkService) checkReference(ctx context.Context, q repository.Querier, entity model.EntityType, id string) error {
	checker, ok := s.entities[entity]
	if !ok {
		return common.Errorf("no existence checker registered for entity %q: %w", entity, common.ErrInternalServer)
	}
	exists, err := checker.Exists(ctx, q, id)
	if err != nil {
		return fmt.Errorf("existence check for %s %q: %w", entity, id, err)
	}
	if !exists {
		return &common.ReferenceNotFoundError{Entity: string(entity), ID: id}
	}
	return nil
}
