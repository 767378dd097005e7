package service

import (
	"context"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

type TagRequest struct {
	Type string `json:"type"`
}

func (s *TagService) CreateTag(ctx context.Context, req TagRequest) (*model.Tag, error) {
	tagType := slug.Make(req.Type)
	if tagType == "" {
		return nil, common.Errorf("tag type is required: %w", common.ErrBadRequest)
	}

	tag := &model.Tag{
		ID:   uuid.NewString(),
		Type: tagType,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	return s.tagRepo.FindByID(ctx, id)
}

func (s *TagService) GetTagByType(ctx context.Context, tagType string) (*model.Tag, error) {
	normalized := slug.Make(tagType)
	if normalized == "" {
		return nil, common.Errorf("tag type is required: %w", common.ErrBadRequest)
	}
	return s.tagRepo.FindByType(ctx, normalized)
}

func (s *TagService) UpdateTag(ctx context.Context, id string, req TagRequest) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tagType := slug.Make(req.Type)
	if tagType == "" {
		return nil, common.Errorf("tag type is required: %w", common.ErrBadRequest)
	}
	tag.Type = tagType

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	return s.tagRepo.Delete(ctx, id)
}
