package service

import (
	"context"
	"time"

	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"

	"github.com/google/uuid"
)

type ContainerService struct {
	containerRepo repository.ContainerRepository
}

func NewContainerService(containerRepo repository.ContainerRepository) *ContainerService {
	return &ContainerService{containerRepo: containerRepo}
}

type ContainerRequest struct {
	Deadline time.Time `json:"deadline"`
}

func (s *ContainerService) CreateContainer(ctx context.Context, req ContainerRequest) (*model.Container, error) {
	if req.Deadline.IsZero() {
		return nil, common.Errorf("deadline is required: %w", common.ErrBadRequest)
	}

	container := &model.Container{
		ID:       uuid.NewString(),
		Deadline: req.Deadline,
	}
	if err := s.containerRepo.Create(ctx, container); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *ContainerService) GetContainer(ctx context.Context, id string) (*model.Container, error) {
	return s.containerRepo.FindByID(ctx, id)
}

func (s *ContainerService) UpdateContainer(ctx context.Context, id string, req ContainerRequest) (*model.Container, error) {
	container, err := s.containerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Deadline.IsZero() {
		return nil, common.Errorf("deadline is required: %w", common.ErrBadRequest)
	}
	container.Deadline = req.Deadline

	if err := s.containerRepo.Update(ctx, container); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *ContainerService) DeleteContainer(ctx context.Context, id string) error {
	return s.containerRepo.Delete(ctx, id)
}
