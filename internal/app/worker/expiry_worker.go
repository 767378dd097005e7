package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"lycosidae/internal/app/service"
	"lycosidae/internal/common"
	"lycosidae/internal/domain/model"
	"lycosidae/internal/domain/repository"
)

// ExpiryWorker periodically detaches containers whose deadline has
// passed from their competitions. Detachment goes through the link
// service, never straight at the store, so the usual delete semantics
// apply; the container rows themselves stay put for operators to
// inspect or delete.
type ExpiryWorker struct {
	containerRepo repository.ContainerRepository
	linkService   *service.LinkService
	interval      time.Duration
}

func NewExpiryWorker(containerRepo repository.ContainerRepository, linkService *service.LinkService, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		containerRepo: containerRepo,
		linkService:   linkService,
		interval:      interval,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	log.Printf("Container expiry worker started (interval %s)", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Container expiry worker stopping...")
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				log.Printf("ERROR: container expiry sweep failed: %v", err)
			}
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) error {
	expired, err := w.containerRepo.ListExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, container := range expired {
		links, err := w.linkService.LinksFrom(ctx, model.LinkContainerCompetition, container.ID)
		if err != nil {
			log.Printf("ERROR: failed to list links for expired container %s: %v", container.ID, err)
			continue
		}
		for _, link := range links {
			err := w.linkService.DeleteLink(ctx, model.LinkContainerCompetition, link.LeftID, link.RightID)
			if err != nil && !errors.Is(err, common.ErrLinkNotFound) {
				log.Printf("ERROR: failed to detach expired container %s from competition %s: %v",
					link.LeftID, link.RightID, err)
				continue
			}
			log.Printf("Detached expired container %s from competition %s", link.LeftID, link.RightID)
		}
	}
	return nil
}
