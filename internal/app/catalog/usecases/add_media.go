package usecases

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/clock"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// AddMedia appends a media row to a product.
type AddMedia struct {
	products contracts.ProductRepository
	media    contracts.MediaRepository
	applier  contracts.PlanApplier
	clock    clock.Clock
	log      *logger.Logger
}

// NewAddMedia creates the usecase.
func NewAddMedia(
	products contracts.ProductRepository,
	media contracts.MediaRepository,
	applier contracts.PlanApplier,
	clk clock.Clock,
	log *logger.Logger,
) *AddMedia {
	return &AddMedia{
		products: products,
		media:    media,
		applier:  applier,
		clock:    clk,
		log:      log,
	}
}

// Execute appends the media row described by in for partNumber and returns
// its generated ID.
func (uc *AddMedia) Execute(ctx context.Context, partNumber string, in *MediaInput) (string, error) {
	exists, err := uc.products.Exists(ctx, partNumber)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrProductNotFound
	}

	m, err := buildMedia(partNumber, in, uc.clock.Now())
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(uc.media.InsertMut(m))
	if err := uc.applier.Apply(ctx, plan); err != nil {
		return "", err
	}
	uc.log.Info("media added", "part_number", partNumber, "media_id", m.MediaID, "type", string(m.Type))
	return m.MediaID, nil
}
