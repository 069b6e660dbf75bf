package usecases

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/clock"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// AppendPrice adds a new effective-dated price row to a product's history.
// Existing rows are never touched; a correction is a new row with a later
// creation time on the same effective date.
type AppendPrice struct {
	products contracts.ProductRepository
	prices   contracts.PriceRepository
	applier  contracts.PlanApplier
	clock    clock.Clock
	log      *logger.Logger
}

// NewAppendPrice creates the usecase.
func NewAppendPrice(
	products contracts.ProductRepository,
	prices contracts.PriceRepository,
	applier contracts.PlanApplier,
	clk clock.Clock,
	log *logger.Logger,
) *AppendPrice {
	return &AppendPrice{
		products: products,
		prices:   prices,
		applier:  applier,
		clock:    clk,
		log:      log,
	}
}

// Execute appends the price row described by in for partNumber.
func (uc *AppendPrice) Execute(ctx context.Context, partNumber string, in *PriceInput) error {
	exists, err := uc.products.Exists(ctx, partNumber)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	price, err := buildPrice(partNumber, in, uc.clock.Now())
	if err != nil {
		return err
	}
	mut, err := uc.prices.InsertMut(price)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := uc.applier.Apply(ctx, plan); err != nil {
		return err
	}
	uc.log.Info("price appended",
		"part_number", partNumber,
		"effective_date", price.EffectiveDate.String(),
		"list", price.List.String())
	return nil
}
