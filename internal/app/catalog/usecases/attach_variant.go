package usecases

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/clock"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// AttachVariant links a product as a variant of a parent.
type AttachVariant struct {
	products contracts.ProductRepository
	variants contracts.VariantRepository
	clock    clock.Clock
	log      *logger.Logger
}

// NewAttachVariant creates the usecase.
func NewAttachVariant(
	products contracts.ProductRepository,
	variants contracts.VariantRepository,
	clk clock.Clock,
	log *logger.Logger,
) *AttachVariant {
	return &AttachVariant{
		products: products,
		variants: variants,
		clock:    clk,
		log:      log,
	}
}

// Execute attaches child to parent after checking both products exist. The
// graph invariants (no self-reference, one parent per child, no cycles) are
// checked by the store inside the write transaction; re-attaching a child to
// its current parent is an idempotent no-op.
func (uc *AttachVariant) Execute(ctx context.Context, childPN, parentPN string) error {
	for _, pn := range []string{childPN, parentPN} {
		exists, err := uc.products.Exists(ctx, pn)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrProductNotFound
		}
	}

	if err := uc.variants.Attach(ctx, childPN, parentPN, uc.clock.Now()); err != nil {
		return err
	}
	uc.log.Info("variant attached", "child", childPN, "parent", parentPN)
	return nil
}
