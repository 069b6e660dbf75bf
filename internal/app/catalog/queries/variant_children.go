package queries

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
)

// VariantChildren lists the variant products of a parent.
type VariantChildren struct {
	products contracts.ProductRepository
	variants contracts.VariantRepository
}

// NewVariantChildren creates the query.
func NewVariantChildren(products contracts.ProductRepository, variants contracts.VariantRepository) *VariantChildren {
	return &VariantChildren{products: products, variants: variants}
}

// Execute returns the full product rows of every variant child of partNumber.
// A parent with no children returns an empty slice, not an error.
func (q *VariantChildren) Execute(ctx context.Context, partNumber string) ([]domain.Product, error) {
	exists, err := q.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}

	childPNs, err := q.variants.ChildrenOf(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	children := make([]domain.Product, 0, len(childPNs))
	for _, pn := range childPNs {
		child, err := q.products.GetByPartNumber(ctx, pn)
		if err != nil {
			return nil, err
		}
		children = append(children, *child)
	}
	return children, nil
}
