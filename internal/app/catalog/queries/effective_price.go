// Package queries contains the read-side resolvers of the catalog. Each query
// fetches rows through the contracts and delegates the actual selection to the
// pure domain, so the selection rules are testable without a store.
package queries

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
)

// EffectivePrice resolves the single price row in force for a product on a
// given date.
type EffectivePrice struct {
	products contracts.ProductRepository
	prices   contracts.PriceRepository
}

// NewEffectivePrice creates the query.
func NewEffectivePrice(products contracts.ProductRepository, prices contracts.PriceRepository) *EffectivePrice {
	return &EffectivePrice{products: products, prices: prices}
}

// Execute returns the price with the greatest effective date not after asOf,
// or the latest row overall when asOf is nil. An unknown part number yields
// ErrProductNotFound; a known product with no qualifying row yields ErrNoPrice.
func (q *EffectivePrice) Execute(ctx context.Context, partNumber string, asOf *civil.Date) (*domain.Price, error) {
	exists, err := q.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}

	history, err := q.prices.FetchHistory(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	return domain.SelectEffectivePrice(history, asOf)
}
