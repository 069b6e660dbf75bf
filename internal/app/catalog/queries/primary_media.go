package queries

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
)

// PrimaryMedia resolves the canonical media row of a product for one media
// type.
type PrimaryMedia struct {
	products contracts.ProductRepository
	media    contracts.MediaRepository
}

// NewPrimaryMedia creates the query.
func NewPrimaryMedia(products contracts.ProductRepository, media contracts.MediaRepository) *PrimaryMedia {
	return &PrimaryMedia{products: products, media: media}
}

// Execute returns the lowest-positioned media row of the requested type,
// newest first on ties; rows without a position sort last. A product with no
// row of the type yields ErrNoMedia.
func (q *PrimaryMedia) Execute(ctx context.Context, partNumber string, mediaType string) (*domain.Media, error) {
	mt, err := domain.ParseMediaType(mediaType)
	if err != nil {
		return nil, err
	}

	exists, err := q.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}

	items, err := q.media.FetchByPart(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	return domain.SelectPrimaryMedia(items, mt)
}
