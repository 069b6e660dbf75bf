// Package registry is the read side of the attribute schema: attribute
// definitions, option sets, and category requirement resolution. Usecases and
// queries consume it instead of talking to the repositories directly.
package registry

import (
	"context"
	"fmt"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
)

// Registry resolves attribute schemas and category requirement sets.
type Registry struct {
	attributes contracts.AttributeRepository
	categories contracts.CategoryRepository
}

// New creates a Registry over the given repositories.
func New(attributes contracts.AttributeRepository, categories contracts.CategoryRepository) *Registry {
	return &Registry{attributes: attributes, categories: categories}
}

// GetAttribute retrieves an attribute definition by code.
func (r *Registry) GetAttribute(ctx context.Context, code string) (*domain.Attribute, error) {
	return r.attributes.GetByCode(ctx, code)
}

// ListOptions retrieves an enum attribute's option set.
func (r *Registry) ListOptions(ctx context.Context, attributeID string) ([]domain.AttributeOption, error) {
	return r.attributes.ListOptions(ctx, attributeID)
}

// AttributesByID retrieves attribute definitions for a set of IDs.
func (r *Registry) AttributesByID(ctx context.Context, ids []string) (map[string]*domain.Attribute, error) {
	return r.attributes.GetByIDs(ctx, ids)
}

// RequirementsFor resolves a category's effective requirement set by walking
// the ancestor chain root to leaf and overlaying each level's explicit links.
func (r *Registry) RequirementsFor(ctx context.Context, categoryID string) ([]domain.ResolvedRequirement, error) {
	chain, err := r.categories.FetchChain(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(chain))
	for _, cat := range chain {
		ids = append(ids, cat.CategoryID)
	}
	links, err := r.categories.FetchRequirements(ctx, ids)
	if err != nil {
		return nil, err
	}

	attrIDs := make([]string, 0, 16)
	seen := make(map[string]bool, 16)
	for _, categoryLinks := range links {
		for _, link := range categoryLinks {
			if !seen[link.AttributeID] {
				seen[link.AttributeID] = true
				attrIDs = append(attrIDs, link.AttributeID)
			}
		}
	}

	attrs, err := r.attributes.GetByIDs(ctx, attrIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requirement attributes: %w", err)
	}
	// A link pointing at a vanished attribute is a schema fault, not something
	// to silently drop from the requirement set.
	for _, id := range attrIDs {
		if _, ok := attrs[id]; !ok {
			return nil, fmt.Errorf("requirement link references attribute %s: %w", id, domain.ErrAttributeNotFound)
		}
	}
	return domain.OverlayRequirements(chain, links, attrs), nil
}
