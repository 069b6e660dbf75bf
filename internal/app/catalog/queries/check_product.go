package queries

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/registry"
)

// CheckProduct audits an already-stored product against its category's
// resolved requirement set. Ingestion runs the same checks before committing;
// this query exists for re-auditing after schema edits, category moves, or
// variant attachments change what the product must satisfy.
type CheckProduct struct {
	registry *registry.Registry
	products contracts.ProductRepository
	variants contracts.VariantRepository
}

// NewCheckProduct creates the query.
func NewCheckProduct(reg *registry.Registry, products contracts.ProductRepository, variants contracts.VariantRepository) *CheckProduct {
	return &CheckProduct{registry: reg, products: products, variants: variants}
}

// Execute returns the complete violation batch for the product, empty when it
// is clean. Values whose attribute definition no longer exists are reported as
// UnknownAttribute rather than silently skipped.
func (q *CheckProduct) Execute(ctx context.Context, partNumber string) ([]domain.Violation, error) {
	product, err := q.products.GetByPartNumber(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	stored, err := q.products.FetchValues(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	attrIDs := make([]string, 0, len(stored))
	for i := range stored {
		attrIDs = append(attrIDs, stored[i].AttributeID)
	}
	attrs, err := q.registry.AttributesByID(ctx, attrIDs)
	if err != nil {
		return nil, err
	}

	var violations []domain.Violation
	values := make(map[string]*domain.TypedValue, len(stored))
	for i := range stored {
		v := &stored[i]
		if _, known := attrs[v.AttributeID]; !known {
			violations = append(violations, domain.Violation{
				Code:          domain.ViolationUnknownAttribute,
				AttributeCode: v.AttributeID,
				Message:       "stored value references a deleted attribute",
			})
			continue
		}
		values[v.AttributeID] = &v.Value
	}

	var requirements []domain.ResolvedRequirement
	if product.CategoryID != nil {
		requirements, err = q.registry.RequirementsFor(ctx, *product.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	_, isVariantChild, err := q.variants.ParentOf(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	violations = append(violations,
		domain.CheckProduct(product, requirements, values, isVariantChild)...)
	return violations, nil
}
