// Package contracts defines the persistence interfaces the engine consumes.
// Repositories return mutations rather than applying them; usecases collect
// them into a commit plan and apply atomically.
package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
)

// PlanApplier applies a collected commit plan atomically.
type PlanApplier interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}

// AttributeRepository provides attribute definitions and option sets.
type AttributeRepository interface {
	// GetByCode retrieves an attribute definition by its code.
	GetByCode(ctx context.Context, code string) (*domain.Attribute, error)

	// GetByIDs retrieves attribute definitions for a set of IDs, keyed by ID.
	// Unknown IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Attribute, error)

	// ListOptions retrieves an enum attribute's option set, ordered by sort
	// order then value.
	ListOptions(ctx context.Context, attributeID string) ([]domain.AttributeOption, error)

	// InsertMut creates a mutation for inserting an attribute definition.
	InsertMut(a *domain.Attribute) *spanner.Mutation

	// InsertOptionMut creates a mutation for inserting an attribute option.
	InsertOptionMut(o *domain.AttributeOption) *spanner.Mutation

	// UpdateMut creates a mutation for an administrative edit (dirty fields
	// only). Returns nil when nothing changed.
	UpdateMut(edit *domain.AttributeEdit) *spanner.Mutation
}

// CategoryRepository provides the category tree and requirement links.
type CategoryRepository interface {
	// GetByID retrieves a single category.
	GetByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FetchChain resolves a category's ancestor chain ordered root to leaf.
	// A cyclic ancestry yields domain.ErrCyclicCategory.
	FetchChain(ctx context.Context, categoryID string) ([]domain.Category, error)

	// FetchRequirements retrieves the explicit requirement links of the given
	// categories, keyed by category ID.
	FetchRequirements(ctx context.Context, categoryIDs []string) (map[string][]domain.RequirementLink, error)

	// InsertMut creates a mutation for inserting a category.
	InsertMut(c *domain.Category) *spanner.Mutation

	// InsertRequirementMut creates a mutation for a requirement link.
	InsertRequirementMut(link *domain.RequirementLink) *spanner.Mutation
}

// ProductRepository provides products and their attribute values.
type ProductRepository interface {
	// GetByPartNumber retrieves a product.
	GetByPartNumber(ctx context.Context, partNumber string) (*domain.Product, error)

	// Exists checks whether a part number is already cataloged.
	Exists(ctx context.Context, partNumber string) (bool, error)

	// FetchValues retrieves all attribute values of a product.
	FetchValues(ctx context.Context, partNumber string) ([]domain.AttributeValue, error)

	// InsertMut creates a mutation for inserting a product.
	InsertMut(p *domain.Product) *spanner.Mutation

	// ValueMut creates a mutation for writing one attribute value row. The
	// (part number, attribute) key makes a re-ingested value supersede the
	// previous row.
	ValueMut(v *domain.AttributeValue, createdAt time.Time) (*spanner.Mutation, error)
}

// PriceRepository provides effective-dated price history.
type PriceRepository interface {
	// FetchHistory retrieves all price rows of a product.
	FetchHistory(ctx context.Context, partNumber string) ([]domain.Price, error)

	// InsertMut creates a mutation for appending a price row.
	// Returns an error when an amount exceeds int64 storage bounds.
	InsertMut(p *domain.Price) (*spanner.Mutation, error)
}

// MediaRepository provides product media rows.
type MediaRepository interface {
	// FetchByPart retrieves all media rows of a product.
	FetchByPart(ctx context.Context, partNumber string) ([]domain.Media, error)

	// InsertMut creates a mutation for appending a media row.
	InsertMut(m *domain.Media) *spanner.Mutation
}

// VariantRepository provides the variant edge set.
type VariantRepository interface {
	// ParentOf returns the parent part number of a variant child, or false
	// when the product has none.
	ParentOf(ctx context.Context, partNumber string) (string, bool, error)

	// ChildrenOf returns the part numbers of all variants of a parent.
	ChildrenOf(ctx context.Context, partNumber string) ([]string, error)

	// Attach writes the child→parent edge. The graph invariants are checked
	// against reads in the same read-write transaction as the write, so a
	// concurrent attach cannot slip in a second parent or close a cycle
	// between check and commit.
	Attach(ctx context.Context, childPN, parentPN string, createdAt time.Time) error
}
