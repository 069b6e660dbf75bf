package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// RequirementInput links one attribute to the category being defined.
type RequirementInput struct {
	AttributeID  string
	IsRequired   bool
	DisplayOrder int64
}

// DefineCategoryInput describes a new category and its explicit requirement
// links. Inherited requirements come from the ancestor chain at resolution
// time and are not stored.
type DefineCategoryInput struct {
	Code               string
	Name               string
	ParentID           *string
	ClassificationCode string
	Requirements       []RequirementInput
}

// DefineCategory registers a category node and its requirement links in one
// commit. Unknown parents, cyclic ancestry and requirement links to unknown
// attributes are all rejected before anything is written.
type DefineCategory struct {
	categories contracts.CategoryRepository
	attributes contracts.AttributeRepository
	applier    contracts.PlanApplier
	log        *logger.Logger
}

// NewDefineCategory creates the usecase.
func NewDefineCategory(
	categories contracts.CategoryRepository,
	attributes contracts.AttributeRepository,
	applier contracts.PlanApplier,
	log *logger.Logger,
) *DefineCategory {
	return &DefineCategory{categories: categories, attributes: attributes, applier: applier, log: log}
}

// Execute creates the category and returns its generated ID.
func (uc *DefineCategory) Execute(ctx context.Context, in *DefineCategoryInput) (string, error) {
	if in.ParentID != nil {
		// Walking the parent's chain both proves the parent exists and that
		// the existing ancestry is acyclic; the new leaf cannot introduce a
		// cycle on its own since its ID is fresh.
		if _, err := uc.categories.FetchChain(ctx, *in.ParentID); err != nil {
			return "", err
		}
	}

	if len(in.Requirements) > 0 {
		ids := make([]string, 0, len(in.Requirements))
		for _, req := range in.Requirements {
			ids = append(ids, req.AttributeID)
		}
		known, err := uc.attributes.GetByIDs(ctx, ids)
		if err != nil {
			return "", err
		}
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return "", fmt.Errorf("requirement attribute %s: %w", id, domain.ErrAttributeNotFound)
			}
		}
	}

	category := &domain.Category{
		CategoryID:         uuid.NewString(),
		Code:               in.Code,
		Name:               in.Name,
		ParentID:           in.ParentID,
		ClassificationCode: in.ClassificationCode,
	}

	plan := committer.NewPlan()
	plan.Add(uc.categories.InsertMut(category))
	for _, req := range in.Requirements {
		plan.Add(uc.categories.InsertRequirementMut(&domain.RequirementLink{
			CategoryID:   category.CategoryID,
			AttributeID:  req.AttributeID,
			IsRequired:   req.IsRequired,
			DisplayOrder: req.DisplayOrder,
		}))
	}

	if err := uc.applier.Apply(ctx, plan); err != nil {
		return "", err
	}
	uc.log.Info("category defined",
		"code", in.Code, "category_id", category.CategoryID, "requirements", len(in.Requirements))
	return category.CategoryID, nil
}
