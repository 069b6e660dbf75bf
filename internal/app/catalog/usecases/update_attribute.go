package usecases

import (
	"context"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// CacheInvalidator drops cached schema entries after an edit commits. Wired
// only when the reference-data cache is enabled; nil otherwise.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, code, attributeID string)
}

// UpdateAttributeInput carries the editable fields. Nil pointers leave the
// field untouched; code and data type are identity and cannot change.
type UpdateAttributeInput struct {
	Code       string
	Label      *string
	IsVariant  *bool
	IsRequired *bool
	IsFacet    *bool
	Unit       *string
	Group      *string
	SortOrder  *int64
}

// UpdateAttribute applies an administrative edit to an attribute definition.
type UpdateAttribute struct {
	attributes  contracts.AttributeRepository
	applier     contracts.PlanApplier
	invalidator CacheInvalidator
	log         *logger.Logger
}

// NewUpdateAttribute creates the usecase. invalidator may be nil.
func NewUpdateAttribute(attributes contracts.AttributeRepository, applier contracts.PlanApplier, invalidator CacheInvalidator, log *logger.Logger) *UpdateAttribute {
	return &UpdateAttribute{attributes: attributes, applier: applier, invalidator: invalidator, log: log}
}

// Execute edits the attribute identified by in.Code. Only fields that
// actually changed reach the store; an edit that changes nothing commits
// nothing.
func (uc *UpdateAttribute) Execute(ctx context.Context, in *UpdateAttributeInput) error {
	attr, err := uc.attributes.GetByCode(ctx, in.Code)
	if err != nil {
		return err
	}

	edit := domain.EditAttribute(*attr)
	if in.Label != nil {
		edit.SetLabel(*in.Label)
	}
	if in.IsVariant != nil || in.IsRequired != nil || in.IsFacet != nil {
		isVariant, isRequired, isFacet := attr.IsVariant, attr.IsRequired, attr.IsFacet
		if in.IsVariant != nil {
			isVariant = *in.IsVariant
		}
		if in.IsRequired != nil {
			isRequired = *in.IsRequired
		}
		if in.IsFacet != nil {
			isFacet = *in.IsFacet
		}
		edit.SetFlags(isVariant, isRequired, isFacet)
	}
	if in.Unit != nil {
		edit.SetUnit(*in.Unit)
	}
	if in.Group != nil {
		edit.SetGroup(*in.Group)
	}
	if in.SortOrder != nil {
		edit.SetSortOrder(*in.SortOrder)
	}

	if !edit.Changes().HasChanges() {
		return nil
	}

	plan := committer.NewPlan()
	plan.Add(uc.attributes.UpdateMut(edit))
	if err := uc.applier.Apply(ctx, plan); err != nil {
		return err
	}
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx, attr.Code, attr.AttributeID)
	}
	uc.log.Info("attribute updated", "code", attr.Code)
	return nil
}
