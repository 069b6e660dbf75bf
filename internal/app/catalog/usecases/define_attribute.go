package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// OptionInput is one allowed value of an enum attribute being defined.
type OptionInput struct {
	Value     string
	Label     string
	SortOrder int64
}

// DefineAttributeInput describes a new attribute definition.
type DefineAttributeInput struct {
	Code       string
	Label      string
	DataType   string
	IsVariant  bool
	IsRequired bool
	IsFacet    bool
	Unit       string
	Group      string
	SortOrder  int64
	Options    []OptionInput
}

// DefineAttribute registers a new attribute definition, with its option set
// for enum attributes, in one commit.
type DefineAttribute struct {
	attributes contracts.AttributeRepository
	applier    contracts.PlanApplier
	log        *logger.Logger
}

// NewDefineAttribute creates the usecase.
func NewDefineAttribute(attributes contracts.AttributeRepository, applier contracts.PlanApplier, log *logger.Logger) *DefineAttribute {
	return &DefineAttribute{attributes: attributes, applier: applier, log: log}
}

// Execute creates the attribute and returns its generated ID.
func (uc *DefineAttribute) Execute(ctx context.Context, in *DefineAttributeInput) (string, error) {
	attr, err := domain.NewAttribute(uuid.NewString(), in.Code, in.Label, in.DataType)
	if err != nil {
		return "", err
	}
	attr.IsVariant = in.IsVariant
	attr.IsRequired = in.IsRequired
	attr.IsFacet = in.IsFacet
	attr.Unit = in.Unit
	attr.Group = in.Group
	attr.SortOrder = in.SortOrder

	values := make([]string, 0, len(in.Options))
	for _, opt := range in.Options {
		values = append(values, opt.Value)
	}
	if err := domain.CheckOptionValues(values); err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(uc.attributes.InsertMut(attr))
	for _, opt := range in.Options {
		plan.Add(uc.attributes.InsertOptionMut(&domain.AttributeOption{
			OptionID:    uuid.NewString(),
			AttributeID: attr.AttributeID,
			Value:       opt.Value,
			Label:       opt.Label,
			SortOrder:   opt.SortOrder,
		}))
	}

	if err := uc.applier.Apply(ctx, plan); err != nil {
		return "", err
	}
	uc.log.Info("attribute defined",
		"code", attr.Code, "type", string(attr.Type), "options", len(in.Options))
	return attr.AttributeID, nil
}
