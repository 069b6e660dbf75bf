package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/models/m_attribute"
	"github.com/light-bringer/catalog-engine/internal/models/m_attribute_option"
	"github.com/light-bringer/catalog-engine/internal/pkg/query"
)

// AttributeRepo implements AttributeRepository for Spanner.
type AttributeRepo struct {
	client      *spanner.Client
	model       *m_attribute.Model
	optionModel *m_attribute_option.Model
}

// NewAttributeRepo creates a new AttributeRepo.
func NewAttributeRepo(client *spanner.Client) contracts.AttributeRepository {
	return &AttributeRepo{
		client:      client,
		model:       m_attribute.NewModel(),
		optionModel: m_attribute_option.NewModel(),
	}
}

// GetByCode retrieves an attribute definition by its code.
func (r *AttributeRepo) GetByCode(ctx context.Context, code string) (*domain.Attribute, error) {
	stmt := query.From(m_attribute.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_attribute.Code, code)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrAttributeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attribute %q: %w", code, err)
	}

	var data m_attribute.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse attribute: %w", err)
	}
	return dataToAttribute(&data), nil
}

// GetByIDs retrieves attribute definitions for a set of IDs, keyed by ID.
func (r *AttributeRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Attribute, error) {
	out := make(map[string]*domain.Attribute, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	stmt := query.From(m_attribute.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.In(m_attribute.AttributeID, ids)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read attributes: %w", err)
		}
		var data m_attribute.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse attribute: %w", err)
		}
		out[data.AttributeID] = dataToAttribute(&data)
	}
	return out, nil
}

// ListOptions retrieves an enum attribute's option set ordered by sort order
// then value.
func (r *AttributeRepo) ListOptions(ctx context.Context, attributeID string) ([]domain.AttributeOption, error) {
	stmt := query.From(m_attribute_option.TableName).
		Select(r.optionModel.ReadColumns()...).
		Where(query.Eq(m_attribute_option.AttributeID, attributeID)).
		OrderBy(m_attribute_option.SortOrder, query.Asc).
		OrderBy(m_attribute_option.Value, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var options []domain.AttributeOption
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read options: %w", err)
		}
		var data m_attribute_option.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse option: %w", err)
		}
		options = append(options, domain.AttributeOption{
			OptionID:    data.OptionID,
			AttributeID: data.AttributeID,
			Value:       data.Value,
			Label:       data.Label,
			SortOrder:   data.SortOrder,
		})
	}
	return options, nil
}

// InsertMut creates a mutation for inserting an attribute definition.
func (r *AttributeRepo) InsertMut(a *domain.Attribute) *spanner.Mutation {
	data := &m_attribute.Data{
		AttributeID: a.AttributeID,
		Code:        a.Code,
		Label:       a.Label,
		DataType:    string(a.Type),
		IsVariant:   a.IsVariant,
		IsRequired:  a.IsRequired,
		IsFacet:     a.IsFacet,
		SortOrder:   a.SortOrder,
	}
	if a.Unit != "" {
		data.Unit = spanner.NullString{StringVal: a.Unit, Valid: true}
	}
	if a.Group != "" {
		data.AttrGroup = spanner.NullString{StringVal: a.Group, Valid: true}
	}
	return r.model.InsertMut(data)
}

// InsertOptionMut creates a mutation for inserting an attribute option.
func (r *AttributeRepo) InsertOptionMut(o *domain.AttributeOption) *spanner.Mutation {
	return r.optionModel.InsertMut(&m_attribute_option.Data{
		OptionID:    o.OptionID,
		AttributeID: o.AttributeID,
		Value:       o.Value,
		Label:       o.Label,
		SortOrder:   o.SortOrder,
	})
}

// UpdateMut creates a mutation covering only the dirty fields of an edit.
func (r *AttributeRepo) UpdateMut(edit *domain.AttributeEdit) *spanner.Mutation {
	changes := edit.Changes()
	if !changes.HasChanges() {
		return nil
	}

	attr := edit.Attribute()
	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldLabel) {
		updates[m_attribute.Label] = attr.Label
	}
	if changes.Dirty(domain.FieldIsVariant) {
		updates[m_attribute.IsVariant] = attr.IsVariant
	}
	if changes.Dirty(domain.FieldIsRequired) {
		updates[m_attribute.IsRequired] = attr.IsRequired
	}
	if changes.Dirty(domain.FieldIsFacet) {
		updates[m_attribute.IsFacet] = attr.IsFacet
	}
	if changes.Dirty(domain.FieldUnit) {
		updates[m_attribute.Unit] = nullString(attr.Unit)
	}
	if changes.Dirty(domain.FieldGroup) {
		updates[m_attribute.AttrGroup] = nullString(attr.Group)
	}
	if changes.Dirty(domain.FieldSortOrder) {
		updates[m_attribute.SortOrder] = attr.SortOrder
	}

	return r.model.UpdateMut(attr.AttributeID, updates)
}

func dataToAttribute(data *m_attribute.Data) *domain.Attribute {
	return &domain.Attribute{
		AttributeID: data.AttributeID,
		Code:        data.Code,
		Label:       data.Label,
		Type:        domain.DataType(data.DataType),
		IsVariant:   data.IsVariant,
		IsRequired:  data.IsRequired,
		IsFacet:     data.IsFacet,
		Unit:        data.Unit.StringVal,
		Group:       data.AttrGroup.StringVal,
		SortOrder:   data.SortOrder,
	}
}

func nullString(s string) spanner.NullString {
	if s == "" {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: s, Valid: true}
}

// notFound reports whether err is a Spanner row miss.
func notFound(err error) bool {
	return spanner.ErrCode(err) == codes.NotFound
}
