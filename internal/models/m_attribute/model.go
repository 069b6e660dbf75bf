package m_attribute

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the attributes table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an attribute definition.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			AttributeID, Code, Label, DataType,
			IsVariant, IsRequired, IsFacet,
			Unit, AttrGroup, SortOrder,
			CreatedAt, UpdatedAt,
		},
		[]interface{}{
			data.AttributeID, data.Code, data.Label, data.DataType,
			data.IsVariant, data.IsRequired, data.IsFacet,
			data.Unit, data.AttrGroup, data.SortOrder,
			spanner.CommitTimestamp, spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a mutation for updating specific attribute fields.
func (m *Model) UpdateMut(attributeID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)
	columns = append(columns, AttributeID)
	values = append(values, attributeID)
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}
	return spanner.Update(TableName, columns, values)
}

// ReadColumns returns the column names for reading attributes.
func (m *Model) ReadColumns() []string {
	return []string{
		AttributeID, Code, Label, DataType,
		IsVariant, IsRequired, IsFacet,
		Unit, AttrGroup, SortOrder,
		CreatedAt, UpdatedAt,
	}
}
