package m_product_value

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutations for the product_values table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for writing a value row. InsertOrUpdate on the
// (part_number, attribute_id) key means a re-ingested value supersedes the
// previous row for that attribute. created_at is the caller's clock time, as
// for prices and media.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			PartNumber, AttributeID,
			ValueText, ValueInt, ValueDecimal, ValueBool,
			ValueDate, ValueJSON, OptionID, Unit,
			CreatedAt,
		},
		[]interface{}{
			data.PartNumber, data.AttributeID,
			data.ValueText, data.ValueInt, data.ValueDecimal, data.ValueBool,
			data.ValueDate, data.ValueJSON, data.OptionID, data.Unit,
			data.CreatedAt,
		},
	)
}

// ReadColumns returns the column names for reading value rows.
func (m *Model) ReadColumns() []string {
	return []string{
		PartNumber, AttributeID,
		ValueText, ValueInt, ValueDecimal, ValueBool,
		ValueDate, ValueJSON, OptionID, Unit,
		CreatedAt,
	}
}
