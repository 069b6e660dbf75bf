package m_category_attribute

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the category_attributes table.
type Data struct {
	CategoryID   string    `spanner:"category_id"`
	AttributeID  string    `spanner:"attribute_id"`
	IsRequired   bool      `spanner:"is_required"`
	DisplayOrder int64     `spanner:"display_order"`
	CreatedAt    time.Time `spanner:"created_at"`
}

// Model provides mutations for the category_attributes table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a requirement link.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{CategoryID, AttributeID, IsRequired, DisplayOrder, CreatedAt},
		[]interface{}{data.CategoryID, data.AttributeID, data.IsRequired, data.DisplayOrder, spanner.CommitTimestamp},
	)
}

// ReadColumns returns the column names for reading requirement links.
func (m *Model) ReadColumns() []string {
	return []string{CategoryID, AttributeID, IsRequired, DisplayOrder, CreatedAt}
}
