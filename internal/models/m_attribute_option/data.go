package m_attribute_option

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the attribute_options table.
type Data struct {
	OptionID    string    `spanner:"option_id"`
	AttributeID string    `spanner:"attribute_id"`
	Value       string    `spanner:"value"`
	Label       string    `spanner:"label"`
	SortOrder   int64     `spanner:"sort_order"`
	CreatedAt   time.Time `spanner:"created_at"`
}

// Model provides mutations for the attribute_options table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an option.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{OptionID, AttributeID, Value, Label, SortOrder, CreatedAt},
		[]interface{}{data.OptionID, data.AttributeID, data.Value, data.Label, data.SortOrder, spanner.CommitTimestamp},
	)
}

// ReadColumns returns the column names for reading options.
func (m *Model) ReadColumns() []string {
	return []string{OptionID, AttributeID, Value, Label, SortOrder, CreatedAt}
}
