package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the categories table.
type Data struct {
	CategoryID         string             `spanner:"category_id"`
	Code               spanner.NullString `spanner:"code"`
	Name               string             `spanner:"name"`
	ParentID           spanner.NullString `spanner:"parent_id"`
	ClassificationCode spanner.NullString `spanner:"classification_code"`
	CreatedAt          time.Time          `spanner:"created_at"`
}

// Model provides mutations for the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{CategoryID, Code, Name, ParentID, ClassificationCode, CreatedAt},
		[]interface{}{data.CategoryID, data.Code, data.Name, data.ParentID, data.ClassificationCode, spanner.CommitTimestamp},
	)
}

// ReadColumns returns the column names for reading categories.
func (m *Model) ReadColumns() []string {
	return []string{CategoryID, Code, Name, ParentID, ClassificationCode, CreatedAt}
}
