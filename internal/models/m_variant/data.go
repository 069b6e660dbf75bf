package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the product_variants table.
type Data struct {
	ChildPartNumber  string    `spanner:"child_part_number"`
	ParentPartNumber string    `spanner:"parent_part_number"`
	CreatedAt        time.Time `spanner:"created_at"`
}

// Model provides mutations for the product_variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for the child→parent edge. InsertOrUpdate keeps
// re-attachment to the same parent idempotent; attaching to a different parent
// is rejected by the transactional re-check before the mutation is buffered.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading variant edges.
func (m *Model) ReadColumns() []string {
	return []string{ChildPartNumber, ParentPartNumber, CreatedAt}
}
