package m_media

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the media table.
type Data struct {
	MediaID    string            `spanner:"media_id"`
	PartNumber string            `spanner:"part_number"`
	MediaType  string            `spanner:"media_type"`
	URL        string            `spanner:"url"`
	Position   spanner.NullInt64 `spanner:"position"`
	CreatedAt  time.Time         `spanner:"created_at"`
}

// Model provides mutations for the media table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for appending a media row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading media rows.
func (m *Model) ReadColumns() []string {
	return []string{MediaID, PartNumber, MediaType, URL, Position, CreatedAt}
}
