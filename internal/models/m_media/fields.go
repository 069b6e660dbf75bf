package m_media

// Field name constants for the media table.
const (
	TableName = "media"

	MediaID    = "media_id"
	PartNumber = "part_number"
	MediaType  = "media_type"
	URL        = "url"
	Position   = "position"
	CreatedAt  = "created_at"
)
