package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID         = "category_id"
	Code               = "code"
	Name               = "name"
	ParentID           = "parent_id"
	ClassificationCode = "classification_code"
	CreatedAt          = "created_at"
)
