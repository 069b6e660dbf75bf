package m_category_attribute

// Field name constants for the category_attributes table.
const (
	TableName = "category_attributes"

	CategoryID   = "category_id"
	AttributeID  = "attribute_id"
	IsRequired   = "is_required"
	DisplayOrder = "display_order"
	CreatedAt    = "created_at"
)
