package m_attribute_option

// Field name constants for the attribute_options table.
const (
	TableName = "attribute_options"

	OptionID    = "option_id"
	AttributeID = "attribute_id"
	Value       = "value"
	Label       = "label"
	SortOrder   = "sort_order"
	CreatedAt   = "created_at"
)
