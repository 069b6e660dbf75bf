package m_attribute

// Field name constants for the attributes table.
const (
	TableName = "attributes"

	AttributeID = "attribute_id"
	Code        = "code"
	Label       = "label"
	DataType    = "data_type"
	IsVariant   = "is_variant"
	IsRequired  = "is_required"
	IsFacet     = "is_facet"
	Unit        = "unit"
	AttrGroup   = "attr_group"
	SortOrder   = "sort_order"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)
