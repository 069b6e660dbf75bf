package m_product_value

// Field name constants for the product_values table. One nullable column per
// typed slot; the schema-level CHECK that exactly one is set lives in the
// domain's TypedValue instead.
const (
	TableName = "product_values"

	PartNumber   = "part_number"
	AttributeID  = "attribute_id"
	ValueText    = "value_text"
	ValueInt     = "value_int"
	ValueDecimal = "value_decimal"
	ValueBool    = "value_bool"
	ValueDate    = "value_date"
	ValueJSON    = "value_json"
	OptionID     = "option_id"
	Unit         = "unit"
	CreatedAt    = "created_at"
)
