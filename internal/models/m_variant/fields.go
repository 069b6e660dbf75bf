package m_variant

// Field name constants for the product_variants table. One row per child; the
// primary key on child_part_number enforces the one-parent invariant at the
// storage level too.
const (
	TableName = "product_variants"

	ChildPartNumber  = "child_part_number"
	ParentPartNumber = "parent_part_number"
	CreatedAt        = "created_at"
)
