package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	PartNumber       = "part_number"
	BrandID          = "brand_id"
	CategoryID       = "category_id"
	DimensionID      = "dimension_id"
	WarrantyID       = "warranty_id"
	VendorID         = "vendor_id"
	ShortDescription = "short_description"
	LongDescription  = "long_description"
	MarketingText    = "marketing_text"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)
