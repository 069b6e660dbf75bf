package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the products table.
type Data struct {
	PartNumber       string             `spanner:"part_number"`
	BrandID          string             `spanner:"brand_id"`
	CategoryID       spanner.NullString `spanner:"category_id"`
	DimensionID      spanner.NullString `spanner:"dimension_id"`
	WarrantyID       spanner.NullString `spanner:"warranty_id"`
	VendorID         spanner.NullString `spanner:"vendor_id"`
	ShortDescription string             `spanner:"short_description"`
	LongDescription  string             `spanner:"long_description"`
	MarketingText    string             `spanner:"marketing_text"`
	CreatedAt        time.Time          `spanner:"created_at"`
	UpdatedAt        time.Time          `spanner:"updated_at"`
}
