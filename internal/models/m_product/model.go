package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			PartNumber, BrandID, CategoryID,
			DimensionID, WarrantyID, VendorID,
			ShortDescription, LongDescription, MarketingText,
			CreatedAt, UpdatedAt,
		},
		[]interface{}{
			data.PartNumber, data.BrandID, data.CategoryID,
			data.DimensionID, data.WarrantyID, data.VendorID,
			data.ShortDescription, data.LongDescription, data.MarketingText,
			spanner.CommitTimestamp, spanner.CommitTimestamp,
		},
	)
}

// ReadColumns returns the column names for reading products.
func (m *Model) ReadColumns() []string {
	return []string{
		PartNumber, BrandID, CategoryID,
		DimensionID, WarrantyID, VendorID,
		ShortDescription, LongDescription, MarketingText,
		CreatedAt, UpdatedAt,
	}
}
