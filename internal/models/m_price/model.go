package m_price

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutations for the prices table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation appending a price row. History is append only:
// created_at is part of the key, so a correction on the same effective date
// lands as a second row and wins the recency tie-break instead of mutating
// the original.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// ReadColumns returns the column names for reading price rows.
func (m *Model) ReadColumns() []string {
	return []string{
		PartNumber, EffectiveDate, Currency,
		ListNumerator, ListDenominator,
		RetailNumerator, RetailDenominator,
		DiscountNumerator, DiscountDenominator,
		CostNumerator, CostDenominator,
		CreatedAt,
	}
}
