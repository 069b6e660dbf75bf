package m_price

import (
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/spanner"
)

// Data represents a row of the prices table.
type Data struct {
	PartNumber          string            `spanner:"part_number"`
	EffectiveDate       civil.Date        `spanner:"effective_date"`
	Currency            string            `spanner:"currency"`
	ListNumerator       int64             `spanner:"list_numerator"`
	ListDenominator     int64             `spanner:"list_denominator"`
	RetailNumerator     spanner.NullInt64 `spanner:"retail_numerator"`
	RetailDenominator   spanner.NullInt64 `spanner:"retail_denominator"`
	DiscountNumerator   spanner.NullInt64 `spanner:"discount_numerator"`
	DiscountDenominator spanner.NullInt64 `spanner:"discount_denominator"`
	CostNumerator       spanner.NullInt64 `spanner:"cost_numerator"`
	CostDenominator     spanner.NullInt64 `spanner:"cost_denominator"`
	CreatedAt           time.Time         `spanner:"created_at"`
}
