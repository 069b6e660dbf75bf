package m_price

// Field name constants for the prices table. Money amounts are stored as
// numerator/denominator int64 pairs for exact decimal arithmetic.
const (
	TableName = "prices"

	PartNumber           = "part_number"
	EffectiveDate        = "effective_date"
	Currency             = "currency"
	ListNumerator        = "list_numerator"
	ListDenominator      = "list_denominator"
	RetailNumerator      = "retail_numerator"
	RetailDenominator    = "retail_denominator"
	DiscountNumerator    = "discount_numerator"
	DiscountDenominator  = "discount_denominator"
	CostNumerator        = "cost_numerator"
	CostDenominator      = "cost_denominator"
	CreatedAt            = "created_at"
)
