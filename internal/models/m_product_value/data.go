package m_product_value

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the product_values table.
type Data struct {
	PartNumber   string              `spanner:"part_number"`
	AttributeID  string              `spanner:"attribute_id"`
	ValueText    spanner.NullString  `spanner:"value_text"`
	ValueInt     spanner.NullInt64   `spanner:"value_int"`
	ValueDecimal spanner.NullFloat64 `spanner:"value_decimal"`
	ValueBool    spanner.NullBool    `spanner:"value_bool"`
	ValueDate    spanner.NullDate    `spanner:"value_date"`
	ValueJSON    spanner.NullString  `spanner:"value_json"`
	OptionID     spanner.NullString  `spanner:"option_id"`
	Unit         spanner.NullString  `spanner:"unit"`
	CreatedAt    time.Time           `spanner:"created_at"`
}
