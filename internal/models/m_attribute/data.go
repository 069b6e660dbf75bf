package m_attribute

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the attributes table.
type Data struct {
	AttributeID string             `spanner:"attribute_id"`
	Code        string             `spanner:"code"`
	Label       string             `spanner:"label"`
	DataType    string             `spanner:"data_type"`
	IsVariant   bool               `spanner:"is_variant"`
	IsRequired  bool               `spanner:"is_required"`
	IsFacet     bool               `spanner:"is_facet"`
	Unit        spanner.NullString `spanner:"unit"`
	AttrGroup   spanner.NullString `spanner:"attr_group"`
	SortOrder   int64              `spanner:"sort_order"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}
