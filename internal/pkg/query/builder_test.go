package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("attributes").
		Select("attribute_id", "code", "data_type").
		Build()

	assert.Equal(t, "SELECT attribute_id, code, data_type FROM attributes", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("attributes").Build()

	assert.Equal(t, "SELECT * FROM attributes", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_WhereConditions(t *testing.T) {
	stmt := From("prices").
		Select("part_number", "effective_date").
		Where(Eq("part_number", "ABC-123")).
		Where(Lte("effective_date", "2024-06-01")).
		Build()

	assert.Equal(t,
		"SELECT part_number, effective_date FROM prices WHERE part_number = @p0 AND effective_date <= @p1",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "ABC-123",
		"p1": "2024-06-01",
	}, stmt.Params)
}

func TestBuilder_InCondition(t *testing.T) {
	ids := []string{"cat-1", "cat-2"}
	stmt := From("category_attributes").
		Where(In("category_id", ids)).
		Build()

	assert.Equal(t, "SELECT * FROM category_attributes WHERE category_id IN UNNEST(@p0)", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": ids}, stmt.Params)
}

func TestBuilder_CompoundOrderBy(t *testing.T) {
	stmt := From("media").
		Where(Eq("part_number", "ABC-123")).
		OrderBy("position", Asc).
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t,
		"SELECT * FROM media WHERE part_number = @p0 ORDER BY position ASC, created_at DESC",
		stmt.SQL)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("categories").
		Where(IsNull("parent_id")).
		Build()
	assert.Equal(t, "SELECT * FROM categories WHERE parent_id IS NULL", stmt.SQL)

	stmt = From("categories").
		Where(IsNotNull("parent_id")).
		Build()
	assert.Equal(t, "SELECT * FROM categories WHERE parent_id IS NOT NULL", stmt.SQL)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("media").
		OrderBy("created_at", Desc).
		Limit(10).
		Build()

	assert.Equal(t, "SELECT * FROM media ORDER BY created_at DESC LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"limit": int64(10)}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("media").Where(Eq("part_number", "ABC-123"))
	withType := base.Where(Eq("media_type", "image"))

	assert.NotEqual(t, base.Build().SQL, withType.Build().SQL)
	assert.Equal(t, "SELECT * FROM media WHERE part_number = @p0", base.Build().SQL)
}
