package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
)

// CreateTestAttribute inserts an attribute definition directly and returns
// its generated ID.
func CreateTestAttribute(t *testing.T, client *spanner.Client, attrs contracts.AttributeRepository, code string, dataType domain.DataType) string {
	t.Helper()

	attr := &domain.Attribute{
		AttributeID: uuid.NewString(),
		Code:        code,
		Label:       code,
		Type:        dataType,
	}
	apply(t, client, attrs.InsertMut(attr))
	return attr.AttributeID
}

// CreateTestCategory inserts a category node directly and returns its ID.
func CreateTestCategory(t *testing.T, client *spanner.Client, cats contracts.CategoryRepository, name string, parentID *string) string {
	t.Helper()

	category := &domain.Category{
		CategoryID: uuid.NewString(),
		Code:       name,
		Name:       name,
		ParentID:   parentID,
	}
	apply(t, client, cats.InsertMut(category))
	return category.CategoryID
}

// CreateTestProduct inserts a bare product row directly.
func CreateTestProduct(t *testing.T, client *spanner.Client, products contracts.ProductRepository, partNumber string, categoryID *string) {
	t.Helper()

	apply(t, client, products.InsertMut(&domain.Product{
		PartNumber: partNumber,
		BrandID:    "brand-test",
		CategoryID: categoryID,
	}))
}

func apply(t *testing.T, client *spanner.Client, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to apply fixture mutations")
}
