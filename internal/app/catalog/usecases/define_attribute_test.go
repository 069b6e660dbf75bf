package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

func TestDefineAttribute(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeApplier, *DefineAttribute) {
		applier := &fakeApplier{}
		uc := NewDefineAttribute(&fakeAttrRepo{state: newCatalogState()}, applier, logger.NewNop())
		return applier, uc
	}

	t.Run("commits attribute and option set in one plan", func(t *testing.T) {
		applier, uc := setup()

		id, err := uc.Execute(ctx, &DefineAttributeInput{
			Code: "color", Label: "Color", DataType: "enum",
			Options: []OptionInput{
				{Value: "Black", Label: "Black", SortOrder: 1},
				{Value: "White", Label: "White", SortOrder: 2},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, 1, applier.applied())
		assert.Equal(t, 3, applier.lastCount())
	})

	t.Run("option values equal ignoring case are rejected", func(t *testing.T) {
		applier, uc := setup()

		_, err := uc.Execute(ctx, &DefineAttributeInput{
			Code: "color", Label: "Color", DataType: "enum",
			Options: []OptionInput{
				{Value: "Black", SortOrder: 1},
				{Value: "black", SortOrder: 2},
			},
		})
		require.ErrorIs(t, err, domain.ErrDuplicateOption)
		assert.Zero(t, applier.applied())
	})

	t.Run("bad data type", func(t *testing.T) {
		applier, uc := setup()

		_, err := uc.Execute(ctx, &DefineAttributeInput{Code: "color", DataType: "blob"})
		require.ErrorIs(t, err, domain.ErrBadDataType)
		assert.Zero(t, applier.applied())
	})
}
