package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

func TestDefineCategory(t *testing.T) {
	ctx := context.Background()

	setup := func() (*catalogState, *fakeApplier, *DefineCategory) {
		state := newCatalogState()
		state.categories["cat-root"] = &domain.Category{CategoryID: "cat-root", Name: "Tools"}
		state.addAttribute(&domain.Attribute{
			AttributeID: "attr-color", Code: "color", Label: "Color", Type: domain.TypeEnum,
		})
		applier := &fakeApplier{}
		uc := NewDefineCategory(&fakeCatRepo{state: state}, &fakeAttrRepo{state: state}, applier, logger.NewNop())
		return state, applier, uc
	}

	t.Run("commits category and requirement links in one plan", func(t *testing.T) {
		_, applier, uc := setup()

		parent := "cat-root"
		id, err := uc.Execute(ctx, &DefineCategoryInput{
			Code: "drills", Name: "Drills", ParentID: &parent,
			Requirements: []RequirementInput{
				{AttributeID: "attr-color", IsRequired: true, DisplayOrder: 1},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, 1, applier.applied())
		assert.Equal(t, 2, applier.lastCount())
	})

	t.Run("unknown parent", func(t *testing.T) {
		_, applier, uc := setup()

		parent := "cat-ghost"
		_, err := uc.Execute(ctx, &DefineCategoryInput{Name: "Orphans", ParentID: &parent})
		require.ErrorIs(t, err, domain.ErrCategoryNotFound)
		assert.Zero(t, applier.applied())
	})

	t.Run("requirement link to an unknown attribute is rejected", func(t *testing.T) {
		_, applier, uc := setup()

		_, err := uc.Execute(ctx, &DefineCategoryInput{
			Name: "Drills",
			Requirements: []RequirementInput{
				{AttributeID: "attr-color", IsRequired: true},
				{AttributeID: "attr-ghost", IsRequired: true},
			},
		})
		require.ErrorIs(t, err, domain.ErrAttributeNotFound)
		assert.Zero(t, applier.applied(), "nothing may be written for a half-valid definition")
	})
}
