package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	dt, err := ParseDataType("Enum")
	require.NoError(t, err)
	assert.Equal(t, TypeEnum, dt)

	_, err = ParseDataType("blob")
	assert.ErrorIs(t, err, ErrBadDataType)
}

func TestNewAttribute(t *testing.T) {
	a, err := NewAttribute("id-1", "color", "Color", "enum")
	require.NoError(t, err)
	assert.Equal(t, TypeEnum, a.Type)

	_, err = NewAttribute("id-2", " ", "Blank", "text")
	assert.ErrorIs(t, err, ErrEmptyAttribute)
}

func TestCheckOptionValues(t *testing.T) {
	assert.NoError(t, CheckOptionValues([]string{"Black", "White", "Navy Blue"}))
	assert.NoError(t, CheckOptionValues(nil))

	assert.ErrorIs(t, CheckOptionValues([]string{"Black", "black"}), ErrDuplicateOption)
	assert.ErrorIs(t, CheckOptionValues([]string{"Black", " BLACK "}), ErrDuplicateOption)
}

func TestEditAttribute(t *testing.T) {
	a := Attribute{AttributeID: "id-1", Code: "color", Label: "Color", Type: TypeEnum}

	t.Run("tracks only changed fields", func(t *testing.T) {
		edit := EditAttribute(a)
		edit.SetLabel("Colour")
		edit.SetFlags(true, false, true)
		edit.SetFlags(true, false, true) // repeat is a no-op

		assert.True(t, edit.Changes().Dirty(FieldLabel))
		assert.True(t, edit.Changes().Dirty(FieldIsVariant))
		assert.True(t, edit.Changes().Dirty(FieldIsFacet))
		assert.False(t, edit.Changes().Dirty(FieldIsRequired))
		assert.Equal(t, "Colour", edit.Attribute().Label)
	})

	t.Run("unchanged values stay clean", func(t *testing.T) {
		edit := EditAttribute(a)
		edit.SetLabel(a.Label)
		edit.SetUnit(a.Unit)
		assert.False(t, edit.Changes().HasChanges())
	})
}
