package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct("DRL-100", "brand-1", now)
		require.NoError(t, err)
		assert.Equal(t, "DRL-100", p.PartNumber)
		assert.Equal(t, now, p.CreatedAt)
	})

	t.Run("empty part number rejected", func(t *testing.T) {
		_, err := NewProduct("  ", "brand-1", now)
		assert.ErrorIs(t, err, ErrEmptyPartNumber)
	})

	t.Run("missing brand rejected", func(t *testing.T) {
		_, err := NewProduct("DRL-100", "", now)
		assert.ErrorIs(t, err, ErrMissingBrand)
	})
}

func TestCheckProduct(t *testing.T) {
	color := Attribute{AttributeID: "a-color", Code: "color", Type: TypeEnum, IsVariant: true}
	voltage := Attribute{AttributeID: "a-voltage", Code: "voltage", Type: TypeInt}
	material := Attribute{AttributeID: "a-material", Code: "material", Type: TypeText}

	reqs := []ResolvedRequirement{
		{Attribute: voltage, IsRequired: true, DisplayOrder: 1},
		{Attribute: color, IsRequired: true, DisplayOrder: 2},
		{Attribute: material, IsRequired: false, DisplayOrder: 3},
	}

	product := &Product{PartNumber: "DRL-100", BrandID: "brand-1"}

	t.Run("no violations when every required attribute has a valid value", func(t *testing.T) {
		values := map[string]*TypedValue{
			"a-voltage": NewIntValue(18, "V"),
			"a-color":   NewOptionValue("opt-black"),
		}
		assert.Empty(t, CheckProduct(product, reqs, values, false))
	})

	t.Run("all violations reported in one batch", func(t *testing.T) {
		values := map[string]*TypedValue{
			// voltage missing entirely; color carries the wrong slot type.
			"a-color": NewTextValue("black"),
		}
		violations := CheckProduct(product, reqs, values, false)
		require.Len(t, violations, 2)

		codes := map[ViolationCode]string{}
		for _, v := range violations {
			codes[v.Code] = v.AttributeCode
		}
		assert.Equal(t, "voltage", codes[ViolationMissingRequired])
		assert.Equal(t, "color", codes[ViolationTypeMismatch])
	})

	t.Run("optional attribute may be absent", func(t *testing.T) {
		values := map[string]*TypedValue{
			"a-voltage": NewIntValue(18, "V"),
			"a-color":   NewOptionValue("opt-black"),
		}
		violations := CheckProduct(product, reqs, values, false)
		assert.Empty(t, violations)
	})

	t.Run("corrupt slot invariant surfaces as type mismatch", func(t *testing.T) {
		s := "x"
		n := int64(2)
		values := map[string]*TypedValue{
			"a-voltage": NewIntValue(18, "V"),
			"a-color":   NewOptionValue("opt-black"),
			"a-material": {Type: TypeText, Text: &s, Int: &n},
		}
		violations := CheckProduct(product, reqs, values, false)
		require.Len(t, violations, 1)
		assert.Equal(t, ViolationTypeMismatch, violations[0].Code)
		assert.Equal(t, "material", violations[0].AttributeCode)
	})

	t.Run("variant child must populate variant attributes", func(t *testing.T) {
		optionalColor := []ResolvedRequirement{
			{Attribute: voltage, IsRequired: true},
			{Attribute: color, IsRequired: false},
		}
		values := map[string]*TypedValue{
			"a-voltage": NewIntValue(18, "V"),
		}

		// Standalone product: optional variant attribute may stay empty.
		assert.Empty(t, CheckProduct(product, optionalColor, values, false))

		// Variant child: the differentiating attribute is mandatory.
		violations := CheckProduct(product, optionalColor, values, true)
		require.Len(t, violations, 1)
		assert.Equal(t, ViolationVariantConflict, violations[0].Code)
		assert.Equal(t, "color", violations[0].AttributeCode)
	})
}
