package domain

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attr(code string, dt DataType) *Attribute {
	return &Attribute{AttributeID: "attr-" + code, Code: code, Label: code, Type: dt}
}

func TestValidateValue_Text(t *testing.T) {
	a := attr("title", TypeText)

	t.Run("accepts non-empty text", func(t *testing.T) {
		v, viol := ValidateValue(a, nil, "Cordless Drill")
		require.Nil(t, viol)
		require.NotNil(t, v.Text)
		assert.Equal(t, "Cordless Drill", *v.Text)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, viol := ValidateValue(a, nil, "   ")
		require.NotNil(t, viol)
		assert.Equal(t, ViolationTypeMismatch, viol.Code)
		assert.Equal(t, "title", viol.AttributeCode)
	})
}

func TestValidateValue_Int(t *testing.T) {
	a := attr("weight", TypeInt)
	a.Unit = "g"

	t.Run("accepts integral value and carries unit", func(t *testing.T) {
		v, viol := ValidateValue(a, nil, "1500")
		require.Nil(t, viol)
		require.NotNil(t, v.Int)
		assert.Equal(t, int64(1500), *v.Int)
		assert.Equal(t, "g", v.Unit)
	})

	t.Run("rejects non-integral value", func(t *testing.T) {
		_, viol := ValidateValue(a, nil, "1.5")
		require.NotNil(t, viol)
		assert.Equal(t, ViolationTypeMismatch, viol.Code)
	})
}

func TestValidateValue_Decimal(t *testing.T) {
	a := attr("length", TypeDecimal)

	t.Run("accepts finite decimal", func(t *testing.T) {
		v, viol := ValidateValue(a, nil, "12.75")
		require.Nil(t, viol)
		require.NotNil(t, v.Decimal)
		assert.InDelta(t, 12.75, *v.Decimal, 1e-9)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		for _, raw := range []string{"NaN", "Inf", "-Inf", "abc"} {
			_, viol := ValidateValue(a, nil, raw)
			require.NotNil(t, viol, "raw=%q", raw)
			assert.Equal(t, ViolationTypeMismatch, viol.Code)
		}
	})
}

func TestValidateValue_Bool(t *testing.T) {
	a := attr("wireless", TypeBool)

	t.Run("accepts the boolean domain", func(t *testing.T) {
		for raw, want := range map[string]bool{
			"true": true, "1": true,
			"false": false, "0": false,
		} {
			v, viol := ValidateValue(a, nil, raw)
			require.Nil(t, viol, "raw=%q", raw)
			assert.Equal(t, want, *v.Bool, "raw=%q", raw)
		}
	})

	t.Run("rejects values outside the domain", func(t *testing.T) {
		// ParseBool forms like "t" or "TRUE" are outside the lexical domain.
		for _, raw := range []string{"yes", "t", "T", "TRUE", "F", "2"} {
			_, viol := ValidateValue(a, nil, raw)
			require.NotNil(t, viol, "raw=%q", raw)
			assert.Equal(t, ViolationTypeMismatch, viol.Code)
		}
	})
}

func TestValidateValue_Date(t *testing.T) {
	a := attr("release_date", TypeDate)

	t.Run("accepts calendar date", func(t *testing.T) {
		v, viol := ValidateValue(a, nil, "2024-06-01")
		require.Nil(t, viol)
		assert.Equal(t, civil.Date{Year: 2024, Month: 6, Day: 1}, *v.Date)
	})

	t.Run("rejects a timestamp", func(t *testing.T) {
		_, viol := ValidateValue(a, nil, "2024-06-01T10:00:00Z")
		require.NotNil(t, viol)
		assert.Equal(t, ViolationTypeMismatch, viol.Code)
	})
}

func TestValidateValue_JSON(t *testing.T) {
	a := attr("specs", TypeJSON)

	t.Run("accepts well-formed document", func(t *testing.T) {
		v, viol := ValidateValue(a, nil, `{"voltage":18,"cells":2}`)
		require.Nil(t, viol)
		require.NotNil(t, v.JSON)
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		_, viol := ValidateValue(a, nil, `{"voltage":18`)
		require.NotNil(t, viol)
		assert.Equal(t, ViolationTypeMismatch, viol.Code)
	})
}

func TestValidateValue_Enum(t *testing.T) {
	a := attr("color", TypeEnum)
	options := []AttributeOption{
		{OptionID: "opt-black", AttributeID: a.AttributeID, Value: "Black", Label: "Black"},
		{OptionID: "opt-white", AttributeID: a.AttributeID, Value: "White", Label: "White"},
	}

	t.Run("matches case-insensitively and returns an option reference", func(t *testing.T) {
		v, viol := ValidateValue(a, options, "black")
		require.Nil(t, viol)
		require.NotNil(t, v.OptionID)
		assert.Equal(t, "opt-black", *v.OptionID)
		assert.Nil(t, v.Text, "enum result must be a reference, not the raw string")
	})

	t.Run("unknown option is its own violation code", func(t *testing.T) {
		_, viol := ValidateValue(a, options, "Purple")
		require.NotNil(t, viol)
		assert.Equal(t, ViolationUnknownOption, viol.Code)
	})
}

func TestValidateValue_ExactlyOneSlot(t *testing.T) {
	cases := map[DataType]string{
		TypeText:    "hello",
		TypeInt:     "42",
		TypeDecimal: "4.2",
		TypeBool:    "false",
		TypeDate:    "2023-11-05",
		TypeJSON:    `[1,2,3]`,
	}
	for dt, raw := range cases {
		v, viol := ValidateValue(attr(string(dt), dt), nil, raw)
		require.Nil(t, viol, "type=%s", dt)
		assert.Equal(t, 1, v.SlotCount(), "type=%s", dt)
		assert.NoError(t, v.CheckSlots(), "type=%s", dt)
	}

	enumAttr := attr("color", TypeEnum)
	v, viol := ValidateValue(enumAttr, []AttributeOption{{OptionID: "o1", Value: "Red"}}, "red")
	require.Nil(t, viol)
	assert.Equal(t, 1, v.SlotCount())
	assert.NoError(t, v.CheckSlots())
}

func TestTypedValue_CheckSlots(t *testing.T) {
	t.Run("no slot populated", func(t *testing.T) {
		v := &TypedValue{Type: TypeText}
		assert.ErrorIs(t, v.CheckSlots(), ErrInvalidSlot)
	})

	t.Run("two slots populated", func(t *testing.T) {
		s := "x"
		n := int64(1)
		v := &TypedValue{Type: TypeText, Text: &s, Int: &n}
		assert.ErrorIs(t, v.CheckSlots(), ErrInvalidSlot)
	})

	t.Run("slot disagrees with declared type", func(t *testing.T) {
		n := int64(1)
		v := &TypedValue{Type: TypeText, Int: &n}
		assert.ErrorIs(t, v.CheckSlots(), ErrInvalidSlot)
	})
}
