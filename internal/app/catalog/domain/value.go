package domain

import (
	"cloud.google.com/go/civil"
)

// TypedValue is the tagged-union value of one product attribute. Exactly one
// slot is populated; CheckSlots enforces the invariant that the storage schema
// expressed as a CHECK constraint. Unit is carried through from the attribute
// definition for numeric values and never interpreted.
type TypedValue struct {
	Type     DataType
	Text     *string
	Int      *int64
	Decimal  *float64
	Bool     *bool
	Date     *civil.Date
	JSON     *string
	OptionID *string
	Unit     string
}

// NewTextValue creates a text-slot value.
func NewTextValue(s string) *TypedValue {
	return &TypedValue{Type: TypeText, Text: &s}
}

// NewIntValue creates an int-slot value with an optional unit tag.
func NewIntValue(n int64, unit string) *TypedValue {
	return &TypedValue{Type: TypeInt, Int: &n, Unit: unit}
}

// NewDecimalValue creates a decimal-slot value with an optional unit tag.
func NewDecimalValue(f float64, unit string) *TypedValue {
	return &TypedValue{Type: TypeDecimal, Decimal: &f, Unit: unit}
}

// NewBoolValue creates a bool-slot value.
func NewBoolValue(b bool) *TypedValue {
	return &TypedValue{Type: TypeBool, Bool: &b}
}

// NewDateValue creates a date-slot value.
func NewDateValue(d civil.Date) *TypedValue {
	return &TypedValue{Type: TypeDate, Date: &d}
}

// NewJSONValue creates a json-slot value holding the raw document.
func NewJSONValue(doc string) *TypedValue {
	return &TypedValue{Type: TypeJSON, JSON: &doc}
}

// NewOptionValue creates an option-reference value for an enum attribute.
func NewOptionValue(optionID string) *TypedValue {
	return &TypedValue{Type: TypeEnum, OptionID: &optionID}
}

// SlotCount returns how many typed slots are populated.
func (v *TypedValue) SlotCount() int {
	n := 0
	if v.Text != nil {
		n++
	}
	if v.Int != nil {
		n++
	}
	if v.Decimal != nil {
		n++
	}
	if v.Bool != nil {
		n++
	}
	if v.Date != nil {
		n++
	}
	if v.JSON != nil {
		n++
	}
	if v.OptionID != nil {
		n++
	}
	return n
}

// CheckSlots verifies the exactly-one-slot invariant and that the populated
// slot agrees with the declared data type.
func (v *TypedValue) CheckSlots() error {
	if v.SlotCount() != 1 {
		return ErrInvalidSlot
	}
	var ok bool
	switch v.Type {
	case TypeText:
		ok = v.Text != nil
	case TypeInt:
		ok = v.Int != nil
	case TypeDecimal:
		ok = v.Decimal != nil
	case TypeBool:
		ok = v.Bool != nil
	case TypeDate:
		ok = v.Date != nil
	case TypeJSON:
		ok = v.JSON != nil
	case TypeEnum:
		ok = v.OptionID != nil
	default:
		return ErrBadDataType
	}
	if !ok {
		return ErrInvalidSlot
	}
	return nil
}

// AttributeValue binds a TypedValue to a product and attribute. The pair
// (PartNumber, AttributeID) is the storage key.
type AttributeValue struct {
	PartNumber  string
	AttributeID string
	Value       TypedValue
}
