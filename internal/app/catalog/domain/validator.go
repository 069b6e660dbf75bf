package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// ValidateValue checks a raw string value against an attribute definition and
// produces the typed value it occupies. options is the attribute's option set
// and only consulted for enum attributes. A nil Violation means the value is
// valid; validation never mutates anything, so callers may run many products
// in parallel.
func ValidateValue(attr *Attribute, options []AttributeOption, raw string) (*TypedValue, *Violation) {
	switch attr.Type {
	case TypeText:
		if strings.TrimSpace(raw) == "" {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "text value cannot be empty")
		}
		return NewTextValue(raw), nil

	case TypeInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "%q is not an integer", raw)
		}
		return NewIntValue(n, attr.Unit), nil

	case TypeDecimal:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "%q is not a finite number", raw)
		}
		return NewDecimalValue(f, attr.Unit), nil

	case TypeBool:
		// Fixed lexical domain, deliberately narrower than strconv.ParseBool.
		switch strings.TrimSpace(raw) {
		case "true", "1":
			return NewBoolValue(true), nil
		case "false", "0":
			return NewBoolValue(false), nil
		default:
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "%q is not a boolean (want true, false, 1 or 0)", raw)
		}

	case TypeDate:
		d, err := civil.ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "%q is not a calendar date (want YYYY-MM-DD)", raw)
		}
		return NewDateValue(d), nil

	case TypeJSON:
		if strings.TrimSpace(raw) == "" {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "json value cannot be empty")
		}
		if !json.Valid([]byte(raw)) {
			return nil, newViolation(ViolationTypeMismatch, attr.Code, "value is not well-formed JSON")
		}
		return NewJSONValue(raw), nil

	case TypeEnum:
		opt, ok := MatchOption(options, strings.TrimSpace(raw))
		if !ok {
			return nil, newViolation(ViolationUnknownOption, attr.Code, "%q is not an option of %s", raw, attr.Code)
		}
		return NewOptionValue(opt.OptionID), nil

	default:
		return nil, newViolation(ViolationTypeMismatch, attr.Code, "attribute has unknown data type %q", attr.Type)
	}
}
