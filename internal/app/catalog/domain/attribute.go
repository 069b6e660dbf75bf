package domain

import "strings"

// DataType enumerates the typed slots an attribute value can occupy.
type DataType string

const (
	TypeText    DataType = "text"
	TypeInt     DataType = "int"
	TypeDecimal DataType = "decimal"
	TypeBool    DataType = "bool"
	TypeDate    DataType = "date"
	TypeEnum    DataType = "enum"
	TypeJSON    DataType = "json"
)

// ParseDataType validates and normalizes a data type string.
func ParseDataType(s string) (DataType, error) {
	switch dt := DataType(strings.ToLower(s)); dt {
	case TypeText, TypeInt, TypeDecimal, TypeBool, TypeDate, TypeEnum, TypeJSON:
		return dt, nil
	default:
		return "", ErrBadDataType
	}
}

// Attribute is a catalog attribute definition. Code is its identity and never
// changes; label and flags are administrative and may be edited.
type Attribute struct {
	AttributeID string
	Code        string
	Label       string
	Type        DataType
	IsVariant   bool
	IsRequired  bool
	IsFacet     bool
	Unit        string
	Group       string
	SortOrder   int64
}

// NewAttribute creates an attribute definition, validating code and data type.
func NewAttribute(id, code, label string, dataType string) (*Attribute, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyAttribute
	}
	dt, err := ParseDataType(dataType)
	if err != nil {
		return nil, err
	}
	return &Attribute{
		AttributeID: id,
		Code:        code,
		Label:       label,
		Type:        dt,
	}, nil
}

// AttributeOption is one allowed value of an enum attribute. Value is unique
// case-insensitively within the attribute; the stored casing is preserved for
// display.
type AttributeOption struct {
	OptionID    string
	AttributeID string
	Value       string
	Label       string
	SortOrder   int64
}

// CheckOptionValues verifies that no two values in a prospective option set
// are equal ignoring case. MatchOption depends on this holding; an option set
// that breaks it would make enum resolution arbitrary.
func CheckOptionValues(values []string) error {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		folded := strings.ToLower(strings.TrimSpace(v))
		if seen[folded] {
			return ErrDuplicateOption
		}
		seen[folded] = true
	}
	return nil
}

// MatchOption resolves raw against an option set case-insensitively. Matching
// is case-insensitive for all consumers, mirroring the storage-level
// uniqueness rule, so at most one option can match.
func MatchOption(options []AttributeOption, raw string) (*AttributeOption, bool) {
	for i := range options {
		if strings.EqualFold(options[i].Value, raw) {
			return &options[i], true
		}
	}
	return nil, false
}
