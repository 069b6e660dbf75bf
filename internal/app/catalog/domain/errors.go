package domain

import (
	"errors"
	"fmt"
)

// Schema errors: configuration-time problems with the reference data itself.
// They abort the offending operation and nothing else.
var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCyclicCategory    = errors.New("category ancestry contains a cycle")
)

// Resolution errors: expected misses, non-fatal to the caller.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoPrice         = errors.New("no price effective for the requested date")
	ErrNoMedia         = errors.New("no media of the requested type")
)

// Product and variant structure errors.
var (
	ErrEmptyPartNumber  = errors.New("part number cannot be empty")
	ErrMissingBrand     = errors.New("product brand is required")
	ErrSelfReference    = errors.New("product cannot be a variant of itself")
	ErrAlreadyHasParent = errors.New("product is already a variant of another parent")
	ErrCyclicVariant    = errors.New("variant relationship would create a cycle")
)

// Value and money errors.
var (
	ErrInvalidAmount   = errors.New("price amount must not be negative")
	ErrMoneyOverflow   = errors.New("money value exceeds storage capacity")
	ErrInvalidSlot     = errors.New("typed value must populate exactly one slot")
	ErrEmptyMediaURL   = errors.New("media URL cannot be empty")
	ErrBadMediaType    = errors.New("unknown media type")
	ErrBadDataType     = errors.New("unknown attribute data type")
	ErrEmptyAttribute  = errors.New("attribute code cannot be empty")
	ErrDuplicateOption = errors.New("option values must be unique ignoring case")
)

// ViolationCode classifies a per-value validation failure.
type ViolationCode string

const (
	ViolationTypeMismatch     ViolationCode = "TYPE_MISMATCH"
	ViolationMissingRequired  ViolationCode = "MISSING_REQUIRED"
	ViolationUnknownOption    ViolationCode = "UNKNOWN_OPTION"
	ViolationUnknownAttribute ViolationCode = "UNKNOWN_ATTRIBUTE"
	ViolationVariantConflict  ViolationCode = "VARIANT_CONFLICT"
)

// Violation is a single recoverable validation failure for one attribute of
// one product. Violations are accumulated per product and reported as a batch,
// never first-error-wins, so ingestion tooling gets a complete diagnostic list.
type Violation struct {
	Code          ViolationCode
	AttributeCode string
	Message       string
}

func (v *Violation) Error() string {
	if v.AttributeCode == "" {
		return fmt.Sprintf("%s: %s", v.Code, v.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", v.Code, v.AttributeCode, v.Message)
}

func newViolation(code ViolationCode, attrCode, format string, args ...interface{}) *Violation {
	return &Violation{
		Code:          code,
		AttributeCode: attrCode,
		Message:       fmt.Sprintf(format, args...),
	}
}
