package domain

import (
	"strings"
	"time"
)

// Product is a catalog entry identified by its part number. Brand is required;
// category, dimensions, warranty and vendor are optional references resolved
// by collaborators, not by the engine.
type Product struct {
	PartNumber       string
	BrandID          string
	CategoryID       *string
	DimensionID      *string
	WarrantyID       *string
	VendorID         *string
	ShortDescription string
	LongDescription  string
	MarketingText    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewProduct creates a product, enforcing identity invariants.
func NewProduct(partNumber, brandID string, now time.Time) (*Product, error) {
	if strings.TrimSpace(partNumber) == "" {
		return nil, ErrEmptyPartNumber
	}
	if strings.TrimSpace(brandID) == "" {
		return nil, ErrMissingBrand
	}
	return &Product{
		PartNumber: partNumber,
		BrandID:    brandID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CheckProduct evaluates a product's stored values against its category's
// resolved requirement set and returns every violation found; it never stops
// at the first one. values is keyed by attribute ID. isVariantChild reports
// whether the product is listed as a variant of a parent: a variant child must
// carry a value for each variant-marked attribute of its category, since those
// are what distinguish it from its siblings.
func CheckProduct(
	product *Product,
	requirements []ResolvedRequirement,
	values map[string]*TypedValue,
	isVariantChild bool,
) []Violation {
	var violations []Violation

	for _, req := range requirements {
		attr := req.Attribute
		value, present := values[attr.AttributeID]

		if !present {
			if req.IsRequired {
				violations = append(violations, *newViolation(
					ViolationMissingRequired, attr.Code,
					"required attribute has no value"))
			} else if attr.IsVariant && isVariantChild {
				violations = append(violations, *newViolation(
					ViolationVariantConflict, attr.Code,
					"variant product has no value for variant attribute"))
			}
			continue
		}

		if err := value.CheckSlots(); err != nil {
			violations = append(violations, *newViolation(
				ViolationTypeMismatch, attr.Code,
				"stored value does not populate exactly one slot"))
			continue
		}
		if value.Type != attr.Type {
			violations = append(violations, *newViolation(
				ViolationTypeMismatch, attr.Code,
				"stored value has type %s, attribute declares %s", value.Type, attr.Type))
		}
	}

	// Values for attributes outside the category's requirement set are legal
	// EAV rows, but values whose attribute no longer exists are not; the
	// orchestrating query reports those as UnknownAttribute before calling in.

	return violations
}
