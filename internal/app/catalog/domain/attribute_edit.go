package domain

// Field names for attribute change tracking.
const (
	FieldLabel      = "label"
	FieldIsVariant  = "is_variant"
	FieldIsRequired = "is_required"
	FieldIsFacet    = "is_facet"
	FieldUnit       = "unit"
	FieldGroup      = "attr_group"
	FieldSortOrder  = "sort_order"
)

// AttributeEdit is an administrative edit session over an attribute. Code and
// data type are identity and have no setters; label, flags, unit, group and
// sort order may change. Edits are rare and serialized by the caller.
type AttributeEdit struct {
	attr    Attribute
	changes *ChangeTracker
}

// EditAttribute starts an edit session with a clean change set.
func EditAttribute(a Attribute) *AttributeEdit {
	return &AttributeEdit{attr: a, changes: NewChangeTracker()}
}

// Attribute returns the edited attribute.
func (e *AttributeEdit) Attribute() Attribute {
	return e.attr
}

// Changes returns the dirty-field set for the repository.
func (e *AttributeEdit) Changes() *ChangeTracker {
	return e.changes
}

// SetLabel updates the display label.
func (e *AttributeEdit) SetLabel(label string) {
	if e.attr.Label == label {
		return
	}
	e.attr.Label = label
	e.changes.MarkDirty(FieldLabel)
}

// SetFlags updates the variant/required/facet flags.
func (e *AttributeEdit) SetFlags(isVariant, isRequired, isFacet bool) {
	if e.attr.IsVariant != isVariant {
		e.attr.IsVariant = isVariant
		e.changes.MarkDirty(FieldIsVariant)
	}
	if e.attr.IsRequired != isRequired {
		e.attr.IsRequired = isRequired
		e.changes.MarkDirty(FieldIsRequired)
	}
	if e.attr.IsFacet != isFacet {
		e.attr.IsFacet = isFacet
		e.changes.MarkDirty(FieldIsFacet)
	}
}

// SetUnit updates the unit tag.
func (e *AttributeEdit) SetUnit(unit string) {
	if e.attr.Unit == unit {
		return
	}
	e.attr.Unit = unit
	e.changes.MarkDirty(FieldUnit)
}

// SetGroup updates the display group.
func (e *AttributeEdit) SetGroup(group string) {
	if e.attr.Group == group {
		return
	}
	e.attr.Group = group
	e.changes.MarkDirty(FieldGroup)
}

// SetSortOrder updates the sort order.
func (e *AttributeEdit) SetSortOrder(n int64) {
	if e.attr.SortOrder == n {
		return
	}
	e.attr.SortOrder = n
	e.changes.MarkDirty(FieldSortOrder)
}
