package domain

// MaxVariantDepth bounds the ancestor walk across variant edges. Variant
// hierarchies are shallow in practice (parent plus one level of children), so
// a deep chain means corrupt data.
const MaxVariantDepth = 32

// CheckAttach decides whether child may become a variant of parent. parentOf
// returns the current parent of a part number, or false when it has none.
//
// Rejected: self-reference, a child that already has a different parent, and
// any edge whose parent is transitively a variant of the child (cycle).
// Re-attaching a child to its current parent is a no-op and allowed.
func CheckAttach(childPN, parentPN string, parentOf func(pn string) (string, bool, error)) error {
	if childPN == parentPN {
		return ErrSelfReference
	}

	current, hasParent, err := parentOf(childPN)
	if err != nil {
		return err
	}
	if hasParent && current != parentPN {
		return ErrAlreadyHasParent
	}

	// Walk upward from the prospective parent; reaching the child means the
	// new edge would close a cycle.
	pn := parentPN
	for depth := 0; depth < MaxVariantDepth; depth++ {
		ancestor, ok, err := parentOf(pn)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if ancestor == childPN {
			return ErrCyclicVariant
		}
		pn = ancestor
	}
	return ErrCyclicVariant
}
