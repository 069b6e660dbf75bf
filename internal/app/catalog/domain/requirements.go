package domain

import "sort"

// RequirementLink is one explicit Category×Attribute requirement row.
type RequirementLink struct {
	CategoryID   string
	AttributeID  string
	IsRequired   bool
	DisplayOrder int64
}

// ResolvedRequirement is one attribute a category's products must satisfy,
// after overlaying the ancestor chain. SourceCategoryID is the closest
// category whose link decided IsRequired.
type ResolvedRequirement struct {
	Attribute        Attribute
	IsRequired       bool
	DisplayOrder     int64
	SourceCategoryID string
}

// OverlayRequirements computes a category's effective requirement set from its
// ancestor chain ordered root to leaf. Each level's explicit links overlay the
// inherited ones, so the leaf-most IsRequired wins on conflict. attrsByID must
// hold every linked attribute; links it cannot resolve are skipped, and the
// registry refuses to build such a map. The result is ordered by display order, then
// attribute sort order, then code, for a stable catalog-facing listing.
func OverlayRequirements(
	chain []Category,
	linksByCategory map[string][]RequirementLink,
	attrsByID map[string]*Attribute,
) []ResolvedRequirement {
	byAttribute := make(map[string]*ResolvedRequirement)

	for _, cat := range chain {
		for _, link := range linksByCategory[cat.CategoryID] {
			attr, ok := attrsByID[link.AttributeID]
			if !ok {
				continue
			}
			byAttribute[link.AttributeID] = &ResolvedRequirement{
				Attribute:        *attr,
				IsRequired:       link.IsRequired,
				DisplayOrder:     link.DisplayOrder,
				SourceCategoryID: link.CategoryID,
			}
		}
	}

	out := make([]ResolvedRequirement, 0, len(byAttribute))
	for _, req := range byAttribute {
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		if out[i].Attribute.SortOrder != out[j].Attribute.SortOrder {
			return out[i].Attribute.SortOrder < out[j].Attribute.SortOrder
		}
		return out[i].Attribute.Code < out[j].Attribute.Code
	})
	return out
}
