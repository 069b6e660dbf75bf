package domain

// MaxCategoryDepth bounds the ancestor walk. An ancestry deeper than this is
// treated as cyclic so a bad parent pointer fails fast instead of looping.
const MaxCategoryDepth = 32

// Category is a node in the category tree. ParentID forms an adjacency
// structure with O(1) parent lookup; the tree is only a tree by convention, so
// every walk must defend against cycles.
type Category struct {
	CategoryID         string
	Code               string
	Name               string
	ParentID           *string
	ClassificationCode string
}

// WalkChain resolves a category's ancestor chain ordered root to leaf. lookup
// returns the category for an ID or false when it does not exist. A revisited
// node or a chain deeper than MaxCategoryDepth yields ErrCyclicCategory; a
// missing node yields ErrCategoryNotFound.
func WalkChain(leafID string, lookup func(id string) (*Category, bool)) ([]Category, error) {
	seen := make(map[string]bool, 8)
	chain := make([]Category, 0, 8)

	id := leafID
	for depth := 0; ; depth++ {
		if depth >= MaxCategoryDepth {
			return nil, ErrCyclicCategory
		}
		if seen[id] {
			return nil, ErrCyclicCategory
		}
		seen[id] = true

		cat, ok := lookup(id)
		if !ok {
			return nil, ErrCategoryNotFound
		}
		chain = append(chain, *cat)

		if cat.ParentID == nil {
			break
		}
		id = *cat.ParentID
	}

	// Collected leaf-first; callers want root→leaf.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
