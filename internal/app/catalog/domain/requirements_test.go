package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWalkChain(t *testing.T) {
	cats := map[string]*Category{
		"root": {CategoryID: "root", Name: "Tools"},
		"mid":  {CategoryID: "mid", Name: "Power Tools", ParentID: strPtr("root")},
		"leaf": {CategoryID: "leaf", Name: "Drills", ParentID: strPtr("mid")},
	}
	lookup := func(id string) (*Category, bool) {
		c, ok := cats[id]
		return c, ok
	}

	t.Run("orders root to leaf", func(t *testing.T) {
		chain, err := WalkChain("leaf", lookup)
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, "root", chain[0].CategoryID)
		assert.Equal(t, "mid", chain[1].CategoryID)
		assert.Equal(t, "leaf", chain[2].CategoryID)
	})

	t.Run("single node chain", func(t *testing.T) {
		chain, err := WalkChain("root", lookup)
		require.NoError(t, err)
		require.Len(t, chain, 1)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := WalkChain("nope", lookup)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("two-node cycle", func(t *testing.T) {
		cyclic := map[string]*Category{
			"a": {CategoryID: "a", ParentID: strPtr("b")},
			"b": {CategoryID: "b", ParentID: strPtr("a")},
		}
		_, err := WalkChain("a", func(id string) (*Category, bool) {
			c, ok := cyclic[id]
			return c, ok
		})
		assert.ErrorIs(t, err, ErrCyclicCategory)
	})

	t.Run("self-parent", func(t *testing.T) {
		_, err := WalkChain("x", func(id string) (*Category, bool) {
			return &Category{CategoryID: "x", ParentID: strPtr("x")}, true
		})
		assert.ErrorIs(t, err, ErrCyclicCategory)
	})

	t.Run("depth bound trips before unbounded walk", func(t *testing.T) {
		// Every node has a distinct fresh parent; the walk must still stop.
		_, err := WalkChain("n0", func(id string) (*Category, bool) {
			return &Category{CategoryID: id, ParentID: strPtr(id + "x")}, true
		})
		assert.ErrorIs(t, err, ErrCyclicCategory)
	})
}

func TestOverlayRequirements(t *testing.T) {
	color := Attribute{AttributeID: "a-color", Code: "color", Type: TypeEnum, SortOrder: 2}
	voltage := Attribute{AttributeID: "a-voltage", Code: "voltage", Type: TypeInt, SortOrder: 1}
	brandline := Attribute{AttributeID: "a-line", Code: "line", Type: TypeText, SortOrder: 3}
	attrs := map[string]*Attribute{
		"a-color":   &color,
		"a-voltage": &voltage,
		"a-line":    &brandline,
	}
	chain := []Category{
		{CategoryID: "root"},
		{CategoryID: "leaf", ParentID: strPtr("root")},
	}

	t.Run("union of ancestor and leaf links", func(t *testing.T) {
		links := map[string][]RequirementLink{
			"root": {{CategoryID: "root", AttributeID: "a-color", IsRequired: true, DisplayOrder: 1}},
			"leaf": {{CategoryID: "leaf", AttributeID: "a-voltage", IsRequired: true, DisplayOrder: 2}},
		}
		reqs := OverlayRequirements(chain, links, attrs)
		require.Len(t, reqs, 2)
		assert.Equal(t, "color", reqs[0].Attribute.Code)
		assert.Equal(t, "voltage", reqs[1].Attribute.Code)
	})

	t.Run("leaf explicit isRequired=false overrides ancestor's true", func(t *testing.T) {
		links := map[string][]RequirementLink{
			"root": {{CategoryID: "root", AttributeID: "a-color", IsRequired: true, DisplayOrder: 1}},
			"leaf": {{CategoryID: "leaf", AttributeID: "a-color", IsRequired: false, DisplayOrder: 1}},
		}
		reqs := OverlayRequirements(chain, links, attrs)
		require.Len(t, reqs, 1)
		assert.False(t, reqs[0].IsRequired)
		assert.Equal(t, "leaf", reqs[0].SourceCategoryID)
	})

	t.Run("ordering is display order, then attribute sort order, then code", func(t *testing.T) {
		links := map[string][]RequirementLink{
			"root": {
				{CategoryID: "root", AttributeID: "a-line", IsRequired: false, DisplayOrder: 5},
				{CategoryID: "root", AttributeID: "a-color", IsRequired: false, DisplayOrder: 5},
				{CategoryID: "root", AttributeID: "a-voltage", IsRequired: true, DisplayOrder: 1},
			},
		}
		reqs := OverlayRequirements(chain, links, attrs)
		require.Len(t, reqs, 3)
		assert.Equal(t, "voltage", reqs[0].Attribute.Code)
		// Same display order: voltage... color (sort 2) before line (sort 3).
		assert.Equal(t, "color", reqs[1].Attribute.Code)
		assert.Equal(t, "line", reqs[2].Attribute.Code)
	})

	t.Run("links to unknown attributes are skipped", func(t *testing.T) {
		links := map[string][]RequirementLink{
			"leaf": {{CategoryID: "leaf", AttributeID: "a-gone", IsRequired: true}},
		}
		reqs := OverlayRequirements(chain, links, attrs)
		assert.Empty(t, reqs)
	})
}
