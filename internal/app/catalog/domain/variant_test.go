package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeSet backs parentOf lookups for attach checks.
type edgeSet map[string]string

func (e edgeSet) parentOf(pn string) (string, bool, error) {
	parent, ok := e[pn]
	return parent, ok, nil
}

func TestCheckAttach(t *testing.T) {
	t.Run("valid attachment", func(t *testing.T) {
		edges := edgeSet{}
		assert.NoError(t, CheckAttach("DRL-100-RED", "DRL-100", edges.parentOf))
	})

	t.Run("self reference rejected", func(t *testing.T) {
		edges := edgeSet{}
		assert.ErrorIs(t, CheckAttach("DRL-100", "DRL-100", edges.parentOf), ErrSelfReference)
	})

	t.Run("child with different parent rejected", func(t *testing.T) {
		edges := edgeSet{"DRL-100-RED": "DRL-100"}
		err := CheckAttach("DRL-100-RED", "DRL-200", edges.parentOf)
		assert.ErrorIs(t, err, ErrAlreadyHasParent)
	})

	t.Run("re-attach to same parent is allowed", func(t *testing.T) {
		edges := edgeSet{"DRL-100-RED": "DRL-100"}
		assert.NoError(t, CheckAttach("DRL-100-RED", "DRL-100", edges.parentOf))
	})

	t.Run("direct cycle rejected", func(t *testing.T) {
		edges := edgeSet{"B": "A"}
		// A→B after B→A would make A its own ancestor.
		err := CheckAttach("A", "B", edges.parentOf)
		assert.ErrorIs(t, err, ErrCyclicVariant)
	})

	t.Run("transitive cycle rejected", func(t *testing.T) {
		edges := edgeSet{"C": "B", "B": "A"}
		err := CheckAttach("A", "C", edges.parentOf)
		assert.ErrorIs(t, err, ErrCyclicVariant)
	})

	t.Run("lookup errors propagate", func(t *testing.T) {
		boom := func(string) (string, bool, error) {
			return "", false, assert.AnError
		}
		err := CheckAttach("X", "Y", boom)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("runaway chain hits the depth bound", func(t *testing.T) {
		// Parent chain that never terminates: p0→p1→p2→...
		counter := 0
		parentOf := func(pn string) (string, bool, error) {
			if pn == "child" {
				return "", false, nil
			}
			counter++
			return pn + "x", true, nil
		}
		err := CheckAttach("child", "p0", parentOf)
		assert.ErrorIs(t, err, ErrCyclicVariant)
		assert.LessOrEqual(t, counter, MaxVariantDepth)
	})
}
