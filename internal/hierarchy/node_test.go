package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSampleTree builds root{a:5, b:3, sub{c:2}} used across tests.
func buildSampleTree(t *testing.T) *Composite {
	t.Helper()

	root := NewComposite("root")
	sub := NewComposite("sub")
	require.NoError(t, sub.Attach(NewLeaf("c", 2)))
	require.NoError(t, root.Attach(NewLeaf("a", 5)))
	require.NoError(t, root.Attach(NewLeaf("b", 3)))
	require.NoError(t, root.Attach(sub))
	return root
}

func TestLeaf_Metric(t *testing.T) {
	leaf := NewLeaf("a", 5)
	assert.Equal(t, "a", leaf.Name())
	assert.Equal(t, int64(5), leaf.Value())
	assert.Equal(t, int64(5), leaf.Metric())
}

func TestComposite_Metric(t *testing.T) {
	root := buildSampleTree(t)
	assert.Equal(t, int64(10), root.Metric())
}

func TestComposite_MetricEmpty(t *testing.T) {
	empty := NewComposite("empty")
	assert.Equal(t, int64(0), empty.Metric())
}

func TestComposite_MetricCompositional(t *testing.T) {
	// Every subtree's metric must equal the sum of its direct children's
	// metrics, at all depths.
	root := NewComposite("root")
	mid := NewComposite("mid")
	deep := NewComposite("deep")
	require.NoError(t, deep.Attach(NewLeaf("x", 7)))
	require.NoError(t, deep.Attach(NewLeaf("y", 11)))
	require.NoError(t, mid.Attach(deep))
	require.NoError(t, mid.Attach(NewLeaf("z", 13)))
	require.NoError(t, root.Attach(mid))
	require.NoError(t, root.Attach(NewLeaf("w", 17)))

	assert.Equal(t, int64(18), deep.Metric())
	assert.Equal(t, deep.Metric()+13, mid.Metric())
	assert.Equal(t, mid.Metric()+17, root.Metric())
}

func TestComposite_MetricRecomputedAfterAttach(t *testing.T) {
	root := NewComposite("root")
	require.NoError(t, root.Attach(NewLeaf("a", 1)))
	assert.Equal(t, int64(1), root.Metric())

	require.NoError(t, root.Attach(NewLeaf("b", 2)))
	assert.Equal(t, int64(3), root.Metric())
}

func TestComposite_Attach(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		root := NewComposite("root")
		assert.ErrorIs(t, root.Attach(nil), ErrNilChild)
	})

	t.Run("empty name", func(t *testing.T) {
		root := NewComposite("root")
		assert.ErrorIs(t, root.Attach(NewLeaf("", 1)), ErrEmptyName)
	})

	t.Run("already owned", func(t *testing.T) {
		first := NewComposite("first")
		second := NewComposite("second")
		leaf := NewLeaf("shared", 1)
		require.NoError(t, first.Attach(leaf))

		assert.ErrorIs(t, second.Attach(leaf), ErrAlreadyOwned)
		assert.Equal(t, 1, first.Len())
		assert.Equal(t, 0, second.Len())
	})

	t.Run("self attach", func(t *testing.T) {
		root := NewComposite("root")
		assert.ErrorIs(t, root.Attach(root), ErrCycle)
	})

	t.Run("ancestor attach", func(t *testing.T) {
		// Attaching a tree that contains the receiver would make the
		// receiver its own descendant.
		outer := NewComposite("outer")
		inner := NewComposite("inner")
		require.NoError(t, outer.Attach(inner))

		assert.ErrorIs(t, inner.Attach(outer), ErrCycle)
		assert.Equal(t, 0, inner.Len())
	})

	t.Run("rejected child stays attachable", func(t *testing.T) {
		outer := NewComposite("outer")
		inner := NewComposite("inner")
		require.NoError(t, outer.Attach(inner))
		require.ErrorIs(t, inner.Attach(outer), ErrCycle)

		// The failed attach must not have claimed ownership of outer.
		grandparent := NewComposite("grandparent")
		require.NoError(t, grandparent.Attach(outer))
		assert.Equal(t, 1, grandparent.Len())
	})
}

func TestReads_Idempotent(t *testing.T) {
	root := buildSampleTree(t)

	first := root.Metric()
	second := root.Metric()
	assert.Equal(t, first, second)

	found1, err := root.Find(NameContains(""))
	require.NoError(t, err)
	found2, err := root.Find(NameContains(""))
	require.NoError(t, err)
	assert.Equal(t, found1, found2)
}
