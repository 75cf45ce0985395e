package asciitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Copy(nil))
	})

	t.Run("deep and independent", func(t *testing.T) {
		original := branch("expr",
			leaf("val", "x"),
			branch("expr", leaf("val", "y")))

		c := Copy(original)
		require.True(t, Eq(original, c))

		c.Children[1].Children[0].Text = "changed"
		assert.Equal(t, "y", original.Children[1].Children[0].Text)
	})
}

func TestCopyNodes(t *testing.T) {
	original := []*Node{leaf("val", "x"), nil, leaf("val", "y")}
	c := CopyNodes(original)
	require.Len(t, c, 3)
	assert.Nil(t, c[1])
	assert.True(t, EqLists(original, c))
}

func TestPrune(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Prune(nil))
		assert.Nil(t, Prune([]*Node{{Rule: EndOfInput}}))
	})

	t.Run("removes end of input at every depth", func(t *testing.T) {
		forest := []*Node{
			branch("expr",
				leaf("val", "x"),
				&Node{Rule: EndOfInput},
				branch("expr",
					leaf("val", "y"),
					&Node{Rule: EndOfInput})),
			&Node{Rule: EndOfInput},
		}

		pruned := Prune(forest)
		require.Len(t, pruned, 1)
		require.Len(t, pruned[0].Children, 2)
		assert.Equal(t, "val", pruned[0].Children[0].Rule)
		require.Len(t, pruned[0].Children[1].Children, 1)
		assert.Equal(t, "y", pruned[0].Children[1].Children[0].Text)
	})

	t.Run("subtrees are not promoted", func(t *testing.T) {
		forest := []*Node{branch("expr",
			branch(EndOfInput, leaf("val", "hidden")))}

		pruned := Prune(forest)
		require.Len(t, pruned, 1)
		assert.Empty(t, pruned[0].Children)
	})

	t.Run("input not modified", func(t *testing.T) {
		forest := []*Node{branch("expr",
			leaf("val", "x"),
			&Node{Rule: EndOfInput})}

		Prune(forest)
		require.Len(t, forest[0].Children, 2)
		assert.Equal(t, EndOfInput, forest[0].Children[1].Rule)
	})
}
