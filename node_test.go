package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeCloneIsDeepAndIndependent(t *testing.T) {
	tree := scenarioTree(t)
	clone := tree.root.clone()

	assert.Nil(t, clone.parent)
	assert.True(t, tree.root.equals(clone))

	// Mutating the clone must never affect the original.
	clone.isEnd = true
	assert.False(t, tree.root.equals(clone))
}

func TestNodeEqualsDetectsDifferences(t *testing.T) {
	a := New()
	a.Insert([]byte("cat"))
	a.Insert([]byte("car"))

	b := New()
	b.Insert([]byte("cat"))
	b.Insert([]byte("car"))
	assert.True(t, a.root.equals(b.root))

	c := New()
	c.Insert([]byte("cat"))
	c.Insert([]byte("cab"))
	assert.False(t, a.root.equals(c.root))
}

func TestNodeKeyCount(t *testing.T) {
	tree := scenarioTree(t)
	assert.Equal(t, len(scenarioWords), tree.root.keyCount())

	maNode, ok := tree.root.getChild('m')
	require.True(t, ok)
	assert.Equal(t, 7, maNode.keyCount())
}

func TestNodeUnderlyingString(t *testing.T) {
	tree := scenarioTree(t)
	v, ok := exactMatch(tree.root, []byte("maternal"))
	require.True(t, ok)
	assert.Equal(t, []byte("maternal"), v.underlyingString())
}

func TestNodeFirstAndLastKey(t *testing.T) {
	tree := scenarioTree(t)
	assert.Equal(t, []byte("compute"), tree.root.firstKey().underlyingString())
	assert.Equal(t, []byte("matrix"), tree.root.lastKey().underlyingString())
}

func TestNodeFindChildByte(t *testing.T) {
	tree := New()
	tree.Insert([]byte("cat"))
	child, ok := tree.root.getChild('c')
	require.True(t, ok)

	b, found := tree.root.findChildByte(child)
	assert.True(t, found)
	assert.Equal(t, byte('c'), b)

	_, found = tree.root.findChildByte(newNode([]byte("x"), true))
	assert.False(t, found)
}
