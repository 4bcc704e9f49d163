package radix

import "bytes"

// Iterator is a constant, bidirectional cursor over a Tree's keys in
// lexicographic order. The zero value is not useful; obtain one from
// Tree's Find/FindPrefix/Begin/End family. Mutating the tree invalidates
// any outstanding iterator.
type Iterator struct {
	tree *Tree
	node *node
}

// Valid reports whether the iterator references a key (is not the end
// position).
func (it *Iterator) Valid() bool { return it.node != nil }

// Key returns the byte-string key the iterator currently references, or
// nil at the end position.
func (it *Iterator) Key() []byte {
	if it.node == nil {
		return nil
	}
	return it.node.underlyingString()
}

// Equal reports whether it and other reference the same vertex.
func (it *Iterator) Equal(other *Iterator) bool {
	if other == nil {
		return it.node == nil
	}
	return it.node == other.node
}

// Next advances the iterator to the lexicographically next key, or to the
// end position if none remains. Advancing past the end is a no-op.
func (it *Iterator) Next() {
	if it.node == nil {
		return
	}
	n := it.node
	if n.childCount() > 0 {
		keys := n.sortedKeys()
		it.node = n.children[keys[0]].firstKey()
		return
	}
	it.node = n.nextNode()
}

// Prev retreats the iterator to the lexicographically previous key.
// Retreating from the end position yields the last key of the whole tree.
func (it *Iterator) Prev() {
	if it.node == nil {
		last := it.tree.root.lastKey()
		if last != nil && last.isEnd {
			it.node = last
		}
		return
	}
	if it.node.parent == nil {
		it.node = nil // root has no predecessor
		return
	}
	it.node = it.node.prevNode()
}

func iterFromNode(t *Tree, n *node) *Iterator {
	return &Iterator{tree: t, node: n}
}

// Begin returns an iterator to the lexicographically smallest key, or the
// end iterator if the tree is empty.
func (t *Tree) Begin() *Iterator { return iterFromNode(t, t.root.firstKey()) }

// End returns the end iterator (one past the last key).
func (t *Tree) End() *Iterator { return t.endIterator() }

// BeginPrefix is an alias of FindPrefix: the start of the prefix-scoped
// range.
func (t *Tree) BeginPrefix(prefix []byte) *Iterator { return t.FindPrefix(prefix) }

// EndPrefix returns an iterator one past the last key having prefix as a
// prefix, suitable as the exclusive bound of a BeginPrefix(prefix)..
// EndPrefix(prefix) range.
func (t *Tree) EndPrefix(prefix []byte) *Iterator {
	if len(prefix) == 0 {
		return t.endIterator()
	}
	a, r := approximateMatch(t.root, prefix)
	if len(r) == 0 {
		return iterFromNode(t, a.nextNode())
	}
	// The one child whose label starts with the residual roots exactly the
	// keys having prefix; the bound is the first key after its subtree.
	if child, ok := a.getChild(r[0]); ok && bytes.HasPrefix(child.label, r) {
		return iterFromNode(t, child.nextNode())
	}
	// No stored key has this prefix: the range is empty, matching
	// BeginPrefix, which returns the end iterator.
	return t.endIterator()
}

// Keys collects every key having prefix as a prefix into a slice, in
// lexicographic order. A convenience snapshot, not part of the core
// iteration contract, useful for tests and CLI output.
func (t *Tree) Keys(prefix []byte) [][]byte {
	var out [][]byte
	for it := t.BeginPrefix(prefix); !it.Equal(t.EndPrefix(prefix)); it.Next() {
		out = append(out, it.Key())
	}
	return out
}
