package radix

import (
	"log/slog"
)

// Tree is an ordered set of byte-string keys backed by a radix tree. The
// zero value is not usable; construct with New or NewFromKeys. A Tree must
// be used from a single goroutine at a time; see Concurrent for a
// mutex-guarded wrapper.
type Tree struct {
	root            *node
	checkInvariants bool
	logger          *slog.Logger
}

// New returns an empty Tree, root only, configured by opts.
func New(opts ...Option) *Tree {
	t := &Tree{root: newNode(nil, false), logger: slog.Default()}
	for _, o := range opts {
		o.apply(t)
	}
	return t
}

// NewFromKeys builds a Tree from an iterable of byte-string keys,
// inserting each in turn and silently ignoring duplicates.
func NewFromKeys(keys [][]byte, opts ...Option) *Tree {
	t := New(opts...)
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Clone returns a deep copy of t; mutating the copy never affects t.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.clone(), checkInvariants: t.checkInvariants, logger: t.logger}
}

// Equals reports whether t and other contain exactly the same set of keys,
// via structural equality of their trees.
func (t *Tree) Equals(other *Tree) bool {
	if other == nil {
		return false
	}
	return t.root.equals(other.root)
}

// Empty reports whether the tree has no keys at all.
func (t *Tree) Empty() bool { return t.EmptyPrefix(nil) }

// EmptyPrefix reports whether no stored key has prefix as a prefix.
func (t *Tree) EmptyPrefix(prefix []byte) bool {
	p := prefixMatch(t.root, prefix)
	return p == nil || (!p.isEnd && p.childCount() == 0)
}

// Size returns the total number of stored keys.
func (t *Tree) Size() int { return t.SizePrefix(nil) }

// SizePrefix returns the number of stored keys having prefix as a prefix.
func (t *Tree) SizePrefix(prefix []byte) int {
	p := prefixMatch(t.root, prefix)
	if p == nil {
		return 0
	}
	return p.keyCount()
}

// Find returns an iterator positioned at key if present, else the end
// iterator.
func (t *Tree) Find(key []byte) *Iterator {
	v, ok := exactMatch(t.root, key)
	if !ok {
		return t.endIterator()
	}
	return &Iterator{tree: t, node: v}
}

// Contains reports whether key is a member of the set.
func (t *Tree) Contains(key []byte) bool {
	_, ok := exactMatch(t.root, key)
	return ok
}

// FindPrefix returns an iterator positioned at the lexicographically
// smallest stored key having prefix as a prefix, else the end iterator.
func (t *Tree) FindPrefix(prefix []byte) *Iterator {
	p := prefixMatch(t.root, prefix)
	if p == nil {
		return t.endIterator()
	}
	fk := p.firstKey()
	if fk == nil {
		return t.endIterator()
	}
	return &Iterator{tree: t, node: fk}
}

// Insert adds key to the set, returning an iterator to the vertex now
// representing it. Idempotent: re-inserting an existing key is a no-op
// that still returns a valid iterator.
func (t *Tree) Insert(key []byte) *Iterator {
	v, residual := approximateMatch(t.root, key)

	var result *node
	switch {
	case len(residual) == 0:
		// Case A: key already representable at v.
		v.isEnd = true
		result = v

	case v.childCount() == 0:
		// Case B: v is a leaf, attach key's suffix directly.
		result = newNode(append([]byte(nil), residual...), true)
		v.addChild(result)

	default:
		child, ok := v.getChild(residual[0])
		if !ok {
			// No sibling shares the first byte: same shape as Case B.
			result = newNode(append([]byte(nil), residual...), true)
			v.addChild(result)
			break
		}
		// Case C: split the existing edge at the common prefix.
		common := commonPrefixLen(child.label, residual)
		postKey := residual[common:]
		postChild := append([]byte(nil), child.label[common:]...)

		junction := newNode(append([]byte(nil), residual[:common]...), len(postKey) == 0)
		v.removeChild(residual[0])
		child.label = postChild
		v.addChild(junction)
		junction.addChild(child)

		if len(postKey) > 0 {
			result = newNode(append([]byte(nil), postKey...), true)
			junction.addChild(result)
		} else {
			result = junction
		}
	}

	t.afterMutation()
	return &Iterator{tree: t, node: result}
}

// Erase removes key from the set if present. Idempotent: erasing an
// absent key is a no-op.
func (t *Tree) Erase(key []byte) {
	m, ok := exactMatch(t.root, key)
	if !ok {
		return
	}
	m.isEnd = false
	if m == t.root {
		return
	}

	switch m.childCount() {
	case 0:
		p := m.parent
		p.removeChild(m.label[0])
		t.mergeIfDegenerate(p)
	case 1:
		t.mergeSingleChild(m)
	default:
		// m still branches; leave it as a junction.
	}
	t.afterMutation()
}

// ErasePrefix removes every key having prefix as a prefix. Idempotent: a
// prefix with no matching keys is a no-op.
func (t *Tree) ErasePrefix(prefix []byte) {
	v := prefixMatch(t.root, prefix)
	if v == nil {
		return
	}
	if v == t.root {
		t.Clear()
		return
	}
	p := v.parent
	p.removeChild(v.label[0])
	// As in Erase, detaching a subtree can leave its former parent
	// degenerate, so the same merge runs here too.
	t.mergeIfDegenerate(p)
	t.afterMutation()
}

// Clear removes every key, resetting the tree to its initial empty state.
func (t *Tree) Clear() {
	t.root.children = nil
	t.root.isEnd = false
}

// mergeIfDegenerate merges p into its parent when p has become a
// non-root, non-end vertex with exactly one remaining child.
func (t *Tree) mergeIfDegenerate(p *node) {
	if p == t.root || p.isEnd || p.childCount() != 1 {
		return
	}
	t.mergeSingleChild(p)
}

// mergeSingleChild concatenates m's single remaining child's label onto
// m's own label and re-parents the child in m's place, collapsing m out
// of the tree.
func (t *Tree) mergeSingleChild(m *node) {
	var only *node
	for _, c := range m.children {
		only = c
	}
	merged := append(append([]byte(nil), m.label...), only.label...)
	only.label = merged
	parent := m.parent
	parent.removeChild(m.label[0])
	parent.addChild(only)
}

func (t *Tree) afterMutation() {
	if !t.checkInvariants {
		return
	}
	if err := t.CheckInvariants(); err != nil {
		t.logger.Error("radix: invariant check failed", "error", err)
		panic(err)
	}
}

func (t *Tree) endIterator() *Iterator { return &Iterator{tree: t, node: nil} }
