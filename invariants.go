package radix

// CheckInvariants walks the tree verifying its eight structural invariants,
// returning the first violation found as an *InvariantError, or nil if the
// tree is well-formed. Exported so tests and fuzz properties can call it
// directly, in addition to the internal check run after every mutation
// when WithInvariantChecks(true) is set.
func (t *Tree) CheckInvariants() error {
	if t.root.parent != nil {
		return &InvariantError{Rule: "root must have no parent"}
	}
	return checkSubtree(t.root, true)
}

func checkSubtree(n *node, isRoot bool) error {
	if !isRoot && len(n.label) == 0 {
		return &InvariantError{Rule: "edge label must not be empty"}
	}
	if !isRoot && !n.isEnd && n.childCount() < 2 {
		return &InvariantError{Rule: "non-root, non-end vertex must have at least two children", Key: n.underlyingString()}
	}
	if !isRoot && n.childCount() == 0 && !n.isEnd {
		return &InvariantError{Rule: "leaf must be end-marked", Key: n.underlyingString()}
	}

	seen := make(map[byte]bool, n.childCount())
	var firstBytes []byte
	for b, c := range n.children {
		if c.parent != n {
			return &InvariantError{Rule: "parent link inconsistent", Key: c.underlyingString()}
		}
		if len(c.label) == 0 || c.label[0] != b {
			return &InvariantError{Rule: "child keyed by wrong first byte", Key: c.underlyingString()}
		}
		if seen[b] {
			return &InvariantError{Rule: "duplicate child key", Key: c.underlyingString()}
		}
		seen[b] = true
		firstBytes = append(firstBytes, b)
	}

	// No two children may share a non-empty common prefix. Since
	// children are keyed by first byte and that key equals label[0], this
	// reduces to the first-byte-uniqueness check above plus recursion.
	for _, c := range n.children {
		if err := checkSubtree(c, false); err != nil {
			return err
		}
	}
	return nil
}
