package radix

import (
	"encoding/json"
	"strings"
)

// ToJSON serializes the tree to a stable textual form: a recursive object
// keyed by edge label. Children maps preserve label order because they
// are built from sortedKeys rather than marshalled from a native Go map;
// encoding/json does not guarantee key order, so the object is assembled
// by hand instead of trusting map iteration.
//
// When includeEnds is false, an empty subtree serializes to "{}" and
// every other subtree to a plain label→subtree map. When true, every
// non-root object becomes {"end": <bool>, "children": <object>}.
func (t *Tree) ToJSON(includeEnds bool) string {
	return childrenJSON(t.root, includeEnds)
}

// ToJSON serializes the subtree rooted at the iterator's current vertex.
// An end-position (null-cursor) iterator serializes to "{}".
func (it *Iterator) ToJSON(includeEnds bool) string {
	if it.node == nil {
		return "{}"
	}
	return subtreeJSON(it.node, includeEnds)
}

func childrenJSON(n *node, includeEnds bool) string {
	keys := n.sortedKeys()
	if len(keys) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(keys))
	for _, b := range keys {
		c := n.children[b]
		parts = append(parts, jsonKey(c.label)+":"+subtreeJSON(c, includeEnds))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func subtreeJSON(n *node, includeEnds bool) string {
	kids := childrenJSON(n, includeEnds)
	if !includeEnds {
		return kids
	}
	end := "false"
	if n.isEnd {
		end = "true"
	}
	return `{"end":` + end + `,"children":` + kids + `}`
}

func jsonKey(label []byte) string {
	quoted, _ := json.Marshal(string(label))
	return string(quoted)
}
