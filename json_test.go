package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJSONEmpty(t *testing.T) {
	tree := New()
	assert.Equal(t, "{}", tree.ToJSON(false))
	assert.Equal(t, "{}", tree.ToJSON(true))
}

func TestToJSONWithEndMarkers(t *testing.T) {
	tree := New()
	tree.Insert([]byte("mat"))
	tree.Insert([]byte("math"))

	want := `{"mat":{"end":true,"children":{"h":{"end":true,"children":{}}}}}`
	assert.Equal(t, want, tree.ToJSON(true))
}

func TestIteratorToJSONEndPosition(t *testing.T) {
	tree := New()
	assert.Equal(t, "{}", tree.End().ToJSON(false))
	assert.Equal(t, "{}", tree.End().ToJSON(true))
}

func TestToJSONEscapesLabels(t *testing.T) {
	tree := New()
	tree.Insert([]byte("a\"b"))
	assert.Equal(t, `{"a\"b":{}}`, tree.ToJSON(false))
}
