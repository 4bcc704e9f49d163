package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSkipsBlankLines(t *testing.T) {
	input := "alpha\n\nbeta\ngamma\n"
	words, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	got := make([]string, len(words))
	for i, w := range words {
		got[i] = string(w)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

func TestReadEmptyInput(t *testing.T) {
	words, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}
