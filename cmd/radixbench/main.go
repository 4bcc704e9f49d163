// Command radixbench times Insert, per-first-byte Size, FindPrefix,
// ErasePrefix, and full iteration on a Tree, then cross-checks the
// result against a reference sorted-slice string set built from the
// same word list.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	radix "github.com/andrewwang247/radix-tree"
	"github.com/andrewwang247/radix-tree/internal/wordlist"
	"github.com/samber/lo"
)

// sortedSet is the reference string set: a sorted []string searched by
// binary search, used to cross-check the Tree's behavior.
type sortedSet struct{ words []string }

func newSortedSet(words []string) *sortedSet {
	cp := append([]string(nil), words...)
	sort.Strings(cp)
	out := cp[:0]
	for i, w := range cp {
		if i == 0 || w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return &sortedSet{words: out}
}

func (s *sortedSet) contains(w string) bool {
	i := sort.SearchStrings(s.words, w)
	return i < len(s.words) && s.words[i] == w
}

func (s *sortedSet) sizePrefix(prefix string) int {
	lowIdx := sort.SearchStrings(s.words, prefix)
	upper, ok := prefixUpperBound(prefix)
	if !ok {
		return len(s.words) - lowIdx
	}
	highIdx := sort.Search(len(s.words), func(i int) bool { return s.words[i] >= upper })
	return highIdx - lowIdx
}

// prefixUpperBound returns the lexicographically smallest string that is
// strictly greater than every string with the given prefix, or false if no
// such string exists (the prefix is empty or made only of 0xff bytes).
func prefixUpperBound(prefix string) (string, bool) {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xff {
			b[i]++
			return string(b[:i+1]), true
		}
	}
	return "", false
}

func main() {
	path := flag.String("file", "", "newline-delimited word list to benchmark")
	flag.Parse()
	if *path == "" {
		fmt.Fprintln(os.Stderr, "radixbench: -file is required")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "radixbench:", err)
		os.Exit(1)
	}
	defer f.Close()

	wordsBytes, err := wordlist.Read(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "radixbench:", err)
		os.Exit(1)
	}

	words := make([]string, len(wordsBytes))
	for i, w := range wordsBytes {
		words[i] = string(w)
	}
	words = lo.Uniq(words)

	tree := radix.New()
	start := time.Now()
	for _, w := range words {
		tree.Insert([]byte(w))
	}
	insertDur := time.Since(start)

	start = time.Now()
	byFirstByte := make(map[byte]int, 256)
	for b := 0; b < 256; b++ {
		byFirstByte[byte(b)] = tree.SizePrefix([]byte{byte(b)})
	}
	sizeDur := time.Since(start)

	start = time.Now()
	for _, w := range words {
		tree.FindPrefix([]byte(w))
	}
	findPrefixDur := time.Since(start)

	toErase := words
	if len(toErase) > 100 {
		toErase = toErase[:100]
	}
	start = time.Now()
	for _, w := range toErase {
		tree.ErasePrefix([]byte(w))
	}
	erasePrefixDur := time.Since(start)

	start = time.Now()
	count := 0
	for it := tree.Begin(); it.Valid(); it.Next() {
		count++
	}
	iterDur := time.Since(start)

	fmt.Printf("words=%d insert=%s size256=%s findPrefix=%s erasePrefix(%d)=%s iterate(%d)=%s\n",
		len(words), insertDur, sizeDur, findPrefixDur, len(toErase), erasePrefixDur, count, iterDur)

	survivors := make([]string, 0, len(words))
	for _, w := range words {
		if tree.Contains([]byte(w)) {
			survivors = append(survivors, w)
		}
	}
	refSet := newSortedSet(survivors)
	if len(refSet.words) != tree.Size() {
		fmt.Fprintf(os.Stderr, "radixbench: mismatch, tree size=%d reference size=%d\n", tree.Size(), len(refSet.words))
		os.Exit(1)
	}
	// byFirstByte was measured before ErasePrefix, so compare it against
	// the reference set of the full word list.
	fullSet := newSortedSet(words)
	for b := 0; b < 256; b++ {
		want := fullSet.sizePrefix(string([]byte{byte(b)}))
		if got := byFirstByte[byte(b)]; got != want {
			fmt.Fprintf(os.Stderr, "radixbench: size mismatch for first byte %d: tree=%d reference=%d\n", b, got, want)
			os.Exit(1)
		}
	}
	for _, w := range refSet.words {
		if !refSet.contains(w) || !tree.Contains([]byte(w)) {
			fmt.Fprintf(os.Stderr, "radixbench: mismatch on %q\n", w)
			os.Exit(1)
		}
	}
	fmt.Println("equality check passed")
}
