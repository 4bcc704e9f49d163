// Command radixload feeds a Tree from a file and prints either JSON or
// summary stats. The CLI surface is plumbing around the core container,
// not part of it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	radix "github.com/andrewwang247/radix-tree"
	"github.com/andrewwang247/radix-tree/internal/wordlist"
)

func main() {
	var (
		path        = flag.String("file", "", "newline-delimited word list to load")
		prefix      = flag.String("prefix", "", "report size and emptiness for this prefix (ignored with -json)")
		includeEnds = flag.Bool("ends", false, "include end markers in JSON output")
		jsonOut     = flag.Bool("json", false, "print the tree as JSON instead of stats")
		checkInv    = flag.Bool("check", false, "enable invariant checking while loading")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "radixload: -file is required")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		slog.Error("radixload: open failed", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	words, err := wordlist.Read(f)
	if err != nil {
		slog.Error("radixload: read failed", "error", err)
		os.Exit(1)
	}

	t := radix.NewFromKeys(words, radix.WithInvariantChecks(*checkInv))

	if *jsonOut {
		fmt.Println(t.ToJSON(*includeEnds))
		return
	}

	fmt.Printf("loaded %d words, size(%q)=%d, empty(%q)=%v\n",
		len(words), *prefix, t.SizePrefix([]byte(*prefix)), *prefix, t.EmptyPrefix([]byte(*prefix)))
}
