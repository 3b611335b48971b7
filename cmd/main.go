// throwaway main for simple profiling:
//
//	go build -o gtrie-bench ./cmd
//	./gtrie-bench
package main

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/gaissmai/gtrie"
)

var (
	prng   = rand.New(rand.NewPCG(42, 42))
	trie   = new(gtrie.Trie)
	probes = []string{}
)

func main() {
	words := randomWords(100_000)

	for range 11 {
		probes = append(probes, words[prng.IntN(len(words))])
	}

	// concurrent bulk load, all writers on the one shared trie
	var wg sync.WaitGroup
	for w := range runtime.GOMAXPROCS(0) {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(words); i += runtime.GOMAXPROCS(0) {
				trie.Insert(words[i])
			}
		}(w)
	}
	wg.Wait()

	for i := range 100_000_000 {
		trie.Contains(probes[i%len(probes)])
	}
}

// randomWords returns n random lowercase words with heavily
// overlapping prefixes, zipfish word lengths.
func randomWords(n int) []string {
	words := make([]string, 0, n)
	buf := make([]byte, 0, 16)

	for range n {
		buf = buf[:0]
		for range 3 + prng.IntN(10) {
			buf = append(buf, byte('a'+prng.IntN(8)))
		}
		words = append(words, string(buf))
	}

	return words
}
