// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// alphabet skewed towards collisions, plus some multi-byte clusters
var fuzzAlphabet = []string{"a", "b", "c", "ä", "ß", "🇩🇪", "x"}

func randomWord(prng *rand.Rand) string {
	var sb strings.Builder
	for range 1 + prng.IntN(8) {
		sb.WriteString(fuzzAlphabet[prng.IntN(len(fuzzAlphabet))])
	}
	return sb.String()
}

func FuzzTrieVersusMap(f *testing.F) {
	// seed corpus
	f.Add(uint64(12345), 150)
	f.Add(uint64(67890), 400)
	// edge-case leaning seeds
	f.Add(uint64(0), 1)
	f.Add(^uint64(0), 1000)

	f.Fuzz(func(t *testing.T, seed uint64, n int) {
		if n < 1 || n > 5000 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewPCG(seed, 13))

		trie := new(Trie)
		golden := map[string]bool{}

		for range n {
			s := randomWord(prng)
			trie.Insert(s)
			golden[s] = true
		}

		if trie.Count() != len(golden) {
			t.Fatalf("count: got %d, want %d", trie.Count(), len(golden))
		}

		for s := range golden {
			if !trie.Contains(s) {
				t.Fatalf("contains(%q): got false, want true", s)
			}
		}

		// negative probes
		for range n {
			s := randomWord(prng)
			if trie.Contains(s) != golden[s] {
				t.Fatalf("contains(%q): got %v, want %v", s, !golden[s], golden[s])
			}
		}

		// full enumeration must be exactly the golden set
		got := slices.Sorted(trie.All())
		want := make([]string, 0, len(golden))
		for s := range golden {
			want = append(want, s)
		}
		slices.Sort(want)

		if !slices.Equal(got, want) {
			t.Fatalf("entries: got %v, want %v", got, want)
		}

		// prefix enumeration against a linear scan
		prefix := randomWord(prng)
		got = slices.Sorted(trie.Entries(prefix))
		want = want[:0]
		for s := range golden {
			if strings.HasPrefix(s, prefix) {
				want = append(want, s)
			}
		}
		slices.Sort(want)

		if !slices.Equal(got, want) {
			t.Fatalf("entries(%q): got %v, want %v", prefix, got, want)
		}
	})
}
