// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie_test

import (
	"fmt"
	"slices"

	"github.com/gaissmai/gtrie"
)

func ExampleTrie() {
	trie := new(gtrie.Trie)

	trie.Insert("brie")
	trie.Insert("babybel")
	trie.Insert("gorgonzola")

	fmt.Println(trie.Count(), trie.Contains("brie"), trie.Contains("cheddar"))

	// enumeration order is unspecified, sort for stable output
	fmt.Println(slices.Sorted(trie.All()))
	fmt.Println(slices.Sorted(trie.Entries("b")))

	// Output:
	// 3 true false
	// [babybel brie gorgonzola]
	// [babybel brie]
}

func ExampleTrie_Entries() {
	trie := new(gtrie.Trie)

	for _, s := range []string{"go", "gopher", "golang", "rust"} {
		trie.Insert(s)
	}

	for _, s := range slices.Sorted(trie.Entries("go")) {
		fmt.Println(s)
	}

	// Output:
	// go
	// golang
	// gopher
}

func ExampleTrie_String() {
	trie := new(gtrie.Trie)

	for _, s := range []string{"brie", "brienne", "babybel", "gorgonzola"} {
		trie.Insert(s)
	}

	fmt.Println(trie.String())

	// Output:
	// ▼
	// ├─ babybel
	// ├─ brie
	// │  └─ brienne
	// └─ gorgonzola
}
