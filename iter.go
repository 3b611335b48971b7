// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import (
	"iter"

	"github.com/gaissmai/gtrie/internal/grapheme"
)

// All returns an iterator over all strings stored in the trie,
// in unspecified order. Shorthand for Entries("").
func (t *Trie) All() iter.Seq[string] {
	return t.Entries("")
}

// Entries returns an iterator over all stored strings that start with
// prefix, in unspecified order.
//
// The snapshot is taken when Entries is called: the root is loaded
// exactly once and the returned iterator walks that version of the
// trie, so an Insert completing after the call is invisible to the
// iteration even if it has not started or finished yet. Ranging the
// returned sequence again replays the same snapshot; for a fresh view
// call Entries again.
//
// The sequence is lazy and finite and may be consumed partially,
// break is cheap.
func (t *Trie) Entries(prefix string) iter.Seq[string] {
	n := t.loadRoot()

	// descend by the prefix clusters, a missing link means no match
	for g := range grapheme.All(prefix) {
		if n = n.lookupChild(g); n == nil {
			return func(yield func(string) bool) {}
		}
	}

	return func(yield func(string) bool) {
		n.allRec([]byte(prefix), yield)
	}
}
