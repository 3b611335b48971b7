// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

// Equal reports whether t and o store the same set of strings.
//
// Both tries are compared as snapshots, each root is loaded once.
// Subtrees shared between the two, for example after [Trie.Clone],
// compare by pointer and are not descended into.
func (t *Trie) Equal(o *Trie) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}

	return t.loadRoot().equalRec(o.loadRoot())
}
