// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import (
	"encoding/json"
	"maps"
	"slices"
)

// ListElement is one stored string together with the stored strings it
// is a prefix of, nested. It is the building block for [Trie.DumpList]
// and the JSON representation.
type ListElement struct {
	Value    string        `json:"value"`
	Children []ListElement `json:"children,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface. The trie is
// dumped as a list of trees: every stored string nests under its
// longest stored proper prefix, values in ascending order.
func (t *Trie) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList dumps the current snapshot into a list of entry trees,
// see [ListElement]. An empty trie dumps as nil.
func (t *Trie) DumpList() []ListElement {
	return t.loadRoot().directEntries(nil)
}

// directEntries collects the first entry nodes at or below every child
// of n, with their own nested entries as children. Levels are walked
// in sorted grapheme order, so values come out in ascending order.
func (n *node) directEntries(path []byte) []ListElement {
	var elements []ListElement

	for _, g := range slices.Sorted(maps.Keys(n.children)) {
		child := n.children[g]
		childPath := append(path, g...)

		if child.isEntry {
			elements = append(elements, ListElement{
				Value:    string(childPath),
				Children: child.directEntries(childPath),
			})
			continue
		}

		elements = append(elements, child.directEntries(childPath)...)
	}

	return elements
}
