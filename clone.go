// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

// Clone returns a copy of the Trie holding the current snapshot.
//
// Since published nodes are immutable, Clone is O(1): the clone shares
// the entire tree with the receiver by reference. Subsequent inserts
// into either Trie build their own paths and leave the other untouched.
//
// The size counter is read before the root, so under concurrent
// inserts the clone's count may trail its tree by the same advisory
// window as [Trie.Count], it never overcounts.
func (t *Trie) Clone() *Trie {
	if t == nil {
		return nil
	}

	c := new(Trie)
	c.size.Store(t.size.Load())
	c.root.Store(t.loadRoot())

	return c
}
