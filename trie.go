// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import (
	"sync/atomic"

	"github.com/gaissmai/gtrie/internal/grapheme"
)

// Trie is a lock-free concurrent prefix tree for strings.
// The zero value is ready to use.
//
// A single Trie may be shared freely between goroutines; none of its
// methods require external synchronization. Readers are wait-free,
// writers are lock-free: an Insert may retry under contention but
// every failed attempt is caused by another writer's success, so the
// structure as a whole always makes progress.
//
// The shared mutable state is exactly two cells, the atomic root
// pointer and the atomic size counter. Everything reachable from a
// published root is immutable.
type Trie struct {
	root atomic.Pointer[node]
	size atomic.Int64
}

// loadRoot returns the current root, mapping the unset pointer of a
// zero-value Trie to the canonical empty node.
func (t *Trie) loadRoot() *node {
	if n := t.root.Load(); n != nil {
		return n
	}
	return emptyNode
}

// Insert adds s to the trie. Inserting the empty string is a no-op,
// as is inserting a string that is already present; repeated inserts
// of the same string never increase [Trie.Count] beyond the first
// successful one.
//
// Insert decomposes s into grapheme clusters once, then runs the
// read-copy-update loop: load the root, build a new version with
// copy-on-write path copying, publish it with a compare-and-swap.
// A failed swap means another writer got in between; the freshly
// built version is discarded and the loop retries against the new
// root. Detecting a duplicate exits the loop immediately, only a
// failed swap triggers a retry.
func (t *Trie) Insert(s string) {
	if s == "" {
		return
	}

	gs := grapheme.Split(s)

	for {
		old := t.root.Load()

		cur := old
		if cur == nil {
			cur = emptyNode
		}

		next, ok := cur.withInserted(gs)
		if !ok {
			// already present
			return
		}

		if t.root.CompareAndSwap(old, next) {
			// The increment is a second atomic step after
			// publication. A reader between the two steps sees
			// the new root but the old count; the counter is
			// advisory and monotone, it never overcounts.
			t.size.Add(1)
			return
		}
	}
}

// Contains reports whether s is stored in the trie.
//
// The root is loaded exactly once, fixing a snapshot for the whole
// call; Contains never blocks, never retries and performs no writes.
func (t *Trie) Contains(s string) bool {
	n := t.loadRoot()

	for g := range grapheme.All(s) {
		if n = n.lookupChild(g); n == nil {
			return false
		}
	}

	return n.isEntry
}

// Count returns the number of strings stored in the trie, an O(1)
// read of the atomic size counter.
//
// The counter trails a concurrent Insert by one narrow window, see
// [Trie.Insert]; it is exact whenever no Insert is in flight.
func (t *Trie) Count() int {
	return int(t.size.Load())
}

// IsEmpty reports whether the trie stores no strings,
// equivalent to Count() == 0.
func (t *Trie) IsEmpty() bool {
	return t.size.Load() == 0
}
