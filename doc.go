// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package gtrie provides a lock-free concurrent prefix tree (trie)
// for Unicode strings, keyed by grapheme cluster.
//
// The trie supports insertion, membership tests, snapshot-consistent
// prefix enumeration and an O(1) size, all safe for use by any number
// of concurrent readers and writers without external locking.
//
// Internally the trie is a persistent data structure: nodes are
// immutable once published and updates build a new path from the root
// to the point of modification, sharing all untouched subtrees by
// reference. The current version is published through a single atomic
// root pointer. Writers race on that pointer with a read-copy-update
// loop, compare-and-swap on publication and retry on interference;
// readers load the pointer once and traverse an immutable snapshot,
// unaffected by concurrent writers.
//
// Keys are decomposed into user-perceived characters (grapheme
// clusters, Unicode TR29) rather than bytes or runes, so multi-part
// characters such as combined emoji or combining marks match as
// single units.
//
// The zero value is ready to use.
package gtrie
