// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import "maps"

// node is an immutable trie node. The children map is keyed by a
// single grapheme cluster and isEntry marks that the path from the
// root to this node spells a stored string.
//
// A node must never be mutated after it has been linked into a tree
// that was published via the root pointer; all updates go through
// withInserted, which builds new nodes along the touched path and
// shares every untouched subtree by reference.
type node struct {
	children map[string]*node
	isEntry  bool
}

// emptyNode is the canonical shared empty node. It stands in for any
// subtree that does not exist yet and is referenced, never copied.
var emptyNode = &node{}

// lookupChild returns the child for grapheme cluster g, or nil.
func (n *node) lookupChild(g string) *node {
	return n.children[g]
}

// withInserted returns a copy of the subtree rooted at n with the
// string spelled by gs inserted, together with true. If the string is
// already present no node is built and withInserted returns nil and
// false.
//
// Only the nodes along the insertion path are rebuilt. Their children
// maps are cloned flat, so all siblings of the path are shared with
// the receiver by reference, copy-on-write style.
func (n *node) withInserted(gs []string) (*node, bool) {
	if len(gs) == 0 {
		if n.isEntry {
			return nil, false
		}
		return &node{children: n.children, isEntry: true}, true
	}

	g, rest := gs[0], gs[1:]

	child := n.children[g]
	if child == nil {
		child = emptyNode
	}

	newChild, ok := child.withInserted(rest)
	if !ok {
		return nil, false
	}

	children := maps.Clone(n.children)
	if children == nil {
		children = make(map[string]*node, 1)
	}
	children[g] = newChild

	return &node{children: children, isEntry: n.isEntry}, true
}

// allRec yields the stored string for every entry node in the subtree,
// in depth-first but otherwise unspecified order. The path bytes are
// copied on yield, callers may retain the yielded strings.
//
// Returns false if the yield function told us to stop.
func (n *node) allRec(path []byte, yield func(string) bool) bool {
	if n.isEntry && !yield(string(path)) {
		// early exit
		return false
	}

	for g, child := range n.children {
		if !child.allRec(append(path, g...), yield) {
			return false
		}
	}

	return true
}

// equalRec compares two subtrees for set equality.
//
// The trie has no delete operation, so the node structure is canonical
// for the stored set: two subtrees spell the same set of suffixes iff
// they are structurally equal. Shared subtrees compare by pointer.
func (n *node) equalRec(o *node) bool {
	if n == o {
		return true
	}

	if n.isEntry != o.isEntry || len(n.children) != len(o.children) {
		return false
	}

	for g, nKid := range n.children {
		oKid := o.children[g]
		if oKid == nil || !nKid.equalRec(oKid) {
			return false
		}
	}

	return true
}
