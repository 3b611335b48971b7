// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package grapheme decomposes strings into user-perceived characters
// (grapheme clusters, Unicode TR29), thin wrappers around
// [github.com/rivo/uniseg].
package grapheme

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of s in order. The clusters are
// substrings of s, no bytes are copied.
func Split(s string) []string {
	if s == "" {
		return nil
	}

	gs := make([]string, 0, len(s))

	state := -1
	for len(s) > 0 {
		var g string
		g, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		gs = append(gs, g)
	}

	return gs
}

// All returns an iterator over the grapheme clusters of s, without
// materializing a slice.
func All(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		for len(s) > 0 {
			var g string
			g, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			if !yield(g) {
				return
			}
		}
	}
}
