// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gtrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the stored strings,
// just a wrapper for [Trie.Fprint]. If Fprint returns an error,
// String panics.
func (t *Trie) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored strings to
// w. If w is nil, Fprint panics.
//
// The order from top to bottom is ascending and the subtree structure
// is determined by the prefix relation between stored strings:
//
//	▼
//	├─ babybel
//	├─ brie
//	│  └─ brienne
//	└─ gorgonzola
//
// Nothing is written for an empty trie.
func (t *Trie) Fprint(w io.Writer) error {
	elements := t.DumpList()
	if len(elements) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "▼"); err != nil {
		return err
	}

	return fprintRec(w, elements, "")
}

// fprintRec, the recursive workhorse for Fprint.
func fprintRec(w io.Writer, elements []ListElement, pad string) error {
	// glyphs for tree nodes, the last item is drawn differently
	glyph := "├─ "
	space := "│  "

	for i, element := range elements {
		if i == len(elements)-1 {
			glyph = "└─ "
			space = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, glyph, element.Value); err != nil {
			return err
		}

		if err := fprintRec(w, element.Children, pad+space); err != nil {
			return err
		}
	}

	return nil
}
