// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for Dump.
func (t *Tree) dumpString() string {
	w := new(strings.Builder)
	if err := t.Dump(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Dump writes the shape of the tree and some statistics to w.
// Every node is shown with its side below the parent, L or R,
// the children are indented below the node:
//
//	### size(3), total(4), height(2), live(3), allocated(4)
//	▼
//	└─ dog (1)
//	   ├─ L cat (2)
//	   └─ R fox (1)
func (t *Tree) Dump(w io.Writer) error {
	t.mustUsable()

	live, allocated := t.Stats()
	if _, err := fmt.Fprintf(w, "### size(%d), total(%d), height(%d), live(%d), allocated(%d)\n",
		t.size, t.total, t.Height(), live, allocated); err != nil {
		return err
	}

	if t.root == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	// pre-order with an explicit stack, like the traversals
	type item struct {
		n    *Node
		pad  string
		side string
		last bool
	}

	stack := []item{{n: t.root, last: true}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// symbols used in tree
		glyphe := "├─ "
		spacer := "│  "
		if it.last {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s%s (%d)\n", it.pad, glyphe, it.side, it.n.key, it.n.count); err != nil {
			return err
		}

		// push right before left, the left kid is printed first
		pad := it.pad + spacer
		switch l, r := it.n.left, it.n.right; {
		case l != nil && r != nil:
			stack = append(stack, item{n: r, pad: pad, side: "R ", last: true})
			stack = append(stack, item{n: l, pad: pad, side: "L ", last: false})
		case l != nil:
			stack = append(stack, item{n: l, pad: pad, side: "L ", last: true})
		case r != nil:
			stack = append(stack, item{n: r, pad: pad, side: "R ", last: true})
		}
	}

	return nil
}
