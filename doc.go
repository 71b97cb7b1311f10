// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package wordtree counts words in an unbalanced binary search tree.
//
// Every distinct word is a [Node] in a [Tree], ordered byte-wise by its
// text. Inserting a word that is already present increments the
// existing node's count instead of adding a new node. The tree is
// reported in ascending key order and torn down as a whole in
// post-order, children before their parent.
//
// The tree is not rebalanced, a sorted input degenerates it to a list.
// All traversals use an explicit stack, the depth of the tree is
// therefore not limited by the goroutine stack.
//
// There is no lookup and no deletion of single keys, and a Tree is
// not safe for concurrent mutation.
//
//	t := wordtree.New()
//	if _, err := t.ReadFrom(os.Stdin); err != nil {
//		...
//	}
//	t.Fprint(os.Stdout)
//	t.Destroy()
package wordtree
