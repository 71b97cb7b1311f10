// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import "strconv"

// Node is a single word with its count.
//
// A node is created detached by [Tree.NewNode] and either attached
// to the tree or released by [Tree.InsertOrIncrement].
type Node struct {
	key   string
	count int

	// owned children
	left  *Node
	right *Node

	// non-owning back reference, nil for the root
	parent *Node

	// the tree whose pool allocated this node
	tree     *Tree
	attached bool
}

// Key returns the word.
func (n *Node) Key() string {
	return n.key
}

// Count returns the number of occurrences of the word.
func (n *Node) Count() int {
	return n.count
}

// String returns the node as "key: count".
func (n *Node) String() string {
	return n.key + ": " + strconv.Itoa(n.count)
}

// isDetached, no links in either direction.
func (n *Node) isDetached() bool {
	return !n.attached && n.parent == nil && n.left == nil && n.right == nil
}

// reset the node to its zero value, ready for reuse.
func (n *Node) reset() {
	*n = Node{}
}
