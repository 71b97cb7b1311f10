// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import "iter"

// InOrder returns an iterator over all nodes in ascending key order:
// left subtree, node, right subtree.
//
// The nodes are read-only for the caller. Inserting into the tree
// during the iteration is undefined.
func (t *Tree) InOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		t.mustUsable()
		t.inOrder(yield)
	}
}

// PostOrder returns an iterator over all nodes in post-order:
// left subtree, right subtree, node. Every node is yielded strictly
// after both of its children.
func (t *Tree) PostOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		t.mustUsable()
		t.postOrder(yield)
	}
}

// All returns an iterator over all (word, count) pairs
// in ascending order of the words.
func (t *Tree) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		t.mustUsable()
		t.inOrder(func(n *Node) bool {
			return yield(n.key, n.count)
		})
	}
}

// inOrder, iterative with an explicit stack of the left spine,
// a degenerated tree must not exhaust the goroutine stack.
//
// Returns false if yield stopped the walk.
func (t *Tree) inOrder(yield func(*Node) bool) bool {
	var stack []*Node

	n := t.root
	for n != nil || len(stack) > 0 {
		// descend the left spine
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}

		// pop
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(n) {
			return false
		}

		n = n.right
	}

	return true
}

// frame for the post-order walk, expanded means the children
// are already pushed on the stack above this frame.
type frame struct {
	n        *Node
	expanded bool
}

// postOrder, iterative with an explicit stack.
//
// A node is popped from the stack before it is yielded, and its
// children are already done, yield may release the node.
//
// Returns false if yield stopped the walk.
func (t *Tree) postOrder(yield func(*Node) bool) bool {
	if t.root == nil {
		return true
	}

	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			if !yield(f.n) {
				return false
			}
			continue
		}

		// revisit after the children, left is on top
		stack = append(stack, frame{n: f.n, expanded: true})
		if f.n.right != nil {
			stack = append(stack, frame{n: f.n.right})
		}
		if f.n.left != nil {
			stack = append(stack, frame{n: f.n.left})
		}
	}

	return true
}
