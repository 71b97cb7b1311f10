// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"strings"
	"testing"

	"github.com/gaissmai/wordtree/internal/golden"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 1_000
	}
	return 100_000
}

// buildTree adds all words with count 1.
func buildTree(t *testing.T, words ...string) *Tree {
	t.Helper()

	tree := New()
	for _, w := range words {
		if err := tree.AddString(w); err != nil {
			t.Fatalf("AddString(%q): %v", w, err)
		}
	}
	return tree
}

// buildGold counts all words in the golden reference.
func buildGold(words ...string) golden.Counter {
	gold := golden.Counter{}
	for _, w := range words {
		gold.Add(w)
	}
	return gold
}

// items returns the in-order items of the tree in golden form.
func items(tree *Tree) []golden.Item {
	var result []golden.Item
	for w, c := range tree.All() {
		result = append(result, golden.Item{Word: w, Count: c})
	}
	return result
}

// checkInvariants validates the structure of the tree:
//   - every key in the left subtree is less, in the right subtree greater
//   - parent links are consistent, the root has no parent
//   - all nodes are attached and owned by the tree
//   - size and total match the nodes
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()

	if tree.root == nil {
		if tree.size != 0 || tree.total != 0 {
			t.Fatalf("empty tree with size(%d), total(%d)", tree.size, tree.total)
		}
		return
	}

	if tree.root.parent != nil {
		t.Fatalf("root %q has parent %q", tree.root.key, tree.root.parent.key)
	}

	// explicit stack with key bounds, lo < key < hi
	type bounded struct {
		n      *Node
		lo, hi *string
	}

	size, total := 0, 0
	stack := []bounded{{n: tree.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := b.n

		size++
		total += n.count

		if !n.attached || n.tree != tree {
			t.Fatalf("node %q: attached(%v), owned(%v)", n.key, n.attached, n.tree == tree)
		}
		if b.lo != nil && strings.Compare(*b.lo, n.key) >= 0 {
			t.Fatalf("node %q not greater than lower bound %q", n.key, *b.lo)
		}
		if b.hi != nil && strings.Compare(n.key, *b.hi) >= 0 {
			t.Fatalf("node %q not less than upper bound %q", n.key, *b.hi)
		}

		if n.left != nil {
			if n.left.parent != n {
				t.Fatalf("left child %q of %q has wrong parent", n.left.key, n.key)
			}
			stack = append(stack, bounded{n: n.left, lo: b.lo, hi: &n.key})
		}
		if n.right != nil {
			if n.right.parent != n {
				t.Fatalf("right child %q of %q has wrong parent", n.right.key, n.key)
			}
			stack = append(stack, bounded{n: n.right, lo: &n.key, hi: b.hi})
		}
	}

	if size != tree.size {
		t.Fatalf("counted %d nodes, tree size is %d", size, tree.size)
	}
	if total != tree.total {
		t.Fatalf("counted total %d, tree total is %d", total, tree.total)
	}
}

// mustPanic fails if fn does not panic.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
