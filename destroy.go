// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import "github.com/golang/glog"

// Destroy releases all nodes of the tree in post-order, children
// before their parent, and returns the number of released nodes.
//
// The tree must not be used afterwards, any further method call
// that touches the nodes panics.
func (t *Tree) Destroy() (released int) {
	t.init()
	t.mustUsable()

	if glog.V(2) {
		glog.Infof("destroy tree, size(%d), total(%d)", t.size, t.total)
	}

	t.postOrder(func(n *Node) bool {
		t.release(n)
		released++
		return true
	})

	t.root = nil
	t.size = 0
	t.total = 0
	t.destroyed = true

	if glog.V(2) {
		live, allocated := t.pool.Stats()
		glog.Infof("tree destroyed, released(%d), live(%d), allocated(%d)", released, live, allocated)
	}

	return released
}
