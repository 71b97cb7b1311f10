// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
)

// ErrExhausted is returned by the node constructors when the node
// limit of the tree is reached, see [Tree.WithNodeLimit].
var ErrExhausted = errors.New("node limit exhausted")

// Tree is an unbalanced binary search tree of word counts.
// The zero value is an empty tree, ready to use.
//
// A Tree must not be copied after first use.
type Tree struct {
	root *Node

	size  int // number of nodes, distinct keys
	total int // sum of all counts

	pool     *pool
	maxNodes int

	destroyed bool

	// simple API, no constructor needed
	initOnce sync.Once
}

// New returns an empty tree.
func New() *Tree {
	return new(Tree)
}

// init once, so no constructor is needed.
func (t *Tree) init() {
	t.initOnce.Do(func() {
		t.pool = newPool()
	})
}

// mustUsable panics after Destroy.
func (t *Tree) mustUsable() {
	if t.destroyed {
		panic(errors.AssertionFailedf("use of destroyed tree"))
	}
}

// WithNodeLimit limits the number of live nodes of the tree to n,
// counting attached nodes and not yet inserted nodes alike.
// Node creation beyond the limit fails with [ErrExhausted].
// A limit <= 0 means no limit.
func (t *Tree) WithNodeLimit(n int) *Tree {
	t.mustUsable()
	t.maxNodes = max(n, 0)
	return t
}

// NewNode returns a detached node with a copy of key and the
// given count. The caller's buffer is not retained.
//
// The node must be handed over to [Tree.InsertOrIncrement] of the
// same tree, or returned with [Tree.ReleaseNode].
func (t *Tree) NewNode(key []byte, count int) (*Node, error) {
	return t.newNode(string(key), count)
}

// NewNodeString is like [Tree.NewNode] with a string key.
func (t *Tree) NewNodeString(key string, count int) (*Node, error) {
	return t.newNode(strings.Clone(key), count)
}

// newNode, key is already a private copy.
func (t *Tree) newNode(key string, count int) (*Node, error) {
	t.init()
	t.mustUsable()

	if t.maxNodes > 0 {
		if live, _ := t.pool.Stats(); live >= int64(t.maxNodes) {
			return nil, errors.Wrapf(ErrExhausted, "creating node %q, limit %d", key, t.maxNodes)
		}
	}

	n := t.pool.Get()
	n.key = key
	n.count = count
	n.tree = t

	return n, nil
}

// ReleaseNode returns a detached node to the tree's pool.
// The node must not be used afterwards.
//
// It panics if n is still attached to the tree.
func (t *Tree) ReleaseNode(n *Node) {
	t.init()
	t.mustNotNil(n)
	t.mustOwn(n)

	if !n.isDetached() {
		panic(errors.AssertionFailedf("release of attached node %q", n.key))
	}

	t.release(n)
}

// release, no checks, the caller guarantees that no
// reachable link points to n any longer.
func (t *Tree) release(n *Node) {
	if glog.V(3) {
		glog.Infof("release node %q", n.key)
	}
	t.pool.Put(n)
}

// InsertOrIncrement adds the detached node n to the tree.
//
// If the tree has no node with n's key, n is attached as a new leaf
// and InsertOrIncrement returns true. Otherwise the count of the
// existing node is incremented by exactly one, regardless of n's own
// count, n is released and InsertOrIncrement returns false.
// In the latter case n must not be used afterwards.
//
// It panics if n is nil, not detached or created by another tree.
func (t *Tree) InsertOrIncrement(n *Node) (inserted bool) {
	t.init()
	t.mustUsable()
	t.mustNotNil(n)
	t.mustOwn(n)

	if !n.isDetached() {
		panic(errors.AssertionFailedf("insert of attached node %q", n.key))
	}

	// empty tree, easy peasy
	if t.root == nil {
		t.attach(n, nil, &t.root)
		return true
	}

	cur := t.root
	for {
		switch c := strings.Compare(n.key, cur.key); {
		case c < 0:
			if cur.left == nil {
				t.attach(n, cur, &cur.left)
				return true
			}
			cur = cur.left

		case c > 0:
			if cur.right == nil {
				t.attach(n, cur, &cur.right)
				return true
			}
			cur = cur.right

		default:
			cur.count++
			t.total++

			if glog.V(3) {
				glog.Infof("increment %q to %d", cur.key, cur.count)
			}

			t.release(n)
			return false
		}
	}
}

// attach n as new leaf at slot below parent.
func (t *Tree) attach(n, parent *Node, slot **Node) {
	if glog.V(3) {
		if parent == nil {
			glog.Infof("insert %q as root", n.key)
		} else {
			glog.Infof("insert %q below %q", n.key, parent.key)
		}
	}

	n.parent = parent
	n.attached = true
	*slot = n

	t.size++
	t.total += n.count
}

// Add counts one occurrence of key, the caller's buffer is not retained.
func (t *Tree) Add(key []byte) error {
	n, err := t.NewNode(key, 1)
	if err != nil {
		return err
	}

	t.InsertOrIncrement(n)
	return nil
}

// AddString counts one occurrence of word.
func (t *Tree) AddString(word string) error {
	n, err := t.NewNodeString(word, 1)
	if err != nil {
		return err
	}

	t.InsertOrIncrement(n)
	return nil
}

// Len returns the number of distinct words.
func (t *Tree) Len() int {
	return t.size
}

// Total returns the sum of all counts.
func (t *Tree) Total() int {
	return t.total
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest path from the
// root to a leaf, 0 for the empty tree.
func (t *Tree) Height() (height int) {
	if t.root == nil {
		return 0
	}

	// level order, no recursion
	level := []*Node{t.root}
	for len(level) > 0 {
		height++

		var next []*Node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return height
}

// Stats returns the number of live nodes, attached or not yet
// inserted, and the number of nodes ever allocated by the tree's pool.
func (t *Tree) Stats() (live, allocated int64) {
	return t.pool.Stats()
}

func (t *Tree) mustNotNil(n *Node) {
	if n == nil {
		panic(errors.AssertionFailedf("nil node"))
	}
}

func (t *Tree) mustOwn(n *Node) {
	if n.tree != t {
		panic(errors.AssertionFailedf("node %q was not created by this tree", n.key))
	}
}
