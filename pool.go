// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"sync"
	"sync/atomic"
)

// pool is a type-safe wrapper around sync.Pool,
// specialized for managing *Node instances.
//
// It reuses node memory after a release and tracks statistics on
// allocations and live nodes. The live counter is what the node
// limit of a tree is checked against.
type pool struct {
	sync.Pool // embedded Sync Pool for *Node

	totalAllocated atomic.Int64 // total number of *Node ever allocated
	currentLive    atomic.Int64 // number of nodes currently in use (not returned to pool)
}

// newPool creates and returns a new pool for *Node instances.
func newPool() *pool {
	p := &pool{}
	p.New = func() any {
		p.totalAllocated.Add(1)

		return new(Node)
	}
	return p
}

// Get retrieves a *Node from the pool, or creates a new one if needed.
//
// If the pool is nil, a new node is returned without tracking.
func (p *pool) Get() *Node {
	if p == nil {
		return new(Node)
	}
	p.currentLive.Add(1)

	return p.Pool.Get().(*Node)
}

// Put resets n and returns it to the pool for potential reuse.
// If the pool is nil, the node is discarded.
func (p *pool) Put(n *Node) {
	n.reset()

	if p == nil {
		return
	}
	p.currentLive.Add(-1)

	p.Pool.Put(n)
}

// Stats returns the number of currently live (checked-out) nodes
// and the total number of *Node objects ever allocated by this pool.
func (p *pool) Stats() (live int64, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}
