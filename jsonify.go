// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"encoding/json"
)

// WordCount is a word with its count, the element type of [Tree.DumpList].
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MarshalJSON dumps the tree as a list of word counts,
// in ascending order of the words. A list, not a map, because the order matters.
//
//	[{"word":"cat","count":2},{"word":"dog","count":1}]
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList returns all word counts in ascending order of the words,
// an empty but non-nil slice for the empty tree.
func (t *Tree) DumpList() []WordCount {
	t.mustUsable()

	list := make([]WordCount, 0, t.size)
	t.inOrder(func(n *Node) bool {
		list = append(list, WordCount{Word: n.key, Count: n.count})
		return true
	})

	return list
}
