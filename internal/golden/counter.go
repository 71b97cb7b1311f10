// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow word counter,
// implemented as a map, as a golden reference for wordtree.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// Counter counts words in a map.
type Counter map[string]int

// Item is a word with its count.
type Item struct {
	Word  string
	Count int
}

func (i Item) String() string {
	return fmt.Sprintf("%s: %d", i.Word, i.Count)
}

// Add counts one occurrence of word.
func (c Counter) Add(word string) {
	c[word]++
}

// Total returns the sum of all counts.
func (c Counter) Total() (total int) {
	for _, n := range c {
		total += n
	}
	return total
}

// AllSorted returns all items in ascending byte-wise order of the words.
func (c Counter) AllSorted() []Item {
	items := make([]Item, 0, len(c))
	for w, n := range c {
		items = append(items, Item{w, n})
	}
	slices.SortFunc(items, CmpItem)
	return items
}

// Keys returns all words in ascending order.
func (c Counter) Keys() []string {
	keys := make([]string, 0, len(c))
	for w := range c {
		keys = append(keys, w)
	}
	slices.Sort(keys)
	return keys
}

// CmpItem, compare func for item sort by word.
func CmpItem(a, b Item) int {
	return cmp.Compare(a.Word, b.Word)
}
