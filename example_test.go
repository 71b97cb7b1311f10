// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/gaissmai/wordtree"
)

func ExampleTree_ReadFrom() {
	tree := new(wordtree.Tree)
	defer tree.Destroy()

	if _, err := tree.ReadFrom(strings.NewReader("cat dog cat")); err != nil {
		fmt.Println(err)
		return
	}

	tree.Fprint(os.Stdout)

	// Output:
	// cat: 2
	// dog: 1
}

func ExampleTree_ReadFrom_separators() {
	tree := new(wordtree.Tree)
	defer tree.Destroy()

	// single letters are no words, a word may end at EOF
	tree.ReadFrom(strings.NewReader("a I x hello,world hello"))

	fmt.Print(tree)

	// Output:
	// hello: 2
	// world: 1
}

func ExampleTree_InsertOrIncrement() {
	tree := wordtree.New()
	defer tree.Destroy()

	for _, word := range []string{"b", "a", "c", "a"} {
		n, err := tree.NewNodeString(word, 1)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(word, tree.InsertOrIncrement(n))
	}

	for n := range tree.InOrder() {
		fmt.Println(n)
	}

	// Output:
	// b true
	// a true
	// c true
	// a false
	// a: 2
	// b: 1
	// c: 1
}

func ExampleTree_PostOrder() {
	tree := wordtree.New()
	defer tree.Destroy()

	for _, word := range []string{"hh", "dd", "ll", "bb", "ff"} {
		tree.AddString(word)
	}

	var keys []string
	for n := range tree.PostOrder() {
		keys = append(keys, n.Key())
	}
	fmt.Println(strings.Join(keys, " "))

	// Output:
	// bb ff dd ll hh
}

func ExampleTree_All() {
	tree := wordtree.New()
	defer tree.Destroy()

	tree.ReadFrom(strings.NewReader("to be or not to be"))

	for word, count := range tree.All() {
		if count > 1 {
			fmt.Println(word, count)
		}
	}

	// Output:
	// be 2
	// to 2
}

func ExampleTree_Ingest() {
	tree := wordtree.New()
	defer tree.Destroy()

	cfg := wordtree.IngestConfig{MaxWordLen: 4, Encoding: "iso-8859-1"}

	words, err := tree.Ingest(strings.NewReader("wordtree wordy word"), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("words:", words)
	fmt.Print(tree)

	// Output:
	// words: 3
	// word: 3
}

func ExampleTree_Height() {
	tree := wordtree.New()
	defer tree.Destroy()

	tree.ReadFrom(strings.NewReader("dog cat fox"))

	var pairs []string
	for word, count := range tree.All() {
		pairs = append(pairs, fmt.Sprintf("%s(%d)", word, count))
	}
	fmt.Println(strings.Join(pairs, " "))
	fmt.Printf("len: %d, height: %d\n", tree.Len(), tree.Height())

	// Output:
	// cat(1) dog(1) fox(1)
	// len: 3, height: 2
}
