// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/gaissmai/wordtree"
)

// report writes the word counts of tree to w in the given format.
func report(w io.Writer, tree *wordtree.Tree, format string, bold bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)

	case "tree":
		return tree.Dump(w)

	default:
		if bold {
			return tree.FprintFunc(w, boldKey)
		}
		return tree.Fprint(w)
	}
}

func boldKey(key string) string {
	return color.OpBold.Render(key)
}

// isTerminal reports whether v is a file connected to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
