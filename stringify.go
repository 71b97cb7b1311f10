// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the word counts as string, just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes one line per word in ascending order to w,
// nothing else. If w is nil, Fprint panics.
//
//	cat: 2
//	dog: 1
//
// Fprint does not modify the tree.
func (t *Tree) Fprint(w io.Writer) error {
	_, err := t.writeTo(w, nil)
	return err
}

// FprintFunc is like [Tree.Fprint], every key is passed through
// keyFmt before it is written, e.g. for terminal colors.
func (t *Tree) FprintFunc(w io.Writer, keyFmt func(string) string) error {
	_, err := t.writeTo(w, keyFmt)
	return err
}

// WriteTo implements the [io.WriterTo] interface, the output is
// the same as for [Tree.Fprint].
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	return t.writeTo(w, nil)
}

func (t *Tree) writeTo(w io.Writer, keyFmt func(string) string) (written int64, err error) {
	t.mustUsable()

	t.inOrder(func(n *Node) bool {
		key := n.key
		if keyFmt != nil {
			key = keyFmt(key)
		}

		var k int
		k, err = fmt.Fprintf(w, "%s: %d\n", key, n.count)
		written += int64(k)

		return err == nil
	})

	if err != nil {
		return written, errors.Wrap(err, "writing word counts")
	}

	return written, nil
}
