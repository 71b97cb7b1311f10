// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package scan

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned by Decoder for unsupported character sets.
var ErrUnknownEncoding = errors.New("unknown character encoding")

// Decoder returns a decoder to UTF-8 for the named character set,
// e.g. "utf-16le", "windows-1252" or "iso-8859-1".
// The empty name and "raw" return a nil decoder, the input is then
// segmented as is.
func Decoder(name string) (*encoding.Decoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "", "raw":
		return nil, nil
	case "iso-8859-1", "latin1":
		// htmlindex maps these labels to windows-1252
		return charmap.ISO8859_1.NewDecoder(), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}

	return enc.NewDecoder(), nil
}
