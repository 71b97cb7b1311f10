// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"io"

	"github.com/golang/glog"

	"github.com/gaissmai/wordtree/internal/scan"
)

const (
	// MinWordLen, shorter runs of letters are no words.
	MinWordLen = scan.MinWordLen

	// DefaultMaxWordLen, longer words are truncated.
	DefaultMaxWordLen = scan.DefaultMaxWordLen
)

var (
	// ErrMaxWordLen is returned by [Tree.Ingest] for a maximum word
	// length below [MinWordLen].
	ErrMaxWordLen = scan.ErrMaxWordLen

	// ErrUnknownEncoding is returned by [Tree.Ingest] for an
	// unsupported character encoding.
	ErrUnknownEncoding = scan.ErrUnknownEncoding
)

// IngestConfig controls how [Tree.Ingest] segments the input.
type IngestConfig struct {
	// MaxWordLen truncates longer words, 0 means [DefaultMaxWordLen].
	MaxWordLen int

	// Encoding is the character set of the input, e.g. "utf-16le" or
	// "iso-8859-1". The input is decoded to UTF-8 before it is
	// segmented. Empty means raw bytes.
	Encoding string
}

// ReadFrom implements the [io.ReaderFrom] interface. It counts all
// words of r with the default configuration and returns the number
// of bytes read.
func (t *Tree) ReadFrom(r io.Reader) (int64, error) {
	s := scan.New(r)
	_, err := t.feed(s)

	return s.BytesRead(), err
}

// Ingest counts all words of r and returns the number of words
// added to the tree.
//
// On error the words read so far stay counted. [ErrExhausted] is
// returned as is, the tree is still consistent.
func (t *Tree) Ingest(r io.Reader, cfg IngestConfig) (words int64, err error) {
	dec, err := scan.Decoder(cfg.Encoding)
	if err != nil {
		return 0, err
	}

	opts := []scan.Option{scan.WithDecoder(dec)}
	if cfg.MaxWordLen != 0 {
		opts = append(opts, scan.WithMaxWordLen(cfg.MaxWordLen))
	}

	return t.feed(scan.New(r, opts...))
}

// feed the words of s into the tree.
func (t *Tree) feed(s *scan.Scanner) (words int64, err error) {
	for s.Scan() {
		if err = t.Add(s.Bytes()); err != nil {
			return words, err
		}
		words++
	}

	if glog.V(2) {
		glog.Infof("ingested %d words, %d short runs skipped, %d bytes, %d distinct",
			words, s.Skipped(), s.BytesRead(), t.size)
	}

	return words, s.Err()
}
