// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package scan segments a byte stream into words.
//
// A word is a maximal run of at least [MinWordLen] ASCII letters [A-Za-z].
// Every other byte is a separator, no case folding is done. Runs longer
// than the maximum word length are truncated, the rest of the run is
// consumed and dropped.
//
// The Scanner API follows [bufio.Scanner]:
//
//	s := scan.New(r)
//	for s.Scan() {
//		word := s.Bytes()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
package scan

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"golang.org/x/text/encoding"

	"github.com/gaissmai/wordtree/internal/bitset"
)

const (
	// MinWordLen, shorter runs of letters are separators.
	MinWordLen = 2

	// DefaultMaxWordLen, longer runs are truncated.
	DefaultMaxWordLen = 64
)

// ErrMaxWordLen is returned by [Scanner.Err] if the configured
// maximum word length is below [MinWordLen].
var ErrMaxWordLen = errors.New("max word length below minimum word length")

// letters, the byte class of word characters.
var letters = bitset.ASCIILetters()

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxWordLen sets the maximum word length, default is [DefaultMaxWordLen].
func WithMaxWordLen(n int) Option {
	return func(s *Scanner) {
		s.maxLen = n
	}
}

// WithDecoder decodes the input stream with dec before segmenting it.
// A nil decoder reads the raw bytes.
func WithDecoder(dec *encoding.Decoder) Option {
	return func(s *Scanner) {
		s.dec = dec
	}
}

// Scanner reads words from an input stream.
type Scanner struct {
	src *countingReader
	r   *bufio.Reader
	dec *encoding.Decoder

	maxLen int
	word   []byte

	words   int64
	skipped int64

	done bool
	err  error
}

// New returns a Scanner reading from r.
func New(r io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		maxLen: DefaultMaxWordLen,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxLen < MinWordLen {
		s.err = errors.Wrapf(ErrMaxWordLen, "max word length %d", s.maxLen)
		s.done = true
		return s
	}

	s.src = &countingReader{r: r}

	var in io.Reader = s.src
	if s.dec != nil {
		in = s.dec.Reader(in)
	}

	s.r = bufio.NewReader(in)
	s.word = make([]byte, 0, s.maxLen)

	return s
}

// Scan advances the Scanner to the next word, which will then be available
// through the Bytes or Text method. It returns false when the scan stops,
// either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	s.word = s.word[:0]
	runLen := 0

	for {
		c, err := s.r.ReadByte()
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = errors.Wrap(err, "reading input")
				return false
			}

			// a run ending at EOF is still a word
			return s.emit(runLen)
		}

		if letters.Test(c) {
			runLen++

			// truncate, ignore the rest of the run
			if len(s.word) < s.maxLen {
				s.word = append(s.word, c)
			}
			continue
		}

		// separator
		if s.emit(runLen) {
			return true
		}
		s.word = s.word[:0]
		runLen = 0
	}
}

// emit reports whether the current run is a word.
func (s *Scanner) emit(runLen int) bool {
	switch {
	case runLen == 0:
		return false
	case runLen < MinWordLen:
		s.skipped++
		if glog.V(4) {
			glog.Infof("scan: run %q too short, skipping", s.word)
		}
		return false
	}

	s.words++
	if glog.V(4) {
		glog.Infof("scan: got word %q", s.word)
	}
	return true
}

// Bytes returns the most recent word generated by a call to Scan.
// The underlying array may point to data that will be overwritten
// by a subsequent call to Scan. It does no allocation.
func (s *Scanner) Bytes() []byte {
	return s.word
}

// Text returns the most recent word generated by a call to Scan
// as a newly allocated string.
func (s *Scanner) Text() string {
	return string(s.word)
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}

// Words returns the number of words reported so far.
func (s *Scanner) Words() int64 {
	return s.words
}

// Skipped returns the number of letter runs dropped as too short.
func (s *Scanner) Skipped() int64 {
	return s.skipped
}

// BytesRead returns the number of bytes consumed from the
// underlying reader, before any decoding.
func (s *Scanner) BytesRead() int64 {
	if s.src == nil {
		return 0
	}
	return s.src.n
}

// countingReader counts the bytes read from r.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
