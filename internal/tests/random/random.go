// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates random words and texts for tests.
package random

import (
	"math/rand/v2"
	"strings"
)

const (
	lower = "abcdefghijklmnopqrstuvwxyz"
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// separators, including bytes outside of ASCII
	separators = " \t\n.,;:!?-_'\"0123456789\x00\x80\xc3\xa9\xff"
)

// Word returns a random word of ASCII letters with a length in [minLen..maxLen].
// Mostly lower case, so that duplicates are likely with small alphabets.
func Word(prng *rand.Rand, minLen, maxLen int) string {
	n := minLen + prng.IntN(maxLen-minLen+1)

	b := make([]byte, n)
	for i := range b {
		if prng.IntN(8) == 0 {
			b[i] = upper[prng.IntN(len(upper))]
			continue
		}
		b[i] = lower[prng.IntN(len(lower))]
	}
	return string(b)
}

// Words returns n random words of length [2..maxLen], drawn from a
// vocabulary of vocab distinct candidates, so duplicates occur.
func Words(prng *rand.Rand, n, vocab, maxLen int) []string {
	voc := make([]string, vocab)
	for i := range voc {
		voc[i] = Word(prng, 2, maxLen)
	}

	words := make([]string, n)
	for i := range words {
		words[i] = voc[prng.IntN(vocab)]
	}
	return words
}

// Text joins words with random runs of separators and sprinkles
// single letters between them, which are no words.
func Text(prng *rand.Rand, words []string) string {
	var sb strings.Builder
	for _, w := range words {
		sep(prng, &sb)

		if prng.IntN(4) == 0 {
			sb.WriteByte(lower[prng.IntN(len(lower))])
			sep(prng, &sb)
		}

		sb.WriteString(w)
	}
	return sb.String()
}

// sep writes 1..3 separator bytes.
func sep(prng *rand.Rand, sb *strings.Builder) {
	for range 1 + prng.IntN(3) {
		sb.WriteByte(separators[prng.IntN(len(separators))])
	}
}
