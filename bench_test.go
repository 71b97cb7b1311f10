// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package wordtree

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gaissmai/wordtree/internal/tests/random"
)

var benchSizes = []int{1_000, 10_000, 100_000}

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		words := random.Words(rand.New(rand.NewPCG(42, 42)), n, n/4, 10)

		b.Run(fmt.Sprintf("words_%d", n), func(b *testing.B) {
			for b.Loop() {
				tree := New()
				for _, w := range words {
					_ = tree.AddString(w)
				}
				tree.Destroy()
			}
		})
	}
}

func BenchmarkReadFrom(b *testing.B) {
	for _, n := range benchSizes {
		prng := rand.New(rand.NewPCG(42, 42))
		text := random.Text(prng, random.Words(prng, n, n/4, 10))

		b.Run(fmt.Sprintf("words_%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for b.Loop() {
				tree := New()
				_, _ = tree.ReadFrom(strings.NewReader(text))
				tree.Destroy()
			}
		})
	}
}

func BenchmarkTraverse(b *testing.B) {
	for _, n := range benchSizes {
		tree := New()
		for _, w := range random.Words(rand.New(rand.NewPCG(42, 42)), n, n, 10) {
			_ = tree.AddString(w)
		}

		b.Run(fmt.Sprintf("InOrder_%d", n), func(b *testing.B) {
			for b.Loop() {
				for range tree.InOrder() {
				}
			}
		})

		b.Run(fmt.Sprintf("PostOrder_%d", n), func(b *testing.B) {
			for b.Loop() {
				for range tree.PostOrder() {
				}
			}
		})

		b.Run(fmt.Sprintf("WriteTo_%d", n), func(b *testing.B) {
			for b.Loop() {
				_, _ = tree.WriteTo(io.Discard)
			}
		})
	}
}
