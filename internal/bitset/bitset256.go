// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset for the byte range [0..255],
// used as a byte class table by the word scanner.
//
// Studied [github.com/bits-and-blooms/bitset] inside out
// and rewrote the needed parts from scratch for this project.
package bitset

import (
	"fmt"
	"math/bits"
)

//   i>>6 is the word index and i&63 the bit index of bit i.
//
// not factored out as functions to keep the methods inlineable.

// BitSet256 represents a fixed size bitset from [0..255]
type BitSet256 [4]uint64

func (b *BitSet256) String() string {
	return fmt.Sprint(b.All())
}

// Set sets the bit for the byte c.
func (b *BitSet256) Set(c byte) {
	b[c>>6&3] |= 1 << (c & 63)
}

// SetRange sets all bits from lo up to and including hi.
func (b *BitSet256) SetRange(lo, hi byte) {
	for c := uint(lo); c <= uint(hi); c++ {
		b.Set(byte(c))
	}
}

// Clear clears the bit for the byte c.
func (b *BitSet256) Clear(c byte) {
	b[c>>6&3] &^= 1 << (c & 63)
}

// Test if the bit for byte c is set.
func (b *BitSet256) Test(c byte) bool {
	return b[c>>6&3]&(1<<(c&63)) != 0 // [&3] is bounds check elimination (BCE)
}

// IsEmpty returns true if no bit is set.
func (b *BitSet256) IsEmpty() bool {
	return b[3] == 0 &&
		b[2] == 0 &&
		b[1] == 0 &&
		b[0] == 0
}

// Union creates the union of base set with compare set.
// This is the BitSet equivalent of | (or).
func (b *BitSet256) Union(c *BitSet256) (bs BitSet256) {
	bs[0] = b[0] | c[0]
	bs[1] = b[1] | c[1]
	bs[2] = b[2] | c[2]
	bs[3] = b[3] | c[3]
	return
}

// Complement returns the set of all bytes not in b.
func (b *BitSet256) Complement() (bs BitSet256) {
	bs[0] = ^b[0]
	bs[1] = ^b[1]
	bs[2] = ^b[2]
	bs[3] = ^b[3]
	return
}

// Size is the number of set bits (popcount).
func (b *BitSet256) Size() (cnt int) {
	cnt += bits.OnesCount64(b[0])
	cnt += bits.OnesCount64(b[1])
	cnt += bits.OnesCount64(b[2])
	cnt += bits.OnesCount64(b[3])
	return
}

// All returns all set bits in ascending order.
func (b *BitSet256) All() []byte {
	buf := make([]byte, 0, b.Size())
	for wIdx, word := range b {
		for ; word != 0; word &= word - 1 {
			buf = append(buf, byte(wIdx<<6+bits.TrailingZeros64(word)))
		}
	}
	return buf
}
