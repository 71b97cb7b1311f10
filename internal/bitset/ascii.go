// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

// ASCIILetters returns the byte class [A-Za-z].
//
// Locale independent, bytes >= 0x80 are never letters.
func ASCIILetters() BitSet256 {
	var b BitSet256
	b.SetRange('A', 'Z')
	b.SetRange('a', 'z')
	return b
}
