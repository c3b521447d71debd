// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import "slices"

// compactAlphabet maps an arbitrary int32 text onto the dense alphabet [1, K]
// and appends the 0 sentinel, so Build only needs a bucket table as large as
// the number of distinct symbols.
// Returns the dense text and the sorted distinct source symbols; symbol c of
// the dense text stands for alphabet[c-1].
func compactAlphabet(text []int32) (dense, alphabet []int32) {
	// Sort unique characters to establish a consistent bucket order.
	alphabet = slices.Clone(text)
	slices.Sort(alphabet)
	alphabet = slices.Clip(slices.Compact(alphabet))

	dense = make([]int32, len(text)+1)
	for i, c := range text {
		dense[i] = rank(alphabet, c)
	}
	return dense, alphabet
}

// rank returns the dense symbol of c, or 0 if c is not in alphabet.
func rank(alphabet []int32, c int32) int32 {
	i, ok := slices.BinarySearch(alphabet, c)
	if !ok {
		return 0
	}
	return int32(i) + 1
}

// translate maps pattern onto the dense alphabet.
// ok is false if pattern holds a symbol that never occurs in the text,
// in which case pattern cannot match anywhere.
func translate(alphabet, pattern []int32) (dense []int32, ok bool) {
	dense = make([]int32, len(pattern))
	for i, c := range pattern {
		if dense[i] = rank(alphabet, c); dense[i] == 0 {
			return nil, false
		}
	}
	return dense, true
}
