// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"slices"
	"sort"
)

// LongestCommonPrefix returns the number of equal symbols at the start of
// the suffixes text[a:] and text[b:].
func LongestCommonPrefix[S Symbol](text []S, a, b int) int {
	n := len(text)
	var l int
	for a+l < n && b+l < n && text[a+l] == text[b+l] {
		l++
	}
	return l
}

// comparePrefix compares the suffix text[pos:], truncated to len(prefix),
// with prefix lexicographically.
func comparePrefix[S Symbol](text []S, pos int, prefix []S) int {
	suf := text[pos:]
	if len(suf) > len(prefix) {
		suf = suf[:len(prefix)]
	}
	return slices.Compare(suf, prefix)
}

// lookup returns the range [l, r) of sa whose suffixes start with sub.
func lookup[S Symbol](text []S, sa []int32, sub []S) (int, int) {
	// Find left boundary where suffix >= sub.
	l := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(text, int(sa[i]), sub) >= 0
	})
	// Find right boundary where suffix > sub.
	r := l + sort.Search(len(sa)-l, func(i int) bool {
		return comparePrefix(text, int(sa[l+i]), sub) > 0
	})
	return l, r
}

// Contains reports whether sub occurs in text.
// sa must be the suffix array of text.
func Contains[S Symbol](text []S, sa []int32, sub []S) bool {
	l, r := lookup(text, sa, sub)
	return l < r
}

// Count returns the number of occurrences of sub in text.
func Count[S Symbol](text []S, sa []int32, sub []S) int {
	l, r := lookup(text, sa, sub)
	return r - l
}

// Find returns the offsets of every occurrence of sub in text, in suffix
// array order. The result does not alias sa.
func Find[S Symbol](text []S, sa []int32, sub []S) []int32 {
	l, r := lookup(text, sa, sub)
	return slices.Clone(sa[l:r])
}
