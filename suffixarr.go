// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// SuffixArray holds a text and its suffix array.
// It is immutable once built and safe for concurrent use.
type SuffixArray struct {
	src      []int32 // Original text.
	text     []int32 // Dense text terminated by the sentinel.
	alphabet []int32 // Sorted distinct symbols of src.
	sa       []int32 // Suffix array of text without the sentinel suffix.
}

// New creates a suffix array for the given text.
// Symbols may take any int32 value.
func New(text []int32) *SuffixArray {
	dense, alphabet := compactAlphabet(text)
	sa := make([]int32, len(dense))
	Build(dense, sa, len(alphabet))
	// The sentinel suffix always sorts first.
	return &SuffixArray{text, dense, alphabet, sa[1:]}
}

// NewString creates a suffix array over the runes of s after NFC normalization.
func NewString(s string) *SuffixArray {
	return New([]int32(norm.NFC.String(s)))
}

// Len returns the length of the indexed text.
func (sa *SuffixArray) Len() int {
	return len(sa.src)
}

// find returns the range of sa whose suffixes start with prefix.
func (sa *SuffixArray) find(prefix []int32) []int32 {
	dense, ok := translate(sa.alphabet, prefix)
	if !ok {
		return sa.sa[:0]
	}
	l, r := lookup(sa.text, sa.sa, dense)
	return sa.sa[l:r]
}

// Lookup finds suffixes starting with the given prefix, in lexicographical order.
func (sa *SuffixArray) Lookup(prefix []int32) []int32 {
	return slices.Clone(sa.find(prefix))
}

// LookupTextOrder finds suffixes starting with the prefix, sorted by text position.
func (sa *SuffixArray) LookupTextOrder(prefix []int32) []int32 {
	res := sa.Lookup(prefix)
	slices.Sort(res)
	return res
}

// Contains reports whether sub occurs in the text.
func (sa *SuffixArray) Contains(sub []int32) bool {
	return len(sa.find(sub)) > 0
}

// Count returns the number of occurrences of sub in the text.
func (sa *SuffixArray) Count(sub []int32) int {
	return len(sa.find(sub))
}

// LongestCommonPrefix returns the length of the common prefix of the
// suffixes starting at a and b.
func (sa *SuffixArray) LongestCommonPrefix(a, b int) int {
	return LongestCommonPrefix(sa.src, a, b)
}

// LookupSuffix finds the exact suffix in the text.
// For an empty suffix, returns Len() as it occurs at the end of the string.
// Otherwise, returns the starting index or -1 if not found.
func (sa *SuffixArray) LookupSuffix(suffix []int32) int {
	if len(suffix) == 0 {
		return len(sa.src)
	}
	if len(suffix) > len(sa.src) {
		return -1
	}
	l := len(sa.src) - len(suffix)
	if slices.Equal(sa.src[l:], suffix) {
		return l
	}
	return -1
}

// LookupPrefix checks if the text starts with the given prefix.
// For an empty prefix, returns -1 as it precedes the first character.
// Returns 0 if matched, -2 otherwise.
func (sa *SuffixArray) LookupPrefix(prefix []int32) int {
	if len(prefix) == 0 {
		return -1
	}
	if len(prefix) > len(sa.src) {
		return -2
	}
	if slices.Equal(sa.src[:len(prefix)], prefix) {
		return 0
	}
	return -2
}
