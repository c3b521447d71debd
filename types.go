// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// Symbol is the set of element types a text can be built from.
// Bytes are used for raw input, int32 for the reduced texts produced
// by the builder itself.
type Symbol interface {
	~uint8 | ~uint16 | ~int32 | ~int
}

// classifyTypes marks every position of text as S-type (true) or L-type (false).
// Parameters:
// - text: input text, terminated by a unique minimal sentinel.
// - types: output vector, len(types) >= len(text).
func classifyTypes[S Symbol](text []S, types []bool) {
	n := len(text)
	types[n-1] = true
	for i := n - 2; i >= 0; i-- {
		l, r := text[i], text[i+1]
		types[i] = l < r || (l == r && types[i+1])
	}
}

// isLMS reports whether position i is a leftmost S-type position.
func isLMS(types []bool, i int) bool {
	return i > 0 && types[i] && !types[i-1]
}

// computeBuckets fills bucket with the start (end == false) or the
// exclusive end (end == true) offset of every symbol's bucket.
// Parameters:
// - text: input text with symbols in [0, len(bucket)).
// - bucket: output table, one slot per symbol value.
// - end: selects bucket ends instead of bucket starts.
func computeBuckets[S Symbol](text []S, bucket []int32, end bool) {
	clear(bucket)
	for _, c := range text {
		bucket[int(c)]++
	}
	var offset int32
	for i, n := range bucket {
		offset += n
		if end {
			bucket[i] = offset
		} else {
			bucket[i] = offset - n
		}
	}
}
