// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// empty marks a suffix array slot that holds no suffix yet.
const empty int32 = -1

// Build constructs the suffix array of text into sa using the SA-IS algorithm.
// text must end with a sentinel 0 that is strictly smaller than every other
// symbol, and all symbols must lie in [0, k]. The sentinel contract is not
// checked; use BuildChecked for untrusted input.
// sa must hold at least len(text) elements; only sa[:len(text)] is written.
func Build[S Symbol](text []S, sa []int32, k int) {
	n := len(text)
	if len(sa) < n {
		panic("sais: suffix array buffer too small")
	}
	// Each level gets at most half of its parent's positions, so 2n type
	// slots cover the whole recursion.
	build(text, sa[:n], make([]bool, 2*n), make([]int32, k+1))
}

// build is the recursive body of Build.
// Parameters:
// - text: input text terminated by the sentinel.
// - sa: suffix array to store results, len(sa) == len(text).
// - types: scratch for this level and every level below, len(types) >= 2*len(text).
// - bucket: bucket table sized to the alphabet of text, reused by the summary level when it fits.
func build[S Symbol](text []S, sa []int32, types []bool, bucket []int32) {
	n := len(text)
	switch n {
	case 0:
		return
	case 1:
		sa[0] = 0
		return
	}

	types, rest := types[:n], types[n:]
	classifyTypes(text, types)

	// Sort LMS-substrings.
	insertLMS(text, sa, types, bucket)
	induceL(text, sa, types, bucket)
	induceS(text, sa, types, bucket)

	numLMS, numNames := summarise(text, sa, types)
	summary := sa[n-numLMS:]
	summarySA := sa[:numLMS]
	if numNames < numLMS {
		// Equal LMS-substrings exist, so their suffixes are ordered by the
		// suffix array of the summary string.
		summaryBucket := bucket
		if len(summaryBucket) < numNames {
			summaryBucket = make([]int32, numNames)
		}
		build(summary, summarySA, rest, summaryBucket[:numNames])
	} else {
		// Every name is unique: the summary is its own inverse suffix array.
		for i, name := range summary {
			summarySA[name] = int32(i)
		}
	}

	unmap(sa, types, summary, summarySA)
	expand(text, sa, summarySA, bucket)
	induceL(text, sa, types, bucket)
	induceS(text, sa, types, bucket)
}

// insertLMS clears sa and seeds every LMS position at the end of its bucket,
// scanning the text from left to right.
func insertLMS[S Symbol](text []S, sa []int32, types []bool, bucket []int32) {
	for i := range sa {
		sa[i] = empty
	}
	computeBuckets(text, bucket, true)
	for i := 1; i < len(text); i++ {
		if !isLMS(types, i) {
			continue
		}
		c := int(text[i])
		bucket[c]--
		sa[bucket[c]] = int32(i)
	}
}

// induceL places L-type suffixes at the front of their buckets from the
// suffixes already present in sa, scanning left to right.
// Parameters:
// - text: input text.
// - sa: partially filled suffix array.
// - types: S/L classification of text.
// - bucket: scratch bucket table, refilled with bucket starts.
func induceL[S Symbol](text []S, sa []int32, types []bool, bucket []int32) {
	computeBuckets(text, bucket, false)
	for i := 0; i < len(sa); i++ {
		j := sa[i] - 1
		if j < 0 || types[j] {
			continue
		}
		c := int(text[j])
		sa[bucket[c]] = j
		bucket[c]++
	}
}

// induceS places S-type suffixes at the back of their buckets, scanning sa
// right to left. Seeded LMS entries are overwritten with their final slots.
// Parameters:
// - text: input text.
// - sa: suffix array after induceL.
// - types: S/L classification of text.
// - bucket: scratch bucket table, refilled with bucket ends.
func induceS[S Symbol](text []S, sa []int32, types []bool, bucket []int32) {
	computeBuckets(text, bucket, true)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i] - 1
		if j < 0 || !types[j] {
			continue
		}
		c := int(text[j])
		bucket[c]--
		sa[bucket[c]] = j
	}
}

// equalLMS reports whether the LMS-substrings starting at a and b are equal,
// comparing symbols and types up to and including the next LMS position.
func equalLMS[S Symbol](text []S, types []bool, a, b int) bool {
	n := len(text)
	for d := 0; a+d < n && b+d < n; d++ {
		if text[a+d] != text[b+d] || types[a+d] != types[b+d] {
			return false
		}
		if d > 0 && (isLMS(types, a+d) || isLMS(types, b+d)) {
			return isLMS(types, a+d) && isLMS(types, b+d)
		}
	}
	// Only the sentinel substring reaches the end of text, and it is unique.
	return false
}

// summarise names the sorted LMS-substrings and writes the summary string
// (the names in text order) into the tail of sa.
// Returns the number of LMS positions and the number of distinct names.
func summarise[S Symbol](text []S, sa []int32, types []bool) (int, int) {
	n := len(sa)
	// Compact sorted LMS positions to the front.
	numLMS := 0
	for i := 0; i < n; i++ {
		if isLMS(types, int(sa[i])) {
			sa[numLMS] = sa[i]
			numLMS++
		}
	}
	for i := numLMS; i < n; i++ {
		sa[i] = empty
	}

	// LMS positions are never adjacent, so pos/2 is a collision-free slot
	// in the upper half.
	var (
		names int
		prev  = -1
	)
	for i := 0; i < numLMS; i++ {
		pos := int(sa[i])
		if prev < 0 || !equalLMS(text, types, prev, pos) {
			names++
		}
		prev = pos
		sa[numLMS+pos/2] = int32(names - 1)
	}

	// Pack names to the end of sa, preserving text order.
	j := n - 1
	for i := n - 1; i >= numLMS; i-- {
		if sa[i] != empty {
			sa[j] = sa[i]
			j--
		}
	}
	return numLMS, names
}

// unmap translates the summary suffix array back into LMS positions of the
// original text. The summary slice is reused to hold LMS positions in text order.
func unmap(sa []int32, types []bool, summary, summarySA []int32) {
	var j int
	for i := 1; i < len(types); i++ {
		if isLMS(types, i) {
			summary[j] = int32(i)
			j++
		}
	}
	for i, k := range summarySA {
		summarySA[i] = summary[k]
	}
	for i := len(summarySA); i < len(sa); i++ {
		sa[i] = empty
	}
}

// expand moves the sorted LMS suffixes to the ends of their buckets,
// placing them from last to first so that their relative order is kept.
func expand[S Symbol](text []S, sa, summarySA, bucket []int32) {
	computeBuckets(text, bucket, true)
	for i := len(summarySA) - 1; i >= 0; i-- {
		pos := summarySA[i]
		summarySA[i] = empty
		c := int(text[pos])
		bucket[c]--
		sa[bucket[c]] = pos
	}
}
