// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "slices"

// SAIS constructs the suffix array of text using the SA-IS algorithm of Nong,
// Zhang and Chan. text must already be coded as non-negative integers; use
// Generic to widen an arbitrary integer symbol type into this form.
//
// The returned slice is a permutation of [0, len(text)) such that the
// suffixes text[SA[0]:], text[SA[1]:], ... are strictly increasing
// lexicographically, with the (unmaterialised) empty suffix treated as
// smaller than everything else.
func SAIS(text []int32) []int32 {
	if len(text) == 0 {
		return []int32{}
	}
	if len(text) == 1 {
		return []int32{0}
	}
	validateLength(len(text))
	return sais(text)
}

// sais is the internal entry point shared by SAIS and the recursive calls;
// it skips the length/base-case checks SAIS already performed.
func sais(text []int32) []int32 {
	return _sais(text, nil, nil, 0)
}

// _sais drives one level of the recursion. text is the (possibly reduced)
// problem; sa and data are working buffers reused across levels, or nil on
// the outermost call; srcAlphaSize fixes the bucket-array width the
// outermost level chose, so every inner level shares one data allocation
// instead of reallocating.
func _sais(text, sa, data []int32, srcAlphaSize int32) []int32 {
	minChar, maxChar := alphabetRange(text)
	currAlphaSize := maxChar - minChar + 1
	lmsPos := lmsPositions(text)

	if sa == nil {
		srcAlphaSize = currAlphaSize
		sa = make([]int32, len(text))
	}
	// A dense bucket array is used when the symbol range spans at most 256
	// values and fits the data width fixed by srcAlphaSize; any wider range
	// falls back to the map-keyed bucket representation.
	if currAlphaSize > 256 || currAlphaSize > srcAlphaSize {
		return induceSortArbitrary(text, sa, data, lmsPos)
	}
	return induceSort(text, sa, data, lmsPos, minChar, srcAlphaSize, currAlphaSize)
}

// alphabetRange returns the smallest and largest symbol values in text, in a
// single forward pass, independent of any L/S classification.
func alphabetRange(text []int32) (minChar, maxChar int32) {
	minChar, maxChar = text[0], text[0]
	for _, v := range text {
		switch {
		case v < minChar:
			minChar = v
		case v > maxChar:
			maxChar = v
		}
	}
	return minChar, maxChar
}

// lmsPositions walks text once, back to front, classifying each position as
// L- or S-type on the fly (no bitvector is kept), and records every position
// where an S-type follows an L-type — the LMS boundaries. The result is
// returned in ascending (text) order so every other pass that needs LMS
// positions — seeding, length computation, unmapping — can share this one
// scan instead of repeating it.
func lmsPositions(text []int32) []int32 {
	positions := make([]int32, 0, (len(text)+1)/2)
	var l, r int32
	var wasS bool
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		switch {
		case l < r:
			wasS = true
		case l > r && wasS:
			wasS = false
			positions = append(positions, int32(i)+1)
		}
	}
	slices.Reverse(positions)
	return positions
}

// induceSort runs the full SA-IS pipeline for alphabets that fit in a dense
// bucket array of at most 256 entries.
func induceSort(text, sa, data, lmsPos []int32, minChar, srcAlphaSize, currAlphaSize int32) []int32 {
	numLMS := int32(len(lmsPos))
	if data == nil || len(data) < int(srcAlphaSize)*2 {
		data = make([]int32, srcAlphaSize*2)
	}
	freq := data[:currAlphaSize]
	buckets := data[srcAlphaSize : srcAlphaSize+currAlphaSize]
	frequency(text, freq, minChar)

	insertLMS(text, sa, freq, buckets, lmsPos, minChar)
	if numLMS > 1 {
		induceSubL(text, sa, freq, buckets, minChar)
		induceSubS(text, sa, freq, buckets, minChar)
		summary := sa[len(sa)-int(numLMS):]
		maxName := summarise(text, sa, summary, lmsPos, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			// Some LMS substrings repeat: recurse on the reduced problem,
			// sharing this call's sa/data buffers.
			_sais(summary, summarySA, data, srcAlphaSize)
			unmap(sa, summarySA, lmsPos)
			clear(summary)
		} else {
			// Every LMS substring is unique, so the sorted LMS positions
			// induceSubS left in summary are the final LMS-suffix order.
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		expand(text, sa, summarySA, freq, buckets, minChar)
	}
	induceL(text, sa, freq, buckets, minChar)
	induceS(text, sa, freq, buckets, minChar)
	return sa
}

// unmap turns the reduced problem's sorted indices (summarySA, each the
// ordinal 0..numLMS-1 of an LMS position in text order) back into the
// original positions they stand for, by indexing straight into lmsPos.
func unmap(sa, summarySA, lmsPos []int32) {
	for i, rank := range summarySA {
		sa[i] = lmsPos[rank]
	}
}

// expand re-seeds the fully sorted LMS suffixes (summarySA, in sorted order)
// into their bucket ends, in preparation for the final induction passes.
func expand(text, sa, summarySA, freq, bucket []int32, minChar int32) {
	frequency(text, freq, minChar)
	bucketBounds(freq, bucket, true)
	for i := len(summarySA) - 1; i >= 0; i-- {
		pos := summarySA[i]
		summarySA[i] = 0
		sym := text[pos] - minChar
		b := bucket[sym]
		sa[b] = pos
		bucket[sym] = b - 1
	}
}

// frequency fills freq with a histogram of text, offset so symbol minChar
// lands at freq[0].
func frequency(text, freq []int32, minChar int32) {
	clear(freq)
	for _, v := range text {
		freq[v-minChar]++
	}
}

// bucketBounds turns a symbol histogram into bucket pointers: with end set,
// bucket[c] is the last free slot of symbol c's run; otherwise it is the
// first. Both directions are driven by the same running offset, just
// committed to the bucket array before or after it advances.
func bucketBounds(freq, bucket []int32, end bool) {
	var offset int32
	for i, n := range freq {
		if n == 0 {
			continue
		}
		if end {
			offset += n
			bucket[i] = offset - 1
		} else {
			bucket[i] = offset
			offset += n
		}
	}
}

// insertLMS seeds sa with every LMS position, each placed at the current end
// of its symbol's bucket and the bucket pointer pulled in by one.
func insertLMS(text, sa, freq, bucket, lmsPos []int32, minChar int32) {
	bucketBounds(freq, bucket, true)
	var lastLMS int32
	for idx := len(lmsPos) - 1; idx >= 0; idx-- {
		pos := lmsPos[idx]
		sym := text[pos] - minChar
		b := bucket[sym]
		bucket[sym] = b - 1
		sa[b] = pos
		lastLMS = b
	}
	if len(lmsPos) > 1 {
		// The smallest LMS position is always the last one seeded here, and
		// nothing downstream reads it back before the final passes start
		// from a clean "0 means empty" slate.
		sa[lastLMS] = 0
	}
}

// induceSubL performs the partial (LMS-seeded) left-to-right induction used
// to sort LMS substrings: a placed position whose predecessor is S-type is
// stored negated, and flipped back to positive (left for induceSubS) when the
// scan reaches it; every other visited entry is cleared to 0.
func induceSubL(text, sa, freq, bucket []int32, minChar int32) {
	bucketBounds(freq, bucket, false)
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
		b        int32 = bucket[lastChar-minChar]
	)
	if l < r {
		k = -k
	}
	bucket[lastChar-minChar] = b + 1
	sa[b] = int32(k)

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		j = sa[i]
		if j < 0 {
			sa[i] = -j
			continue
		}
		sa[i] = 0
		k = j - 1
		l, r = text[k-1], text[k]
		if l < r {
			k = -k
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b + 1
		sa[b] = k
	}
}

// induceSubS performs the partial right-to-left induction counterpart to
// induceSubL, compacting resolved LMS positions to the top of sa as it goes.
func induceSubS(text, sa, freq, bucket []int32, minChar int32) {
	bucketBounds(freq, bucket, true)
	var (
		j, b, l, r, k int32
		top           = len(sa)
	)
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = -j
			continue
		}
		k = j - 1
		l, r = text[k-1], text[k]
		if l > r {
			k = -k
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b - 1
		sa[b] = k
	}
}

// induceL is the full left-to-right induction pass: every L-type suffix is
// placed once the whole LMS order is known.
func induceL(text, sa, freq, bucket []int32, minChar int32) {
	bucketBounds(freq, bucket, false)
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
		b        int32 = bucket[lastChar-minChar]
	)
	if l < r {
		k = -k
	}
	bucket[lastChar-minChar] = b + 1
	sa[b] = int32(k)

	for i := 0; i < len(sa); i++ {
		j = sa[i]
		if j <= 0 {
			continue
		}
		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l < r {
				k = -k
			}
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b + 1
		sa[b] = k
	}
}

// induceS is the full right-to-left induction pass, completing the array.
func induceS(text, sa, freq, bucket []int32, minChar int32) {
	bucketBounds(freq, bucket, true)
	var j, l, r, k, b int32
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j
		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l <= r {
				k = -k
			}
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b - 1
		sa[b] = k
	}
}

// lengthLMS records, at sa[p/2], the distance from each LMS position p to the
// next one (the LMS substring without its closing symbol) — safe because
// distinct LMS positions are always at least 2 apart. Lengths fall straight out of adjacent entries in
// lmsPos, walked from the last (whose substring runs to the end of text) back
// to the first, with no rescan of text needed.
func lengthLMS(text, sa, lmsPos []int32) {
	last := len(lmsPos) - 1
	end := int32(len(text))
	for idx := last; idx >= 0; idx-- {
		pos := lmsPos[idx]
		if idx == last {
			sa[pos/2] = end - pos
		} else {
			sa[pos/2] = lmsPos[idx+1] - pos
		}
	}
}

// equalLMS reports whether the two LMS substrings starting at l and r (with
// known lengths lLen and rLen) are identical symbol-for-symbol.
func equalLMS(text []int32, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}
	return true
}

// summarise renames each LMS substring (in sorted order, as left by
// induceSubL/induceSubS) into a small integer name, scattering names into
// sa[p/2] and then compacting them left-to-right into summary, the reduced
// string. When every name is distinct it returns before compacting, leaving
// summary holding the sorted LMS positions. Returns the largest name assigned.
func summarise(text, sa, summary, lmsPos []int32, numLMS int32) int32 {
	lengthLMS(text, sa, lmsPos)
	var (
		name, maxName int32 = 1, 1
		posLMS              = summary
		prevLen       int32 = sa[posLMS[0]/2]
	)
	sa[posLMS[0]/2] = name
	for i := 1; i < len(posLMS); i++ {
		prev := posLMS[i-1]
		curr := posLMS[i]
		if !equalLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= numLMS {
		return maxName
	}
	var j int
	for i := 0; i < len(sa)/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], summary[j] = 0, curr
		j++
	}
	return maxName
}
