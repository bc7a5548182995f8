// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
	"slices"
)

// bucket is a map-keyed bucket (start, end, size) used when the symbol range
// is too wide for a dense bucket array.
type bucket struct {
	start, end, size int32
}

// linearCount estimates the number of distinct symbols in text via
// probabilistic linear counting (Whang et al.): every symbol is hashed into
// one bit of a len(text)*32-bit field, and the share of bits left unset
// converts back into a cardinality estimate through -N*ln(emptyFraction).
// tmp is scratch space borrowed from the caller and left zeroed on return.
func linearCount(text, tmp []int32) uint64 {
	fieldBits := uint64(len(text)) * 32
	hasher := fnv.New64a()
	var buf [4]byte

	setBit := func(pos uint64) {
		word, bit := pos/32, uint(pos%32)
		tmp[word] |= int32(1) << bit
	}

	for _, sym := range text {
		binary.LittleEndian.PutUint32(buf[:], uint32(sym))
		hasher.Reset()
		hasher.Write(buf[:])
		setBit(hasher.Sum64() % fieldBits)
	}

	var unsetBits uint64
	for i, word := range tmp[:len(text)] {
		unsetBits += uint64(bits.OnesCount32(^uint32(word)))
		tmp[i] = 0
	}
	if unsetBits == 0 {
		return fieldBits
	}
	estimate := -float64(fieldBits) * math.Log(float64(unsetBits)/float64(fieldBits))
	return uint64(estimate + 0.5)
}

// makeBucketsMap builds one bucket per distinct symbol in text, using sa as
// scratch space to hold the (deduplicated, then sorted) alphabet. It returns
// the bucket map and the number of distinct symbols found.
func makeBucketsMap(sa, text []int32) (map[int32]bucket, int32) {
	estimate := int(linearCount(text, sa))
	buckets := make(map[int32]bucket, estimate+estimate/10)

	var alphaSize int32
	for _, sym := range text {
		b, seen := buckets[sym]
		if !seen {
			sa[alphaSize] = sym
			alphaSize++
		}
		b.size++
		buckets[sym] = b
	}

	alphabet := sa[:alphaSize]
	slices.Sort(alphabet)

	var offset int32
	for i, sym := range alphabet {
		alphabet[i] = 0
		b := buckets[sym]
		b.start = offset
		offset += b.size
		b.end = offset - 1
		buckets[sym] = b
	}
	return buckets, alphaSize
}

// rewindBuckets resets every bucket's working pointer for a fresh induction
// pass: with end set, bucket.end is pulled back to the top of its range;
// otherwise bucket.start is pulled back to the bottom.
func rewindBuckets(buckets map[int32]bucket, end bool) {
	for sym, b := range buckets {
		if end {
			b.end = b.start + b.size - 1
		} else {
			b.start = b.end - b.size + 1
		}
		buckets[sym] = b
	}
}

// induceSortArbitrary is the map-bucketed counterpart of induceSort, used
// when the alphabet is too wide for a dense bucket array.
func induceSortArbitrary(text, sa, data, lmsPos []int32) []int32 {
	buckets, alphaSize := makeBucketsMap(sa, text)
	numLMS := int32(len(lmsPos))

	insertLMSArbitrary(text, sa, buckets, lmsPos)
	if numLMS > 1 {
		induceSubLArbitrary(text, sa, buckets)
		induceSubSArbitrary(text, sa, buckets)
		summary := sa[len(sa)-int(numLMS):]
		maxName := summarise(text, sa, summary, lmsPos, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			_sais(summary, summarySA, data, alphaSize)
			unmap(sa, summarySA, lmsPos)
			clear(summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		expandArbitrary(text, sa, summarySA, buckets)
	}
	induceLArbitrary(text, sa, buckets)
	induceSArbitrary(text, sa, buckets)
	return sa
}

// expandArbitrary re-seeds the sorted LMS suffixes into their bucket ends.
func expandArbitrary(text, sa, summarySA []int32, buckets map[int32]bucket) {
	for i := len(summarySA) - 1; i >= 0; i-- {
		pos := summarySA[i]
		summarySA[i] = 0
		sym := text[pos]
		b := buckets[sym]
		sa[b.end] = pos
		b.end--
		buckets[sym] = b
	}
	rewindBuckets(buckets, true)
}

// insertLMSArbitrary seeds sa with every LMS position, as insertLMS does, but
// reading bucket offsets out of the map instead of a dense array.
func insertLMSArbitrary(text, sa []int32, buckets map[int32]bucket, lmsPos []int32) {
	var lastLMS int32
	for idx := len(lmsPos) - 1; idx >= 0; idx-- {
		pos := lmsPos[idx]
		sym := text[pos]
		b := buckets[sym]
		sa[b.end] = pos
		lastLMS = b.end
		b.end--
		buckets[sym] = b
	}
	if len(lmsPos) > 1 {
		sa[lastLMS] = 0
	}
	rewindBuckets(buckets, true)
}

// induceSubLArbitrary is the map-bucketed counterpart of induceSubL.
func induceSubLArbitrary(text, sa []int32, buckets map[int32]bucket) {
	var (
		k, j     int32  = int32(len(text) - 1), 0
		l, r     int32  = text[k-1], text[k]
		lastChar int32  = text[len(text)-1]
		b        bucket = buckets[lastChar]
	)
	if l < r {
		k = -k
	}
	sa[b.start] = int32(k)
	if b.size > 1 {
		b.start++
		buckets[lastChar] = b
	}

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
		b = buckets[r]
		sa[b.start] = k
		b.start++
		buckets[r] = b
	}
	rewindBuckets(buckets, false)
}

// induceSubSArbitrary is the map-bucketed counterpart of induceSubS.
func induceSubSArbitrary(text, sa []int32, buckets map[int32]bucket) {
	var (
		b          bucket
		j, l, r, k int32
		top        = len(sa)
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
		b = buckets[r]
		sa[b.end] = k
		b.end--
		buckets[r] = b
	}
	rewindBuckets(buckets, true)
}

// induceLArbitrary is the map-bucketed counterpart of induceL.
func induceLArbitrary(text, sa []int32, buckets map[int32]bucket) {
	var (
		k, j     int32  = int32(len(text) - 1), 0
		l, r     int32  = text[k-1], text[k]
		lastChar int32  = text[len(text)-1]
		b        bucket = buckets[lastChar]
	)
	if l < r {
		k = -k
	}
	sa[b.start] = int32(k)
	b.start++
	buckets[lastChar] = b

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
		b = buckets[r]
		sa[b.start] = k
		b.start++
		buckets[r] = b
	}
	rewindBuckets(buckets, false)
}

// induceSArbitrary is the map-bucketed counterpart of induceS.
func induceSArbitrary(text, sa []int32, buckets map[int32]bucket) {
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j
		k := j - 1
		r := text[k]
		if k > 0 {
			if l := text[k-1]; l <= r {
				k = -k
			}
		}
		b := buckets[r]
		sa[b.end] = k
		b.end--
		buckets[r] = b
	}
	rewindBuckets(buckets, true)
}
