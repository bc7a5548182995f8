// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"slices"
	"sort"
)

// SuffixArray pairs a coded text with its suffix array so repeated lookups
// don't pay for SA-IS more than once.
type SuffixArray struct {
	text, sa []int32
}

// New builds a suffix array over text, already coded as int32 symbols.
func New(text []int32) *SuffixArray {
	return &SuffixArray{text, SAIS(text)}
}

// NewBytes builds a suffix array over a byte string.
func NewBytes(text []byte) *SuffixArray {
	return &SuffixArray{widenBytes(text), Generic(text)}
}

func widenBytes(b []byte) []int32 {
	out := make([]int32, len(b))
	for i, v := range b {
		out[i] = int32(v)
	}
	return out
}

// comparePrefix orders a suffix against a search prefix: the two are compared
// symbol-by-symbol over their shared length, and whichever runs out of
// symbols first decides the result — except a suffix at least as long as the
// prefix counts as matching it (0), since that's the relation lookup below
// actually needs, not a true three-way string compare.
func comparePrefix(suf, prefix []int32) int {
	n := min(len(suf), len(prefix))
	for i := 0; i < n; i++ {
		switch {
		case suf[i] < prefix[i]:
			return -1
		case suf[i] > prefix[i]:
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// lookup returns the contiguous run of sa whose suffixes carry prefix,
// narrowed down with two binary searches over the already-sorted array: one
// for where matches could start, one for how far they run.
func lookup(text, sa, prefix []int32) []int32 {
	if len(prefix) == 0 {
		return sa
	}
	if len(sa) == 0 {
		return []int32{}
	}
	lo := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(text[sa[i]:], prefix) >= 0
	})
	width := sort.Search(len(sa)-lo, func(i int) bool {
		return comparePrefix(text[sa[lo+i]:], prefix) > 0
	})
	return sa[lo : lo+width]
}

// lookupTextOrder is lookup, re-sorted by where each match starts in text
// rather than by lexicographic suffix order.
func lookupTextOrder(text, sa, prefix []int32) []int32 {
	matches := slices.Clone(lookup(text, sa, prefix))
	slices.Sort(matches)
	return matches
}

// Lookup returns the starting positions of every suffix carrying prefix, in
// suffix-array (lexicographic) order.
func (s *SuffixArray) Lookup(prefix []int32) []int32 {
	return lookup(s.text, s.sa, prefix)
}

// LookupTextOrder is Lookup with results ordered by position in text instead
// of lexicographically.
func (s *SuffixArray) LookupTextOrder(prefix []int32) []int32 {
	return lookupTextOrder(s.text, s.sa, prefix)
}

// LookupSuffix reports where suffix begins if it is exactly the tail of
// text, or -1 if it isn't. The empty suffix is a special case: it always
// occurs, at position len(text).
func (s *SuffixArray) LookupSuffix(suffix []int32) int {
	if len(suffix) == 0 {
		return len(s.sa)
	}
	if len(s.sa) == 0 || len(suffix) > len(s.text) {
		return -1
	}
	tailStart := len(s.text) - len(suffix)
	if slices.Equal(s.text[tailStart:], suffix) {
		return tailStart
	}
	return -1
}

// LookupPrefix reports 0 if text begins with prefix, -2 if it doesn't, and
// -1 for the degenerate empty-prefix query (which precedes every position,
// so neither 0 nor -2 describes it).
func (s *SuffixArray) LookupPrefix(prefix []int32) int {
	if len(prefix) == 0 {
		return -1
	}
	if len(s.sa) == 0 || len(prefix) > len(s.text) {
		return -2
	}
	if slices.Equal(s.text[:len(prefix)], prefix) {
		return 0
	}
	return -2
}

// SA returns the underlying suffix array, in lexicographic (sorted-suffix)
// order.
func (s *SuffixArray) SA() []int32 {
	return s.sa
}
