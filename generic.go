// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Symbol is any integer type that can name an alphabet symbol. Values must
// be non-negative and representable in int32; Generic panics with
// ErrAlphabetTooLarge otherwise, per the "alphabets that do not embed in the
// non-negative integers" non-goal.
type Symbol interface {
	constraints.Integer
}

// Generic widens text, coded in any integer symbol type, to the int32
// representation SAIS operates on, then constructs its suffix array. This is
// the entry point for callers whose alphabet is not already []int32 — a
// []byte DNA sequence, a []rune string, or a []uint16 token stream, for
// example.
func Generic[T Symbol](text []T) []int32 {
	if len(text) == 0 {
		return []int32{}
	}
	if len(text) == 1 {
		return []int32{0}
	}
	validateLength(len(text))

	coded := make([]int32, len(text))
	for i, v := range text {
		// v < 0 only ever fires for signed T; unsigned T can't be negative,
		// so the comparison is a (harmless) no-op for those instantiations.
		if v < 0 || uint64(v) > uint64(math.MaxInt32) {
			panic(ErrAlphabetTooLarge)
		}
		coded[i] = int32(v)
	}
	return sais(coded)
}
