// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "sort"

// SuffixArrayUTF8 constructs the byte-level suffix array of s and drops every
// entry that falls inside a multi-byte codepoint, leaving only character
// boundaries. Behavior on invalid UTF-8 is unspecified but safe: no index is
// read out of bounds, though the result may not correspond to any sensible
// boundary decomposition of the (invalid) bytes.
//
// Continuation bytes (0x80-0xBF) sort as one contiguous block immediately
// above the ASCII range and immediately below multi-byte lead bytes, so the
// run to drop is located with two binary searches over the already-sorted
// array, exactly as a byte can be classified into "ASCII", "continuation" or
// "lead" by comparing it against 0x80 and 0xC0.
func SuffixArrayUTF8(s string) []int32 {
	bytes := []byte(s)
	sa := Generic(bytes)

	start := sort.Search(len(sa), func(i int) bool {
		return bytes[sa[i]] >= 0x80
	})
	end := sort.Search(len(sa)-start, func(i int) bool {
		return bytes[sa[start+i]] >= 0xC0
	})
	end += start

	out := make([]int32, 0, len(sa)-(end-start))
	out = append(out, sa[:start]...)
	out = append(out, sa[end:]...)
	return out
}
