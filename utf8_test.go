// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSuffixArrayUTF8(t *testing.T) {
	tests := map[string]struct {
		input string
	}{
		"empty":        {""},
		"ascii":        {"banana"},
		"two-byte":     {"héllo"},
		"three-byte":   {"日本語"},
		"four-byte":    {"𝄞music"},
		"mixed":        {"café日本"},
		"all the same": {"aaaaaaaaaa"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := SuffixArrayUTF8(tc.input)

			wantLen := utf8.RuneCountInString(tc.input)
			assert.Equal(t, wantLen, len(sa), "number of character boundaries")

			bytes := []byte(tc.input)
			for _, idx := range sa {
				b := bytes[idx]
				assert.False(t, b >= 0x80 && b < 0xC0, "SA entry %d points at a continuation byte", idx)
			}

			for i := 0; i+1 < len(sa); i++ {
				assert.Less(t, string(bytes[sa[i]:]), string(bytes[sa[i+1]:]))
			}
		})
	}
}

// P4: SuffixArrayUTF8 is the restriction of the byte-level suffix array to
// character-boundary indices, with relative order preserved.
func TestSuffixArrayUTF8IsRestriction(t *testing.T) {
	s := "héllo"
	full := Generic([]byte(s))
	filtered := SuffixArrayUTF8(s)

	var want []int32
	for _, idx := range full {
		if b := s[idx]; b < 0x80 || b >= 0xC0 {
			want = append(want, idx)
		}
	}
	assert.Equal(t, want, filtered)
	assert.NotContains(t, filtered, int32(2)) // continuation byte after 0xC3
}

func FuzzSuffixArrayUTF8(f *testing.F) {
	f.Add("banana")
	f.Add("héllo")
	f.Add("日本語")
	f.Fuzz(func(t *testing.T, s string) {
		sa := SuffixArrayUTF8(s)
		bytes := []byte(s)
		for i := 0; i+1 < len(sa); i++ {
			if slices.Compare(bytes[sa[i]:], bytes[sa[i+1]:]) >= 0 {
				t.Fatalf("suffixes at positions %d, %d not strictly increasing", sa[i], sa[i+1])
			}
		}
	})
}
