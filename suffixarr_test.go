// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		text,
		prefix,
		suffix,
		lexOrdExp,
		textOrdExp []int32
		prefixExp int
		sufExp    int
	}{
		"empty text": {
			text:       []int32{},
			prefix:     []int32("a"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
			prefixExp:  -2,
			sufExp:     -1,
		},
		"empty prefix": {
			text:       []int32("aaaaaaa"),
			prefix:     []int32{},
			suffix:     []int32{},
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
			prefixExp:  -1,
			sufExp:     7,
		},
		"same characters": {
			text:       []int32("aaaaaaa"),
			prefix:     []int32("a"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{6, 5, 4, 3, 2, 1, 0},
			textOrdExp: []int32{0, 1, 2, 3, 4, 5, 6},
			prefixExp:  0,
			sufExp:     6,
		},
		"banana": {
			text:       []int32("banana"),
			prefix:     []int32("banana"),
			suffix:     []int32("banana"),
			lexOrdExp:  []int32{0},
			textOrdExp: []int32{0},
			prefixExp:  0,
			sufExp:     0,
		},
		"anana": {
			text:       []int32("banana"),
			prefix:     []int32("banan"),
			suffix:     []int32("anana"),
			lexOrdExp:  []int32{1},
			textOrdExp: []int32{1},
			prefixExp:  0,
			sufExp:     1,
		},
		"nana": {
			text:       []int32("banana"),
			prefix:     []int32("bana"),
			suffix:     []int32("nana"),
			lexOrdExp:  []int32{2},
			textOrdExp: []int32{2},
			prefixExp:  0,
			sufExp:     2,
		},
		"ana": {
			text:       []int32("banana"),
			prefix:     []int32("ban"),
			suffix:     []int32("ana"),
			lexOrdExp:  []int32{3, 1},
			textOrdExp: []int32{1, 3},
			prefixExp:  0,
			sufExp:     3,
		},
		"na": {
			text:       []int32("banana"),
			suffix:     []int32("na"),
			prefix:     []int32("ba"),
			lexOrdExp:  []int32{4, 2},
			textOrdExp: []int32{2, 4},
			prefixExp:  0,
			sufExp:     4,
		},
		"a": {
			text:       []int32("banana"),
			prefix:     []int32("b"),
			suffix:     []int32("a"),
			lexOrdExp:  []int32{5, 3, 1},
			textOrdExp: []int32{1, 3, 5},
			prefixExp:  0,
			sufExp:     5,
		},
		"not found": {
			text:       []int32("banana"),
			prefix:     []int32("ab"),
			suffix:     []int32("ab"),
			lexOrdExp:  []int32{},
			textOrdExp: []int32{},
			prefixExp:  -2,
			sufExp:     -1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.lexOrdExp, New(tc.text).Lookup(tc.suffix))
			assert.Equal(t, tc.textOrdExp, New(tc.text).LookupTextOrder(tc.suffix))
			assert.Equal(t, tc.sufExp, New(tc.text).LookupSuffix(tc.suffix))
			assert.Equal(t, tc.prefixExp, New(tc.text).LookupPrefix(tc.prefix))
		})
	}
}

func TestNewBytes(t *testing.T) {
	sa := NewBytes([]byte("banana"))
	assert.Equal(t, []int32{5, 3, 1, 0, 4, 2}, sa.SA())
	assert.Equal(t, []int32{3, 1}, sa.Lookup([]int32("ana")))
}

func BenchmarkLookup(b *testing.B) {
	sa := New(genRandText_8_32(10000))
	prefix := []int32{1, 2, 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sa.Lookup(prefix)
	}
}
