// Copyright (c) 2025 the suffixarr authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command saisprint prints the suffixes of each argument in suffix-array
// order.
package main

import (
	"fmt"
	"os"

	"github.com/go-sais/suffixarr"
)

func main() {
	for _, s := range os.Args[1:] {
		fmt.Printf("suffixes of %s:\n", s)
		sa := suffixarr.SuffixArrayUTF8(s)
		for i, start := range sa {
			fmt.Printf("%d: %q\n", i, s[start:])
		}
	}
}
