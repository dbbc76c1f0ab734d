//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
)

var (
	component = flag.String("component", "all", "component to generate: pack, unpack, or all")
)

// main emits one pack and one unpack kernel per bit width in [1, 31] for
// the canonical 256-element block, so go:generate stays a single command.
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/blockpack/simd256")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	for w := 1; w <= 31; w++ {
		if comp == "pack" || comp == "all" {
			genPackKernel(w)
		}
		if comp == "unpack" || comp == "all" {
			genUnpackKernel(w)
		}
	}

	Generate()
}
