// Command bench reports ns/op throughput for the codec's hot paths: the
// bit-length oracle, the packer/unpacker family across a representative
// width sweep, varint, and a full page round trip — the same groupings the
// source this codec was derived from measured with criterion (its vrn and
// tms benchmark groups).
package main

import (
	"fmt"
	"io"
	"os"
	"testing"
	"text/tabwriter"

	"github.com/blockpack/simd256/internal/bench"
)

func main() {
	os.Exit(doMain(os.Stdout))
}

func doMain(stdOut io.Writer) int {
	w := tabwriter.NewWriter(stdOut, 0, 0, 2, ' ', 0)
	defer w.Flush()

	report := func(name string, f func(*testing.B)) {
		r := testing.Benchmark(f)
		nsOp := float64(r.T.Nanoseconds()) / float64(r.N)
		fmt.Fprintf(w, "%s\t%.2f ns/op\n", name, nsOp)
	}

	report("BitLen256", bench.BitLen256)
	for _, width := range bench.Widths {
		width := width
		report(bench.Label("Pack256", width), func(b *testing.B) { bench.PackWidth256(b, width) })
	}
	for _, width := range bench.Widths {
		width := width
		report(bench.Label("Unpack256", width), func(b *testing.B) { bench.UnpackWidth256(b, width) })
	}
	report("VarintEncodeSlice", bench.VarintEncodeSlice)
	report("PageEncode", bench.PageEncode)
	report("PageBlockAccess", bench.PageBlockAccess)

	return 0
}
