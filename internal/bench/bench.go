// Package bench holds the benchmark bodies shared by this module's
// go test -bench suite and the cmd/bench CLI, the same groupings the
// source this codec was derived from measured with criterion (its vrn and
// tms benchmark groups): the width oracle, the packer/unpacker family
// across a representative width sweep, varint, and a full page round trip.
package bench

import (
	"fmt"
	"testing"

	"github.com/blockpack/simd256"
	"github.com/blockpack/simd256/framing"
	"github.com/blockpack/simd256/internal/testdata"
	"github.com/blockpack/simd256/internal/varint"
)

// Widths covers the cheap single-bit case, a mid-range width that forces a
// partial cross-vector shift, both documented boundary widths (0 and 32),
// and the widest non-trivial width.
var Widths = []uint8{0, 1, 7, 16, 25, 31, 32}

// BitLen256 benchmarks the width oracle over one canonical block.
func BitLen256(b *testing.B) {
	block, err := testdata.GenBlock(simd256.DefaultBlockSize, 17, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		simd256.BitLen(block)
	}
}

// PackWidth256 benchmarks Pack256 at the given width.
func PackWidth256(b *testing.B, w uint8) {
	block, err := testdata.GenBlock(simd256.DefaultBlockSize, w, 1)
	if err != nil {
		b.Fatal(err)
	}
	need, err := simd256.ByteLen256(w)
	if err != nil {
		b.Fatal(err)
	}
	out := make([]byte, need)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := simd256.Pack256(w, 0, block, out); err != nil {
			b.Fatal(err)
		}
	}
}

// UnpackWidth256 benchmarks Unpack256 at the given width.
func UnpackWidth256(b *testing.B, w uint8) {
	block, err := testdata.GenBlock(simd256.DefaultBlockSize, w, 1)
	if err != nil {
		b.Fatal(err)
	}
	need, err := simd256.ByteLen256(w)
	if err != nil {
		b.Fatal(err)
	}
	packed := make([]byte, need)
	if err := simd256.Pack256(w, 0, block, packed); err != nil {
		b.Fatal(err)
	}
	dst := make([]uint32, simd256.DefaultBlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := simd256.Unpack256(w, 0, packed, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// VarintEncodeSlice benchmarks batch varint encoding of one block's worth
// of small integers, as framing does for a page's width table.
func VarintEncodeSlice(b *testing.B) {
	vals := make([]uint32, simd256.DefaultBlockSize)
	for i := range vals {
		vals[i] = uint32(i % 128)
	}
	dst := make([]byte, varint.SliceLen(vals))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		varint.EncodeSlice(vals, dst)
	}
}

func dayBlocks(b *testing.B, n int) [][]uint32 {
	b.Helper()
	blocks := make([][]uint32, n)
	last := uint32(0)
	for i := range blocks {
		blk, err := testdata.GenBlock(simd256.DefaultBlockSize, 17, uint64(i)+1)
		if err != nil {
			b.Fatal(err)
		}
		for j := range blk {
			blk[j] += last
		}
		last = blk[len(blk)-1]
		blocks[i] = blk
	}
	return blocks
}

// PageEncode benchmarks assembling a 16-block page.
func PageEncode(b *testing.B) {
	blocks := dayBlocks(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := framing.EncodePage(blocks, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// PageBlockAccess benchmarks random-access decode of a single block out of
// an already-unmarshaled page.
func PageBlockAccess(b *testing.B) {
	blocks := dayBlocks(b, 16)
	page, err := framing.EncodePage(blocks, 0)
	if err != nil {
		b.Fatal(err)
	}
	got, err := framing.UnmarshalPage(page.Marshal())
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]uint32, simd256.DefaultBlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := got.Block(i%got.NumBlocks, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// Label formats a width for use as a sub-benchmark/report name.
func Label(prefix string, w uint8) string {
	return fmt.Sprintf("%s/w=%d", prefix, w)
}
