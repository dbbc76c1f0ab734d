package bench

import (
	"fmt"
	"testing"
)

func BenchmarkBitLen256(b *testing.B) { BitLen256(b) }

func BenchmarkPack256(b *testing.B) {
	for _, w := range Widths {
		w := w
		b.Run(fmt.Sprintf("w=%d", w), func(b *testing.B) { PackWidth256(b, w) })
	}
}

func BenchmarkUnpack256(b *testing.B) {
	for _, w := range Widths {
		w := w
		b.Run(fmt.Sprintf("w=%d", w), func(b *testing.B) { UnpackWidth256(b, w) })
	}
}

func BenchmarkVarintEncodeSlice(b *testing.B) { VarintEncodeSlice(b) }

func BenchmarkPageEncode(b *testing.B) { PageEncode(b) }

func BenchmarkPageBlockAccess(b *testing.B) { PageBlockAccess(b) }
