package framing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpack/simd256/internal/testdata"
)

func genPageBlocks(t *testing.T, n int, widths []uint8, seed uint64) ([][]uint32, uint32) {
	t.Helper()
	blocks := make([][]uint32, n)
	ref0 := uint32(0)
	for i := 0; i < n; i++ {
		blk, err := testdata.GenBlock(blockSize, widths[i%len(widths)], seed+uint64(i))
		require.NoError(t, err)
		if i == 0 {
			ref0 = 0
		} else {
			// Chain: shift this block up past the previous block's last value.
			last := blocks[i-1][blockSize-1]
			for j := range blk {
				blk[j] += last
			}
		}
		blocks[i] = blk
	}
	return blocks, ref0
}

func TestEncodeUnmarshalBlockRoundTrip(t *testing.T) {
	blocks, ref0 := genPageBlocks(t, 4, []uint8{0, 3, 9, 14}, 1)

	page, err := EncodePage(blocks, ref0)
	require.NoError(t, err)
	assert.Equal(t, 4, page.NumBlocks)

	buf := page.Marshal()
	got, err := UnmarshalPage(buf)
	require.NoError(t, err)
	assert.Equal(t, page.NumBlocks, got.NumBlocks)
	assert.Equal(t, page.Ref0, got.Ref0)
	assert.Equal(t, page.Widths, got.Widths)

	for i, want := range blocks {
		dst := make([]uint32, blockSize)
		require.NoError(t, got.Block(i, dst))
		assert.Equal(t, want, dst, "block %d", i)
	}
}

func TestBlockRandomAccessOrderIndependent(t *testing.T) {
	blocks, ref0 := genPageBlocks(t, 6, []uint8{5, 12, 0, 14}, 2)
	page, err := EncodePage(blocks, ref0)
	require.NoError(t, err)
	buf := page.Marshal()
	got, err := UnmarshalPage(buf)
	require.NoError(t, err)

	order := []int{5, 0, 3, 1, 4, 2}
	for _, i := range order {
		dst := make([]uint32, blockSize)
		require.NoError(t, got.Block(i, dst))
		assert.Equal(t, blocks[i], dst, "block %d out of order", i)
	}
}

func TestBlockOutOfRange(t *testing.T) {
	blocks, ref0 := genPageBlocks(t, 2, []uint8{4}, 3)
	page, err := EncodePage(blocks, ref0)
	require.NoError(t, err)

	dst := make([]uint32, blockSize)
	assert.Error(t, page.Block(-1, dst))
	assert.Error(t, page.Block(2, dst))
}

func TestEncodePageRejectsWrongBlockLength(t *testing.T) {
	_, err := EncodePage([][]uint32{make([]uint32, blockSize-1)}, 0)
	assert.Error(t, err)
}

func benchDayBlocks(b *testing.B, n int) [][]uint32 {
	b.Helper()
	blocks := make([][]uint32, n)
	last := uint32(0)
	for i := range blocks {
		blk, err := testdata.GenBlock(blockSize, 17, uint64(i)+1)
		require.NoError(b, err)
		for j := range blk {
			blk[j] += last
		}
		last = blk[len(blk)-1]
		blocks[i] = blk
	}
	return blocks
}

func BenchmarkEncodePage(b *testing.B) {
	blocks := benchDayBlocks(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := EncodePage(blocks, 0)
		require.NoError(b, err)
	}
}

func BenchmarkPageBlock(b *testing.B) {
	blocks := benchDayBlocks(b, 16)
	page, err := EncodePage(blocks, 0)
	require.NoError(b, err)
	got, err := UnmarshalPage(page.Marshal())
	require.NoError(b, err)
	dst := make([]uint32, blockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		require.NoError(b, got.Block(i%got.NumBlocks, dst))
	}
}
