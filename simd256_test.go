package simd256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialBlock builds a block whose values climb toward the largest
// value w bits can hold and then saturate there, so the inter-row delta
// Pack/Unpack actually cares about never exceeds what w bits can encode
// regardless of block size or lane count.
func sequentialBlock(B int, w uint8) []uint32 {
	blk := make([]uint32, B)
	if w == 0 {
		return blk
	}
	max := uint32((uint64(1) << w) - 1)
	if w == 32 {
		max = 0xFFFFFFFF
	}
	step := max / uint32(B)
	if step == 0 {
		step = 1
	}
	v := uint32(0)
	for i := range blk {
		blk[i] = v
		if max-v < step {
			v = max
		} else {
			v += step
		}
	}
	return blk
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, B := range SupportedBlockSizes {
		for _, w := range []uint8{0, 1, 3, 8, 17, 31, 32} {
			B, w := B, w
			t.Run("", func(t *testing.T) {
				unp := sequentialBlock(B, w)

				need, err := ByteLen(w, B)
				require.NoError(t, err)
				out := make([]byte, need)

				require.NoError(t, Pack(w, B, 0, unp, out))

				got := make([]uint32, B)
				require.NoError(t, Unpack(w, B, 0, out, got))

				if w == 0 {
					for _, g := range got {
						assert.Equal(t, uint32(0), g)
					}
					return
				}
				assert.Equal(t, unp, got)
			})
		}
	}
}

func TestPackInvalidWidth(t *testing.T) {
	unp := make([]uint32, DefaultBlockSize)
	out := make([]byte, 4*DefaultBlockSize)
	err := Pack(33, DefaultBlockSize, 0, unp, out)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestPackBufferTooShort(t *testing.T) {
	unp := make([]uint32, DefaultBlockSize)
	out := make([]byte, 1)
	err := Pack(8, DefaultBlockSize, 0, unp, out)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestUnpackBufferTooShort(t *testing.T) {
	pck := make([]byte, 1)
	unp := make([]uint32, DefaultBlockSize)
	err := Unpack(8, DefaultBlockSize, 0, pck, unp)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestUnpackDestinationTooShort(t *testing.T) {
	pck := make([]byte, 32*DefaultBlockSize)
	unp := make([]uint32, DefaultBlockSize-1)
	err := Unpack(8, DefaultBlockSize, 0, pck, unp)
	assert.Error(t, err)
}
