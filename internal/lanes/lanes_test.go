package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockpack/simd256/internal/schedule"
)

const testBlockSize = 256

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

func TestPackUnpackRoundTripAllWidths(t *testing.T) {
	for w := 0; w <= 32; w++ {
		w := uint8(w)
		t.Run("", func(t *testing.T) {
			unp := sequentialBlock(testBlockSize, w)

			var need int
			var err error
			switch w {
			case 0:
				need = 0
			case 32:
				need = 4 * testBlockSize
			default:
				need, err = schedule.ByteLen(int(w), testBlockSize)
				require.NoError(t, err)
			}
			out := make([]byte, need)

			err = Pack(w, testBlockSize, 0, unp, out)
			require.NoError(t, err)

			got := make([]uint32, testBlockSize)
			err = Unpack(w, testBlockSize, 0, out, got)
			require.NoError(t, err)

			if w == 0 {
				for _, v := range got {
					assert.Equal(t, uint32(0), v)
				}
				return
			}
			assert.Equal(t, unp, got)
		})
	}
}

func TestPackUnpackWithNonZeroReference(t *testing.T) {
	const r = uint32(1000)
	unp := make([]uint32, testBlockSize)
	v := r
	for i := range unp {
		unp[i] = v
		v += 3
	}

	w := uint8(5) // row deltas are 8*3 = 24 (first row vs r: up to 21), which fit in 5 bits
	need, err := schedule.ByteLen(int(w), testBlockSize)
	require.NoError(t, err)
	out := make([]byte, need)

	require.NoError(t, Pack(w, testBlockSize, r, unp, out))

	got := make([]uint32, testBlockSize)
	require.NoError(t, Unpack(w, testBlockSize, r, out, got))
	assert.Equal(t, unp, got)
}

func TestPackRejectsShortOutput(t *testing.T) {
	unp := make([]uint32, testBlockSize)
	out := make([]byte, 4)
	err := Pack(10, testBlockSize, 0, unp, out)
	assert.Error(t, err)
}

func TestUnpackRejectsShortInput(t *testing.T) {
	pck := make([]byte, 4)
	unp := make([]uint32, testBlockSize)
	err := Unpack(10, testBlockSize, 0, pck, unp)
	assert.Error(t, err)
}

func TestPackWidth32IgnoresReference(t *testing.T) {
	unp := make([]uint32, testBlockSize)
	for i := range unp {
		unp[i] = uint32(i * 7)
	}
	out1 := make([]byte, 4*testBlockSize)
	out2 := make([]byte, 4*testBlockSize)

	require.NoError(t, Pack(32, testBlockSize, 0, unp, out1))
	require.NoError(t, Pack(32, testBlockSize, 12345, unp, out2))
	assert.Equal(t, out1, out2)
}

func TestPackWidthZeroWritesNothing(t *testing.T) {
	unp := make([]uint32, testBlockSize)
	out := make([]byte, 0)
	assert.NoError(t, Pack(0, testBlockSize, 42, unp, out))
}
