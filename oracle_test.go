package simd256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteLenEdges(t *testing.T) {
	n, err := ByteLen(0, DefaultBlockSize)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = ByteLen(32, DefaultBlockSize)
	assert.NoError(t, err)
	assert.Equal(t, 4*DefaultBlockSize, n)
}

func TestByteLenInvalidWidth(t *testing.T) {
	_, err := ByteLen(33, DefaultBlockSize)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestByteLenTableCoversSupportedSizes(t *testing.T) {
	for _, B := range SupportedBlockSizes {
		for w := uint8(0); w <= 32; w++ {
			_, err := ByteLen(w, B)
			assert.NoError(t, err)
		}
	}
}

func TestByteLenMonotonicInWidth(t *testing.T) {
	var prev int
	for w := uint8(1); w <= 31; w++ {
		n, err := ByteLen(w, DefaultBlockSize)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestByteLenUnsupportedBlockSizeFallsBackToSchedule(t *testing.T) {
	n, err := ByteLen(4, 24)
	assert.NoError(t, err)
	assert.Greater(t, n, 0)

	_, err = ByteLen(4, 17)
	assert.Error(t, err)
}
