package simd256

import (
	"fmt"

	"github.com/blockpack/simd256/internal/schedule"
)

// byteLenTable precomputes ByteLen for every (B, w) pair among
// SupportedBlockSizes so the oracle is a table lookup rather than a
// schedule walk on the hot path (§4.3: "evaluated before every
// pack/unpack").
var byteLenTable = map[int][33]int{}

func init() {
	for _, B := range SupportedBlockSizes {
		var t [33]int
		t[32] = 4 * B
		for w := 1; w < 32; w++ {
			n, err := schedule.ByteLen(w, B)
			if err != nil {
				panic(fmt.Sprintf("simd256: building byte-length table for B=%d, w=%d: %v", B, w, err))
			}
			t[w] = n
		}
		byteLenTable[B] = t
	}
}

// ByteLen returns the exact number of bytes Pack writes and Unpack reads
// for (w, B): 0 for w == 0, 4*B for w == 32, and 32*ceil(w*B/256) for
// w in [1, 31].
func ByteLen(w uint8, B int) (int, error) {
	if w > 32 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWidth, w)
	}
	if t, ok := byteLenTable[B]; ok {
		return t[w], nil
	}
	if err := schedule.ValidateBlockSize(B); err != nil {
		return 0, err
	}
	switch {
	case w == 0:
		return 0, nil
	case w == 32:
		return 4 * B, nil
	default:
		return schedule.ByteLen(int(w), B)
	}
}
