// Package testdata generates sorted uint32 blocks with a known bit width,
// for exercising pack/unpack round trips and the byte-length oracle without
// needing real-world input data.
package testdata

import (
	"fmt"
	"math/rand/v2"

	"github.com/blockpack/simd256/internal/schedule"
)

// GenBlock returns a blkLen-element sorted block whose inter-row lane delta
// (the same quantity simd256.BitLen measures) is bounded by bitLen bits,
// with at least one lane difference that actually reaches bitLen. The first
// lane-row is all zero; the second is the maximum delta for bitLen, which
// guarantees the target width is hit even for small blocks. seed makes the
// output reproducible across runs.
func GenBlock(blkLen int, bitLen uint8, seed uint64) ([]uint32, error) {
	if blkLen < schedule.MinBlockSize {
		return nil, fmt.Errorf("testdata: blkLen %d below minimum %d", blkLen, schedule.MinBlockSize)
	}
	if blkLen%schedule.LaneCount != 0 {
		return nil, fmt.Errorf("testdata: blkLen %d not a multiple of lane count %d", blkLen, schedule.LaneCount)
	}
	if bitLen > 32 {
		return nil, fmt.Errorf("testdata: bitLen %d exceeds 32", bitLen)
	}

	blk := make([]uint32, blkLen)
	if bitLen == 0 {
		return blk, nil
	}

	var dltMax uint32
	if bitLen < 32 {
		dltMax = (1 << bitLen) - 1
	} else {
		dltMax = 0xFFFFFFFF
	}

	lanes := schedule.LaneCount
	for i := lanes; i < 2*lanes; i++ {
		blk[i] = dltMax
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	rows := blkLen / lanes
	for row := 2; row < rows; row++ {
		rnds := make([]uint32, lanes)
		for i := range rnds {
			rnds[i] = uint32(rng.Uint64N(uint64(dltMax) + 1))
		}
		sortUint32(rnds)

		for lane := 0; lane < lanes; lane++ {
			prvRowIdx := (row-1)*lanes + lane
			curIdx := row*lanes + lane

			blk[curIdx] = satAdd(blk[curIdx-1], rnds[lane])

			dlt := blk[curIdx] - blk[prvRowIdx]
			if dlt > dltMax {
				blk[curIdx] = blk[prvRowIdx] + dltMax
			}
		}
	}
	return blk, nil
}

func satAdd(a, b uint32) uint32 {
	s := a + b
	if s < a {
		return 0xFFFFFFFF
	}
	return s
}

func sortUint32(s []uint32) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
