// Package simd256 implements a SIMD-oriented delta + bit-packing codec for
// blocks of monotonically non-decreasing uint32 values, plus the VARINT
// codec (internal/varint) used for the small auxiliary integers (block
// headers, widths, reference values) that a surrounding format layers on
// top of a packed block.
//
// The core is a deterministic schedule (internal/schedule) that, for a
// given bit width w and block element count B, enumerates the exact
// sequence of SIMD shift/load/store micro-ops needed to pack B lane-
// interleaved deltas into the minimum number of 256-bit vectors. Pack,
// Unpack, and the byte-length oracle are three views of that one schedule.
//
// On amd64 with AVX2 available, Pack/Unpack dispatch to straight-line
// kernels generated ahead of time by internal/avo (one per width in
// [1, 31], for B == 256 only); for other block sizes, for w == 0 and
// w == 32, elsewhere, or with the "noasm" build tag, they run the portable
// reference kernel in internal/lanes, which walks the same schedule with
// plain Go arithmetic. The round-trip tests run through whichever path is
// selected; no test compares the two paths' packed bytes.
//
// The package performs no I/O and holds no mutable state once
// initialized. The portable path allocates a fresh schedule on every Pack
// and Unpack call. Pack and Unpack are pure functions of their arguments
// and safe to call concurrently from multiple goroutines as long as each
// call's buffers are not shared with another in-flight call.
package simd256

import (
	"errors"
	"fmt"

	"github.com/blockpack/simd256/internal/lanes"
	"github.com/blockpack/simd256/internal/schedule"
)

// Fixed by the target SIMD shape: 256-bit vectors, 8 lanes of 32 bits each.
const (
	LaneBits  = schedule.LaneBits
	LaneCount = schedule.LaneCount

	// DefaultBlockSize is the block size the surrounding system (§6) uses.
	DefaultBlockSize = 256
)

// SupportedBlockSizes lists the block element counts this build was
// generated for. Additional sizes work through the portable fallback as
// long as they satisfy ValidateBlockSize, but only these have a
// precomputed byte-length table. Of these, only DefaultBlockSize has
// generated AVX2 kernels (on amd64); 128 and 512 always run the portable
// kernel.
var SupportedBlockSizes = []int{128, 256, 512}

var (
	// ErrInvalidWidth is returned when a bit width outside [0, 32] is
	// passed to Pack, Unpack, or ByteLen.
	ErrInvalidWidth = errors.New("simd256: bit width out of range [0, 32]")
	// ErrBufferTooShort is returned when a caller-supplied packed buffer
	// (Pack's out, Unpack's pck) is shorter than ByteLen(w, B) requires.
	ErrBufferTooShort = errors.New("simd256: destination buffer too short")
)

// packFn/unpackFn are swapped to an AVX2-backed implementation by
// simd_amd64.go's init() when the running CPU supports it; see
// simd_fallback.go for the non-amd64 build.
var (
	packFn        = lanes.Pack
	unpackFn      = lanes.Unpack
	simdAvailable bool
)

// SIMDAvailable reports whether Pack/Unpack are running the AVX2-generated
// kernels rather than the portable internal/lanes fallback.
func SIMDAvailable() bool { return simdAvailable }

func validateWidth(w uint8) error {
	if w > 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, w)
	}
	return nil
}

// Pack encodes B values from unp into out, delta-chained from the
// reference value r, at bit width w (§4.2). out must have length at least
// ByteLen(w, B). w == 0 writes nothing; w == 32 performs a raw byte copy
// and ignores r (§3, §9 — a documented asymmetry preserved for bit-for-bit
// compatibility with the source this codec was derived from).
func Pack(w uint8, B int, r uint32, unp []uint32, out []byte) error {
	if err := validateWidth(w); err != nil {
		return err
	}
	need, err := ByteLen(w, B)
	if err != nil {
		return err
	}
	if len(out) < need {
		return fmt.Errorf("%w: need %d, have %d", ErrBufferTooShort, need, len(out))
	}
	return packFn(w, B, r, unp, out)
}

// Unpack decodes B values from pck into unp, reversing Pack with the same
// w, B, and reference r. w == 0 zero-fills unp, ignoring r (§9's first open
// question: this matches observable source behavior rather than
// broadcasting r, which would also be principled but is not what is
// implemented here).
func Unpack(w uint8, B int, r uint32, pck []byte, unp []uint32) error {
	if err := validateWidth(w); err != nil {
		return err
	}
	need, err := ByteLen(w, B)
	if err != nil {
		return err
	}
	if len(pck) < need {
		return fmt.Errorf("%w: need %d, have %d", ErrBufferTooShort, need, len(pck))
	}
	if len(unp) < B {
		return fmt.Errorf("simd256: unp too short: need %d, have %d", B, len(unp))
	}
	return unpackFn(w, B, r, pck, unp)
}
