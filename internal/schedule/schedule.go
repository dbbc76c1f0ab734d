// Package schedule generates the micro-op sequence that drives SIMD
// delta-pack and delta-unpack for a given (bit width, block size) pair.
//
// The generator is the single source of truth for pack, unpack, and the
// byte-length oracle: all three are views of the same schedule, so deriving
// them from one generator is what keeps them from drifting apart.
// internal/avo consults it at code-generation time and simd256 once per
// (w, B) pair when it builds its byte-length table at init. The portable
// kernels in internal/lanes call Generate on every Pack and Unpack call, so
// on that path the schedule is rebuilt (and allocated) once per block.
package schedule

import "fmt"

// Bits per SIMD lane (== bits per packed element) and lanes per 256-bit
// vector. The schedule is derived for an 8-lane, 32-bit-per-lane target;
// a different lane width requires regenerating the schedule.
const (
	LaneBits  = 32
	LaneCount = 8

	// MinBlockSize and block-size granularity the generator accepts.
	MinBlockSize = 16
)

// Dir identifies which shift, if any, a step applies when assembling or
// disassembling the current output/input lane.
type Dir int

const (
	// DirZero marks a step that starts a fresh element into a fresh lane
	// position with no shift: either the very first step, or the step
	// immediately following a lane that filled on an exact element boundary.
	DirZero Dir = iota
	// DirBack finishes a straddled element: it writes the leftover high
	// bits of the previous element into lane position 0 of a new vector.
	DirBack
	// DirForward places an entire element's bits into the current lane at
	// a nonzero offset; the element fits without straddling.
	DirForward
	// DirForwardPartial begins a straddle: only the low bits of the
	// element fit in the current lane; the remainder is picked up by the
	// following DirBack step.
	DirForwardPartial
)

func (d Dir) String() string {
	switch d {
	case DirZero:
		return "Zero"
	case DirBack:
		return "Back"
	case DirForward:
		return "Forward"
	case DirForwardPartial:
		return "ForwardPartial"
	default:
		return "Dir(?)"
	}
}

// Kind classifies a step's position in the schedule.
type Kind int

const (
	KindFst Kind = iota
	KindMdl
	KindLst
)

// Step is one emitted micro-op. Each step advances every one of the 8 SIMD
// lanes in parallel, so the per-lane bit accounting here implicitly tracks
// LaneCount times as much progress across the whole block.
type Step struct {
	Kind Kind
	// ShfDir/ShfLen describe the shift applied to the running delta before
	// it is folded into the output (pack) or extracted from the input
	// (unpack). ShfLen is 0 when ShfDir == DirZero.
	ShfDir Dir
	ShfLen int
	// LneBitLen is the number of bits this step contributes to the lane.
	// LneBitSum is the cumulative bits written to the current output lane
	// after this step. BlkBitSum is the cumulative bits written across the
	// whole block after this step (always LneBitSum-equivalent * LaneCount
	// relative to the running total, not just the current lane's share).
	LneBitLen int
	LneBitSum int
	BlkBitSum int
	// NeedsLoad is true when this step consumes a fresh input vector
	// (pack: the next unpacked vector; unpack: implicitly, see Stores).
	// UnpOff is the 0-based index of that vector, valid iff NeedsLoad.
	NeedsLoad bool
	UnpOff    int
	// Stores is true when this step's lane is full (LneBitSum == LaneBits)
	// or it is the final step (which always writes its vector, full or
	// not). PckOff is the 0-based output vector index, valid iff Stores.
	Stores bool
	PckOff int
	// UnpStoreOff is the 0-based index of the unpacked output vector this
	// step writes to during Unpack. It is NOT the same sequence as UnpOff:
	// UnpOff is the load order for Pack (every step but DirBack loads a
	// fresh unp vector), while UnpStoreOff is the store order for Unpack
	// (every step but DirForwardPartial writes one). A straddling element
	// is split across a DirForwardPartial step, which only extracts the
	// low bits and stores nothing, and the DirBack step that follows it,
	// which combines those low bits with the high bits and performs the
	// single store for that element — so DirBack must reuse the row index,
	// not get a fresh one. UnpStoreOff is valid whenever ShfDir is not
	// DirForwardPartial.
	UnpStoreOff int
}

// Generate produces the ordered schedule for packing/unpacking B elements
// of w bits each. w must be in [1, 31] (0 and 32 are handled outside the
// schedule, as raw special cases) and B must be a multiple of LaneCount with
// B >= MinBlockSize.
func Generate(w int, B int) ([]Step, error) {
	if w < 1 || w > 31 {
		return nil, fmt.Errorf("schedule: bit width %d out of range [1, 31]", w)
	}
	if err := ValidateBlockSize(B); err != nil {
		return nil, err
	}

	lim := LaneBits - w + 1
	totalBits := w * B

	var steps []Step
	var prv Step
	unpOff, pckOff, unpStoreOff := 0, 0, 0

	for prv.BlkBitSum != totalBits {
		var cur Step
		switch {
		case prv.BlkBitSum == 0:
			// Fst: the first element always lands at lane offset 0 of the
			// first output vector.
			cur = Step{
				ShfDir:    DirZero,
				LneBitLen: w,
				LneBitSum: w,
				BlkBitSum: w * LaneCount,
			}
		case prv.LneBitSum < lim:
			// The next w bits fit entirely within the current lane.
			cur = Step{
				ShfDir:    DirForward,
				ShfLen:    prv.LneBitSum,
				LneBitLen: w,
				LneBitSum: prv.LneBitSum + w,
				BlkBitSum: prv.BlkBitSum + w*LaneCount,
			}
		case prv.LneBitSum < LaneBits:
			// Only the remaining high bits of the lane fit; a straddle
			// begins. The following step consumes the remainder.
			lneBitLen := LaneBits - prv.LneBitSum
			cur = Step{
				ShfDir:    DirForwardPartial,
				ShfLen:    prv.LneBitSum,
				LneBitLen: lneBitLen,
				LneBitSum: LaneBits,
				BlkBitSum: prv.BlkBitSum + lneBitLen*LaneCount,
			}
		case prv.LneBitLen == w:
			// The lane just filled on an exact element boundary: start a
			// fresh element in a fresh output vector.
			cur = Step{
				ShfDir:    DirZero,
				LneBitLen: w,
				LneBitSum: w,
				BlkBitSum: prv.BlkBitSum + w*LaneCount,
			}
		default:
			// The lane just filled mid-element: finish the straddle by
			// writing the leftover high bits to lane position 0 of the
			// new output vector.
			lneBitLen := w - prv.LneBitLen
			cur = Step{
				ShfDir:    DirBack,
				ShfLen:    prv.LneBitLen,
				LneBitLen: lneBitLen,
				LneBitSum: lneBitLen,
				BlkBitSum: prv.BlkBitSum + lneBitLen*LaneCount,
			}
		}

		switch {
		case prv.BlkBitSum == 0:
			cur.Kind = KindFst
		case cur.BlkBitSum != totalBits:
			cur.Kind = KindMdl
		default:
			cur.Kind = KindLst
		}

		if cur.ShfDir != DirBack {
			cur.NeedsLoad = true
			cur.UnpOff = unpOff
			unpOff++
		}
		if cur.LneBitSum == LaneBits || cur.Kind == KindLst {
			cur.Stores = true
			cur.PckOff = pckOff
			pckOff++
		}
		if cur.ShfDir != DirForwardPartial {
			cur.UnpStoreOff = unpStoreOff
			unpStoreOff++
		}

		steps = append(steps, cur)
		prv = cur
	}

	return steps, nil
}

// ValidateBlockSize reports whether B is an acceptable block element count:
// a multiple of LaneCount, and at least MinBlockSize. Generation parameters
// are build-time choices, so this fails loudly rather than clamping.
func ValidateBlockSize(B int) error {
	if B < MinBlockSize {
		return fmt.Errorf("schedule: block size %d below minimum %d", B, MinBlockSize)
	}
	if B%LaneCount != 0 {
		return fmt.Errorf("schedule: block size %d is not a multiple of %d", B, LaneCount)
	}
	return nil
}

// ByteLen returns the number of packed bytes the schedule for (w, B)
// produces: 32 bytes for every step whose Stores flag is set. This is the
// same quantity internal/lanes and internal/avo agree on; oracle.go exposes
// it publicly as ByteLen for w in the full [0, 32] range.
func ByteLen(w int, B int) (int, error) {
	steps, err := Generate(w, B)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range steps {
		if s.Stores {
			n += 32
		}
	}
	return n, nil
}
