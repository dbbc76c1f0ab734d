//go:build amd64 && !noasm

//go:generate go run -tags avogen ./internal/avo

package simd256

import (
	"golang.org/x/sys/cpu"

	"github.com/blockpack/simd256/internal/lanes"
)

// Generated AVX2 kernels for the canonical 256-element block, one straight-
// line function per bit width, emitted by internal/avo from
// schedule.Generate(w, 256) (go:generate ./internal/avo; see
// internal/avo/pack.go). Only B == 256 has a generated kernel; 128 and 512
// still run the portable internal/lanes path even on amd64 (DESIGN.md).
//
//go:noescape
func pack256_1(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_2(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_3(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_4(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_5(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_6(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_7(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_8(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_9(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_10(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_11(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_12(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_13(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_14(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_15(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_16(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_17(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_18(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_19(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_20(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_21(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_22(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_23(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_24(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_25(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_26(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_27(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_28(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_29(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_30(r uint32, unp *uint32, out *byte)

//go:noescape
func pack256_31(r uint32, unp *uint32, out *byte)

//go:noescape
func unpack256_1(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_2(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_3(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_4(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_5(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_6(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_7(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_8(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_9(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_10(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_11(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_12(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_13(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_14(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_15(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_16(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_17(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_18(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_19(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_20(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_21(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_22(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_23(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_24(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_25(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_26(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_27(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_28(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_29(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_30(r uint32, pck *byte, unp *uint32)

//go:noescape
func unpack256_31(r uint32, pck *byte, unp *uint32)

func init() {
	if cpu.X86.HasAVX2 {
		packFn = packDispatch
		unpackFn = unpackDispatch
		simdAvailable = true
	}
}

// packDispatch routes to a generated AVX2 kernel when one exists for this
// (w, B) pair, falling back to the portable kernel otherwise. Using a
// switch rather than a function-pointer table lets the compiler prove the
// generated kernels' implicit stack temporaries don't escape.
func packDispatch(w uint8, B int, r uint32, unp []uint32, out []byte) error {
	if B != DefaultBlockSize || w == 0 || w == 32 {
		return lanes.Pack(w, B, r, unp, out)
	}
	unpPtr := &unp[0]
	outPtr := &out[0]
	switch w {
	case 1:
		pack256_1(r, unpPtr, outPtr)
	case 2:
		pack256_2(r, unpPtr, outPtr)
	case 3:
		pack256_3(r, unpPtr, outPtr)
	case 4:
		pack256_4(r, unpPtr, outPtr)
	case 5:
		pack256_5(r, unpPtr, outPtr)
	case 6:
		pack256_6(r, unpPtr, outPtr)
	case 7:
		pack256_7(r, unpPtr, outPtr)
	case 8:
		pack256_8(r, unpPtr, outPtr)
	case 9:
		pack256_9(r, unpPtr, outPtr)
	case 10:
		pack256_10(r, unpPtr, outPtr)
	case 11:
		pack256_11(r, unpPtr, outPtr)
	case 12:
		pack256_12(r, unpPtr, outPtr)
	case 13:
		pack256_13(r, unpPtr, outPtr)
	case 14:
		pack256_14(r, unpPtr, outPtr)
	case 15:
		pack256_15(r, unpPtr, outPtr)
	case 16:
		pack256_16(r, unpPtr, outPtr)
	case 17:
		pack256_17(r, unpPtr, outPtr)
	case 18:
		pack256_18(r, unpPtr, outPtr)
	case 19:
		pack256_19(r, unpPtr, outPtr)
	case 20:
		pack256_20(r, unpPtr, outPtr)
	case 21:
		pack256_21(r, unpPtr, outPtr)
	case 22:
		pack256_22(r, unpPtr, outPtr)
	case 23:
		pack256_23(r, unpPtr, outPtr)
	case 24:
		pack256_24(r, unpPtr, outPtr)
	case 25:
		pack256_25(r, unpPtr, outPtr)
	case 26:
		pack256_26(r, unpPtr, outPtr)
	case 27:
		pack256_27(r, unpPtr, outPtr)
	case 28:
		pack256_28(r, unpPtr, outPtr)
	case 29:
		pack256_29(r, unpPtr, outPtr)
	case 30:
		pack256_30(r, unpPtr, outPtr)
	case 31:
		pack256_31(r, unpPtr, outPtr)
	default:
		return lanes.Pack(w, B, r, unp, out)
	}
	return nil
}

func unpackDispatch(w uint8, B int, r uint32, pck []byte, unp []uint32) error {
	if B != DefaultBlockSize || w == 0 || w == 32 {
		return lanes.Unpack(w, B, r, pck, unp)
	}
	pckPtr := &pck[0]
	unpPtr := &unp[0]
	switch w {
	case 1:
		unpack256_1(r, pckPtr, unpPtr)
	case 2:
		unpack256_2(r, pckPtr, unpPtr)
	case 3:
		unpack256_3(r, pckPtr, unpPtr)
	case 4:
		unpack256_4(r, pckPtr, unpPtr)
	case 5:
		unpack256_5(r, pckPtr, unpPtr)
	case 6:
		unpack256_6(r, pckPtr, unpPtr)
	case 7:
		unpack256_7(r, pckPtr, unpPtr)
	case 8:
		unpack256_8(r, pckPtr, unpPtr)
	case 9:
		unpack256_9(r, pckPtr, unpPtr)
	case 10:
		unpack256_10(r, pckPtr, unpPtr)
	case 11:
		unpack256_11(r, pckPtr, unpPtr)
	case 12:
		unpack256_12(r, pckPtr, unpPtr)
	case 13:
		unpack256_13(r, pckPtr, unpPtr)
	case 14:
		unpack256_14(r, pckPtr, unpPtr)
	case 15:
		unpack256_15(r, pckPtr, unpPtr)
	case 16:
		unpack256_16(r, pckPtr, unpPtr)
	case 17:
		unpack256_17(r, pckPtr, unpPtr)
	case 18:
		unpack256_18(r, pckPtr, unpPtr)
	case 19:
		unpack256_19(r, pckPtr, unpPtr)
	case 20:
		unpack256_20(r, pckPtr, unpPtr)
	case 21:
		unpack256_21(r, pckPtr, unpPtr)
	case 22:
		unpack256_22(r, pckPtr, unpPtr)
	case 23:
		unpack256_23(r, pckPtr, unpPtr)
	case 24:
		unpack256_24(r, pckPtr, unpPtr)
	case 25:
		unpack256_25(r, pckPtr, unpPtr)
	case 26:
		unpack256_26(r, pckPtr, unpPtr)
	case 27:
		unpack256_27(r, pckPtr, unpPtr)
	case 28:
		unpack256_28(r, pckPtr, unpPtr)
	case 29:
		unpack256_29(r, pckPtr, unpPtr)
	case 30:
		unpack256_30(r, pckPtr, unpPtr)
	case 31:
		unpack256_31(r, pckPtr, unpPtr)
	default:
		return lanes.Unpack(w, B, r, pck, unp)
	}
	return nil
}
