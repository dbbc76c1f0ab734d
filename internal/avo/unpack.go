//go:build avogen
// +build avogen

package main

import (
	"fmt"

	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"

	"github.com/blockpack/simd256/internal/schedule"
)

// genUnpackKernel is the mirror of genPackKernel: it walks the same
// schedule, masking and shifting the running input vector back out into
// lane deltas and re-accumulating against the reference chain.
func genUnpackKernel(w int) {
	steps, err := schedule.Generate(w, packBlockSize)
	if err != nil {
		panic(err)
	}

	TEXT(fmt.Sprintf("unpack256_%d", w), NOSPLIT, "func(r uint32, pck *byte, unp *uint32)")
	Doc(fmt.Sprintf("unpack256_%d unpacks 256 lanes packed at bit width %d.", w, w))

	rParam := Load(Param("r"), GP32())
	pckBaseParam := Load(Param("pck"), GP64())
	unpBaseParam := Load(Param("unp"), GP64())
	pckBase := pckBaseParam.(reg.GPVirtual)
	unpBase := unpBaseParam.(reg.GPVirtual)

	rXMM := XMM()
	MOVD(rParam, rXMM)
	prv := YMM()
	VPBROADCASTD(rXMM, prv)

	maskXMM := GP32()
	MOVL(operand.Imm((uint64(1)<<uint(w))-1), maskXMM)
	maskScalar := XMM()
	MOVD(maskXMM, maskScalar)
	mask := YMM()
	VPBROADCASTD(maskScalar, mask)

	acc := YMM()
	VMOVDQU(operand.Mem{Base: pckBase, Disp: 0}, acc)

	var deltaLow reg.VecVirtual
	for _, st := range steps {
		switch {
		case st.Kind == schedule.KindFst:
			masked := YMM()
			VPAND(mask, acc, masked)
			cur := YMM()
			VPADDD(prv, masked, cur)
			VMOVDQU(cur, operand.Mem{Base: unpBase, Disp: st.UnpStoreOff * 32})
			prv = cur
		case st.ShfDir == schedule.DirZero:
			masked := YMM()
			VPAND(mask, acc, masked)
			cur := YMM()
			VPADDD(prv, masked, cur)
			VMOVDQU(cur, operand.Mem{Base: unpBase, Disp: st.UnpStoreOff * 32})
			prv = cur
		case st.ShfDir == schedule.DirForward:
			shifted := YMM()
			VPSRLD(operand.Imm(uint64(st.ShfLen)), acc, shifted)
			masked := YMM()
			VPAND(mask, shifted, masked)
			cur := YMM()
			VPADDD(prv, masked, cur)
			VMOVDQU(cur, operand.Mem{Base: unpBase, Disp: st.UnpStoreOff * 32})
			prv = cur
		case st.ShfDir == schedule.DirForwardPartial:
			shifted := YMM()
			VPSRLD(operand.Imm(uint64(st.ShfLen)), acc, shifted)
			low := YMM()
			VPAND(mask, shifted, low)
			deltaLow = low
		case st.ShfDir == schedule.DirBack:
			shifted := YMM()
			VPSLLD(operand.Imm(uint64(st.ShfLen)), acc, shifted)
			high := YMM()
			VPAND(mask, shifted, high)
			combined := YMM()
			VPOR(deltaLow, high, combined)
			cur := YMM()
			VPADDD(prv, combined, cur)
			VMOVDQU(cur, operand.Mem{Base: unpBase, Disp: st.UnpStoreOff * 32})
			prv = cur
		}
		if st.Stores && st.Kind != schedule.KindLst {
			next := YMM()
			VMOVDQU(operand.Mem{Base: pckBase, Disp: (st.PckOff + 1) * 32}, next)
			acc = next
		}
	}
	VZEROUPPER()
	RET()
}
