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

// This file generates one straight-line AVX2 kernel per bit width for the
// canonical 256-element block. Each kernel is the literal unrolling of
// schedule.Generate(w, packBlockSize): because the schedule is known at
// generate time, every shift length is a compile-time immediate and there
// is no data-dependent branch anywhere in the body — the loop in this file
// runs at generate time, not at runtime.
//
// This is the same shape as the teacher's bit-packing core minus the
// header/exception machinery: a running 256-bit accumulator, OR'd and
// shifted in per schedule step, spilled to memory whenever a lane fills.

const packBlockSize = 256

func genPackKernel(w int) {
	steps, err := schedule.Generate(w, packBlockSize)
	if err != nil {
		panic(err)
	}

	TEXT(fmt.Sprintf("pack256_%d", w), NOSPLIT, "func(r uint32, unp *uint32, out *byte)")
	Doc(fmt.Sprintf("pack256_%d packs 256 delta-chained lanes at bit width %d into %d bytes.", w, w, 32*storeCount(steps)))

	rParam := Load(Param("r"), GP32())
	unpBaseParam := Load(Param("unp"), GP64())
	outBaseParam := Load(Param("out"), GP64())
	unpBase := unpBaseParam.(reg.GPVirtual)
	outBase := outBaseParam.(reg.GPVirtual)

	rXMM := XMM()
	MOVD(rParam, rXMM)
	rBroadcast := YMM()
	VPBROADCASTD(rXMM, rBroadcast)

	var prv, cur, acc, delta reg.VecVirtual
	for _, st := range steps {
		switch {
		case st.Kind == schedule.KindFst:
			prv = rBroadcast
			cur = YMM()
			VMOVDQU(operand.Mem{Base: unpBase, Disp: st.UnpOff * 32}, cur)
			next := YMM()
			VPSUBD(prv, cur, next)
			acc = next
			prv = cur
		case st.ShfDir == schedule.DirZero:
			cur = YMM()
			VMOVDQU(operand.Mem{Base: unpBase, Disp: st.UnpOff * 32}, cur)
			next := YMM()
			VPSUBD(prv, cur, next)
			acc = next
			prv = cur
		case st.ShfDir == schedule.DirForward:
			cur = YMM()
			VMOVDQU(operand.Mem{Base: unpBase, Disp: st.UnpOff * 32}, cur)
			d := YMM()
			VPSUBD(prv, cur, d)
			shifted := YMM()
			VPSLLD(operand.Imm(uint64(st.ShfLen)), d, shifted)
			next := YMM()
			VPOR(acc, shifted, next)
			acc = next
			prv = cur
		case st.ShfDir == schedule.DirForwardPartial:
			cur = YMM()
			VMOVDQU(operand.Mem{Base: unpBase, Disp: st.UnpOff * 32}, cur)
			delta = YMM()
			VPSUBD(prv, cur, delta)
			shifted := YMM()
			VPSLLD(operand.Imm(uint64(st.ShfLen)), delta, shifted)
			next := YMM()
			VPOR(acc, shifted, next)
			acc = next
			prv = cur
		case st.ShfDir == schedule.DirBack:
			next := YMM()
			VPSRLD(operand.Imm(uint64(st.ShfLen)), delta, next)
			acc = next
		}
		if st.Stores {
			VMOVDQU(acc, operand.Mem{Base: outBase, Disp: st.PckOff * 32})
		}
	}
	VZEROUPPER()
	RET()
}

func storeCount(steps []schedule.Step) int {
	n := 0
	for _, s := range steps {
		if s.Stores {
			n++
		}
	}
	return n
}
