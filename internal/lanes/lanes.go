// Package lanes is the portable (no-asm) pack/unpack kernel. It runs the
// schedule from internal/schedule directly against plain Go arithmetic on
// 8-wide uint32 "vectors", rather than against a compiled-in straight-line
// body; Pack and Unpack call schedule.Generate on every call. It is always
// available (no build tag) and is what simd256 falls back to on non-amd64
// targets or when noasm is set. No test compares its output with the
// generated AVX2 kernels.
package lanes

import (
	"encoding/binary"
	"fmt"

	"github.com/blockpack/simd256/internal/schedule"
)

const (
	laneBits  = schedule.LaneBits
	laneCount = schedule.LaneCount
	vecBytes  = laneCount * 4
)

type vec [laneCount]uint32

func loadUnp(unp []uint32, vecIdx int) vec {
	var v vec
	copy(v[:], unp[vecIdx*laneCount:vecIdx*laneCount+laneCount])
	return v
}

func storeUnp(unp []uint32, vecIdx int, v vec) {
	copy(unp[vecIdx*laneCount:vecIdx*laneCount+laneCount], v[:])
}

func loadPck(pck []byte, vecIdx int) vec {
	var v vec
	base := vecIdx * vecBytes
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(pck[base+i*4:])
	}
	return v
}

func storePck(pck []byte, vecIdx int, v vec) {
	base := vecIdx * vecBytes
	for i := range v {
		binary.LittleEndian.PutUint32(pck[base+i*4:], v[i])
	}
}

func broadcast(r uint32) vec {
	var v vec
	for i := range v {
		v[i] = r
	}
	return v
}

func sub(a, b vec) vec {
	var c vec
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return c
}

func add(a, b vec) vec {
	var c vec
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return c
}

func or(a, b vec) vec {
	var c vec
	for i := range c {
		c[i] = a[i] | b[i]
	}
	return c
}

func and(a, b vec) vec {
	var c vec
	for i := range c {
		c[i] = a[i] & b[i]
	}
	return c
}

func shl(a vec, s int) vec {
	if s == 0 {
		return a
	}
	var c vec
	for i := range c {
		c[i] = a[i] << uint(s)
	}
	return c
}

func shr(a vec, s int) vec {
	if s == 0 {
		return a
	}
	var c vec
	for i := range c {
		c[i] = a[i] >> uint(s)
	}
	return c
}

// Pack implements the full uXxB_pck contract (spec §4.2) for w in [0, 32]:
// w == 0 writes nothing, w == 32 is a raw little-endian byte copy, and
// w in [1, 31] drives schedule.Generate(w, B) against r and unp.
func Pack(w uint8, B int, r uint32, unp []uint32, out []byte) error {
	if w > 32 {
		return fmt.Errorf("lanes: bit width %d out of range [0, 32]", w)
	}
	if err := schedule.ValidateBlockSize(B); err != nil {
		return err
	}
	if len(unp) < B {
		return fmt.Errorf("lanes: unp too short: need %d, got %d", B, len(unp))
	}

	if w == 0 {
		return nil
	}
	if w == 32 {
		need := 4 * B
		if len(out) < need {
			return fmt.Errorf("lanes: out too short: need %d, got %d", need, len(out))
		}
		for i := 0; i < B; i++ {
			binary.LittleEndian.PutUint32(out[i*4:], unp[i])
		}
		return nil
	}

	steps, err := schedule.Generate(int(w), B)
	if err != nil {
		return err
	}
	need := 32 * numStores(steps)
	if len(out) < need {
		return fmt.Errorf("lanes: out too short: need %d, got %d", need, len(out))
	}

	var prv, cur, acc, delta vec
	for _, st := range steps {
		switch {
		case st.Kind == schedule.KindFst:
			prv = broadcast(r)
			cur = loadUnp(unp, st.UnpOff)
			acc = sub(cur, prv)
			prv = cur
		case st.ShfDir == schedule.DirZero:
			cur = loadUnp(unp, st.UnpOff)
			acc = sub(cur, prv)
			prv = cur
		case st.ShfDir == schedule.DirForward:
			cur = loadUnp(unp, st.UnpOff)
			acc = or(acc, shl(sub(cur, prv), st.ShfLen))
			prv = cur
		case st.ShfDir == schedule.DirForwardPartial:
			cur = loadUnp(unp, st.UnpOff)
			delta = sub(cur, prv)
			acc = or(acc, shl(delta, st.ShfLen))
			prv = cur
		case st.ShfDir == schedule.DirBack:
			acc = shr(delta, st.ShfLen)
		}
		if st.Stores {
			storePck(out, st.PckOff, acc)
		}
	}
	return nil
}

// Unpack implements the full uXxB_unp contract (spec §4.5), the mirror of
// Pack.
func Unpack(w uint8, B int, r uint32, pck []byte, unp []uint32) error {
	if w > 32 {
		return fmt.Errorf("lanes: bit width %d out of range [0, 32]", w)
	}
	if err := schedule.ValidateBlockSize(B); err != nil {
		return err
	}
	if len(unp) < B {
		return fmt.Errorf("lanes: unp too short: need %d, got %d", B, len(unp))
	}

	if w == 0 {
		for i := 0; i < B; i++ {
			unp[i] = 0
		}
		return nil
	}
	if w == 32 {
		need := 4 * B
		if len(pck) < need {
			return fmt.Errorf("lanes: pck too short: need %d, got %d", need, len(pck))
		}
		for i := 0; i < B; i++ {
			unp[i] = binary.LittleEndian.Uint32(pck[i*4:])
		}
		return nil
	}

	steps, err := schedule.Generate(int(w), B)
	if err != nil {
		return err
	}
	need := 32 * numStores(steps)
	if len(pck) < need {
		return fmt.Errorf("lanes: pck too short: need %d, got %d", need, len(pck))
	}

	mask := broadcast((uint32(1) << w) - 1)
	var prv, cur, acc, deltaLow vec
	acc = loadPck(pck, 0)
	for _, st := range steps {
		switch {
		case st.Kind == schedule.KindFst:
			prv = broadcast(r)
			cur = add(prv, and(acc, mask))
			storeUnp(unp, st.UnpStoreOff, cur)
			prv = cur
		case st.ShfDir == schedule.DirZero:
			cur = add(prv, and(acc, mask))
			storeUnp(unp, st.UnpStoreOff, cur)
			prv = cur
		case st.ShfDir == schedule.DirForward:
			cur = add(prv, and(shr(acc, st.ShfLen), mask))
			storeUnp(unp, st.UnpStoreOff, cur)
			prv = cur
		case st.ShfDir == schedule.DirForwardPartial:
			deltaLow = and(shr(acc, st.ShfLen), mask)
		case st.ShfDir == schedule.DirBack:
			cur = add(prv, or(deltaLow, and(shl(acc, st.ShfLen), mask)))
			storeUnp(unp, st.UnpStoreOff, cur)
			prv = cur
		}
		if st.Stores && st.Kind != schedule.KindLst {
			acc = loadPck(pck, st.PckOff+1)
		}
	}
	return nil
}

func numStores(steps []schedule.Step) int {
	n := 0
	for _, s := range steps {
		if s.Stores {
			n++
		}
	}
	return n
}
