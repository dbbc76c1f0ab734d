// Package framing assembles canonical 256-element blocks into a "page": a
// day's worth of monotonic readings, with a small header of per-block
// widths (internal/varint) and a StreamVByte-encoded offset table so any
// one block's packed payload can be located and decoded without touching
// the blocks before it.
//
// Chaining means block i+1's reference is the last value of block i, and
// the page stores every block's reference value in its own StreamVByte
// table (alongside Ref0 in the header), so Page.Block reads block i's
// reference directly instead of decoding block i-1. Width 32 is the one
// exception the core leaves to its caller (simd256's documented
// asymmetry): a w==32 block is a raw copy that never reads r, but
// EncodePage still derives the following block's reference from the
// block's actual last value, the same way regardless of its width.
package framing

import (
	"encoding/binary"
	"fmt"

	"github.com/mhr3/streamvbyte"

	"github.com/blockpack/simd256"
	"github.com/blockpack/simd256/internal/varint"
)

const blockSize = simd256.DefaultBlockSize

// Page is an encoded sequence of canonical blocks.
type Page struct {
	NumBlocks int
	Ref0      uint32
	Widths    []uint8
	// offsets[i] is the byte offset of block i's packed payload within
	// Payload. offsets has NumBlocks+1 entries so a block's length is
	// always offsets[i+1]-offsets[i], including the last block.
	offsets []uint32
	// refs[i] is the reference value block i was packed against (Ref0 for
	// block 0, otherwise block i-1's last lane row). Carrying this
	// explicitly, rather than recovering it by decoding block i-1, is what
	// makes Block's random access genuinely O(1) in the number of blocks.
	refs    []uint32
	Payload []byte
}

// EncodePage packs every block in blocks (each exactly blockSize elements,
// already monotonically non-decreasing and chained: blocks[i+1][0] >=
// blocks[i][blockSize-1]) into a Page, choosing each block's bit width
// with simd256.BitLen.
func EncodePage(blocks [][]uint32, ref0 uint32) (*Page, error) {
	p := &Page{
		NumBlocks: len(blocks),
		Ref0:      ref0,
		Widths:    make([]uint8, len(blocks)),
		offsets:   make([]uint32, len(blocks)+1),
		refs:      make([]uint32, len(blocks)),
	}

	r := ref0
	var payload []byte
	for i, blk := range blocks {
		if len(blk) != blockSize {
			return nil, fmt.Errorf("framing: block %d has %d elements, want %d", i, len(blk), blockSize)
		}
		w := widthFor(blk, r)
		need, err := simd256.ByteLen256(w)
		if err != nil {
			return nil, fmt.Errorf("framing: block %d: %w", i, err)
		}

		out := make([]byte, need)
		if err := simd256.Pack256(w, r, blk, out); err != nil {
			return nil, fmt.Errorf("framing: packing block %d: %w", i, err)
		}

		p.Widths[i] = w
		p.refs[i] = r
		p.offsets[i] = uint32(len(payload))
		payload = append(payload, out...)
		r = blk[blockSize-1]
	}
	p.offsets[len(blocks)] = uint32(len(payload))
	p.Payload = payload
	return p, nil
}

// widthFor picks the width simd256.BitLen reports for blk once its lane
// rows are chained from r: a synthetic leading row of eight copies of r is
// prepended so the first real row's delta (the one Pack computes against
// r) is included in the measurement.
func widthFor(blk []uint32, r uint32) uint8 {
	chained := make([]uint32, simd256.LaneCount+blockSize)
	for i := 0; i < simd256.LaneCount; i++ {
		chained[i] = r
	}
	copy(chained[simd256.LaneCount:], blk)
	return simd256.BitLen(chained)
}

// Marshal serializes p to a self-contained byte slice: a varint header
// (block count, Ref0, one width per block), a StreamVByte-encoded offset
// table and a StreamVByte-encoded reference table (each of these three
// sections preceded by its little-endian uint32 length), then the
// concatenated packed payload.
func (p *Page) Marshal() []byte {
	hdrLen := varint.Len(uint64(p.NumBlocks)) + varint.Len(uint64(p.Ref0)) + varint.SliceLen(widthsAsUint32(p.Widths))
	hdr := make([]byte, hdrLen)
	n := varint.Encode(uint64(p.NumBlocks), hdr)
	n += varint.Encode(uint64(p.Ref0), hdr[n:])
	varint.EncodeSlice(widthsAsUint32(p.Widths), hdr[n:])

	offBytes := streamvbyte.EncodeUint32(p.offsets, nil)
	refBytes := streamvbyte.EncodeUint32(p.refs, nil)

	out := make([]byte, 0, 4+len(hdr)+4+len(offBytes)+4+len(refBytes)+len(p.Payload))
	var lenBuf [4]byte
	appendSection := func(section []byte) {
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(section)))
		out = append(out, lenBuf[:]...)
		out = append(out, section...)
	}
	appendSection(hdr)
	appendSection(offBytes)
	appendSection(refBytes)
	out = append(out, p.Payload...)
	return out
}

// UnmarshalPage parses a Page previously produced by Marshal.
func UnmarshalPage(buf []byte) (*Page, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("framing: buffer too short for header length")
	}
	hdrLen := int(binary.LittleEndian.Uint32(buf))
	buf = buf[4:]
	if len(buf) < hdrLen {
		return nil, fmt.Errorf("framing: buffer too short for header")
	}
	hdr := buf[:hdrLen]
	buf = buf[hdrLen:]

	numBlocks64, n := varint.Decode(hdr)
	if n == 0 {
		return nil, fmt.Errorf("framing: truncated block count")
	}
	hdr = hdr[n:]
	ref064, n := varint.Decode(hdr)
	if n == 0 {
		return nil, fmt.Errorf("framing: truncated Ref0")
	}
	hdr = hdr[n:]

	numBlocks := int(numBlocks64)
	widths32 := make([]uint32, numBlocks)
	if _, err := varint.DecodeSlice(hdr, widths32); err != nil {
		return nil, fmt.Errorf("framing: decoding widths: %w", err)
	}

	readSection := func() ([]byte, error) {
		if len(buf) < 4 {
			return nil, fmt.Errorf("framing: buffer too short for section length")
		}
		n := int(binary.LittleEndian.Uint32(buf))
		buf = buf[4:]
		if len(buf) < n {
			return nil, fmt.Errorf("framing: buffer too short for section")
		}
		section := buf[:n]
		buf = buf[n:]
		return section, nil
	}

	offBytes, err := readSection()
	if err != nil {
		return nil, err
	}
	refBytes, err := readSection()
	if err != nil {
		return nil, err
	}

	offsets := streamvbyte.DecodeUint32(offBytes, numBlocks+1, nil)
	refs := streamvbyte.DecodeUint32(refBytes, numBlocks, nil)

	widths := make([]uint8, numBlocks)
	for i, w := range widths32 {
		widths[i] = uint8(w)
	}

	return &Page{
		NumBlocks: numBlocks,
		Ref0:      uint32(ref064),
		Widths:    widths,
		offsets:   offsets,
		refs:      refs,
		Payload:   buf,
	}, nil
}

// Block decodes block i into dst, which must have length blockSize. It
// only touches block i's own slice of Payload and the reference value
// carried over from block i-1 (or Ref0 for block 0), so random access does
// not require decoding any other block.
func (p *Page) Block(i int, dst []uint32) error {
	if i < 0 || i >= p.NumBlocks {
		return fmt.Errorf("framing: block index %d out of range [0, %d)", i, p.NumBlocks)
	}
	lo, hi := p.offsets[i], p.offsets[i+1]
	if int(hi) > len(p.Payload) {
		return fmt.Errorf("framing: block %d offset range exceeds payload", i)
	}
	// simd256's width-0 contract zero-fills rather than broadcasting r
	// (the first Open Question in SPEC_FULL.md), but a width-0 block here
	// always means "every row equals refs[i]" (that is what made BitLen
	// return 0): reconstruct that directly instead of losing the reference.
	if p.Widths[i] == 0 {
		for j := range dst {
			dst[j] = p.refs[i]
		}
		return nil
	}
	return simd256.Unpack256(p.Widths[i], p.refs[i], p.Payload[lo:hi], dst)
}

func widthsAsUint32(widths []uint8) []uint32 {
	out := make([]uint32, len(widths))
	for i, w := range widths {
		out[i] = uint32(w)
	}
	return out
}
