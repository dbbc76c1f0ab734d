package simd256

// The functions below give the §6 "uXxB" symbol family (u32 elements,
// block size B) a concrete Go name for each generated block size, thin
// wrappers over the generic Pack/Unpack/ByteLen so callers who only ever
// use one block size don't have to thread B through every call.

// Pack256/Unpack256/ByteLen256 operate on the canonical 256-element block
// size used by the surrounding day/page framing layer (framing package).
func Pack256(w uint8, r uint32, unp []uint32, out []byte) error {
	return Pack(w, DefaultBlockSize, r, unp, out)
}

func Unpack256(w uint8, r uint32, pck []byte, unp []uint32) error {
	return Unpack(w, DefaultBlockSize, r, pck, unp)
}

func ByteLen256(w uint8) (int, error) {
	return ByteLen(w, DefaultBlockSize)
}

// Pack128/Unpack128/ByteLen128 and Pack512/Unpack512/ByteLen512 cover the
// other two generated block sizes (§6: "additional sizes that are
// multiples of 8 and >= 16 may be generated").
func Pack128(w uint8, r uint32, unp []uint32, out []byte) error {
	return Pack(w, 128, r, unp, out)
}

func Unpack128(w uint8, r uint32, pck []byte, unp []uint32) error {
	return Unpack(w, 128, r, pck, unp)
}

func ByteLen128(w uint8) (int, error) {
	return ByteLen(w, 128)
}

func Pack512(w uint8, r uint32, unp []uint32, out []byte) error {
	return Pack(w, 512, r, unp, out)
}

func Unpack512(w uint8, r uint32, pck []byte, unp []uint32) error {
	return Unpack(w, 512, r, pck, unp)
}

func ByteLen512(w uint8) (int, error) {
	return ByteLen(w, 512)
}
