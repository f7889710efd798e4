// Package mathengine implements the packed, per-element modular
// arithmetic that pkg/crypto/lthash performs on its checksums: add,
// subtract, and (for the padded 20-bit element width) padding-bit
// maintenance.
//
// Both operands and the destination are little-endian packed uint64
// words, each holding several B-bit elements (see Params). Three
// backends implement the identical per-element semantics at different
// batch widths; results are bit-identical across all of them.
package mathengine

import "encoding/binary"

// Params describes the packed layout a Backend operates on. It plays
// the role the original's compile-time Bits<B> template parameter
// played, but is plain instance data here: Go has no way to carry a
// small integer constant in a type parameter, so the three LtHash
// sizings (Hash16, Hash20, Hash32) are three constructors over one
// implementation configured by a Params value, rather than three
// monomorphised generic instantiations.
type Params struct {
	// BitsPerElement is one of 16, 20, 32.
	BitsPerElement int
	// NeedsPadding is true only for BitsPerElement == 20.
	NeedsPadding bool
	// DataMask, meaningful only when NeedsPadding, is the mask that
	// keeps the three data groups of a 20-bit-packed word and clears
	// its one-bit-per-element padding.
	DataMask uint64
}

// DataMask20 is ~0xC000020000100000: the three 20-bit data groups
// within a 64-bit word, each separated by a zero pad bit.
const DataMask20 = ^uint64(0xC000020000100000)

// Bits20 is the Params value for LtHash's 20-bit-element sizing.
var Bits20 = Params{BitsPerElement: 20, NeedsPadding: true, DataMask: DataMask20}

// Bits16 is the Params value for LtHash's 16-bit-element sizing.
var Bits16 = Params{BitsPerElement: 16, NeedsPadding: false}

// Bits32 is the Params value for LtHash's 32-bit-element sizing.
var Bits32 = Params{BitsPerElement: 32, NeedsPadding: false}

// Backend performs packed element-wise arithmetic over byte buffers
// that are multiples of 8 bytes in length, interpreted as little-endian
// uint64 words. a, b, and dst may all alias each other or be distinct;
// dst is always fully overwritten.
type Backend interface {
	// Name identifies the backend, e.g. for logging or benchmarking.
	Name() string
	// Add computes dst[i] = a[i] +_p b[i] for every packed element.
	Add(dst, a, b []byte, p Params)
	// Sub computes dst[i] = a[i] -_p b[i] for every packed element.
	Sub(dst, a, b []byte, p Params)
	// CheckPadding reports whether every padding bit in data is zero.
	// Only meaningful when p.NeedsPadding; otherwise always true.
	CheckPadding(data []byte, p Params) bool
	// ClearPadding zeroes every padding bit in data in place. A no-op
	// when !p.NeedsPadding.
	ClearPadding(data []byte, p Params)
}

// loadWord reads the i-th little-endian uint64 word of a byte buffer
// (whose length must be a multiple of 8); storeWord writes it back.
func loadWord(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i*8 : i*8+8])
}

func storeWord(b []byte, i int, v uint64) {
	binary.LittleEndian.PutUint64(b[i*8:i*8+8], v)
}

// laneMasks returns the two alternating-lane masks used to add/sub
// unpadded 16- or 32-bit elements packed into a 64-bit word without
// letting a carry/borrow from one element invade its neighbour: adding
// (or subtracting) two values that are only nonzero in the "odd" lanes
// can only ever produce a stray carry bit into the immediately following
// "even" lane, which is then discarded by masking back down to the odd
// lanes -- so processing odd and even lanes separately and recombining
// with OR reproduces independent wraparound arithmetic per lane.
func laneMasks(bitsPerElement int) (group1, group2 uint64) {
	switch bitsPerElement {
	case 16:
		return 0xffff0000ffff0000, 0x0000ffff0000ffff
	case 32:
		return 0xffffffff00000000, 0x00000000ffffffff
	default:
		panic("mathengine: laneMasks only defined for 16- and 32-bit elements")
	}
}
