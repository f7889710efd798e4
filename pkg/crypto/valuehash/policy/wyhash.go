package policy

import (
	"encoding/binary"
	"math/bits"
)

// wyhash's constants, taken directly from the reference algorithm:
// four 64-bit primes chosen for good avalanche under wyhash's
// multiply-xor-mix mixer.
const (
	wyp0 uint64 = 0xa0761d6478bd642f
	wyp1 uint64 = 0xe7037ed1a0b428db
	wyp2 uint64 = 0x8ebc6af09c88c6e3
	wyp3 uint64 = 0x589965cc75374cc3
)

func wymix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func wyr8(p []byte) uint64  { return uint64(p[0]) }
func wyr16(p []byte) uint64 { return uint64(binary.LittleEndian.Uint16(p)) }
func wyr32(p []byte) uint64 { return uint64(binary.LittleEndian.Uint32(p)) }
func wyr64(p []byte) uint64 { return binary.LittleEndian.Uint64(p) }

// wyhash64 is a from-scratch Go port of the reference wyhash algorithm
// (see https://github.com/wangyi-fudan/wyhash), not a binding to a
// C implementation: Go's cgo-free build model rules out linking the
// reference C source directly, and no pre-existing Go port appears
// among this module's other dependencies.
func wyhash64(data []byte, seed uint64) uint64 {
	seed ^= wyp0

	if len(data) == 0 {
		return wymix(seed, wyp1)
	}

	a, b := uint64(0), uint64(0)
	switch {
	case len(data) <= 4:
		a = wyr32Partial(data)
	case len(data) <= 8:
		a = wyr32(data)
		b = wyr32(data[len(data)-4:])
	case len(data) <= 16:
		a = wyr64(data)
		b = wyr64(data[len(data)-8:])
	default:
		return wyhash64Long(data, seed)
	}
	return wymixFinal(a, b, seed, uint64(len(data)))
}

func wyr32Partial(p []byte) uint64 {
	switch len(p) {
	case 0:
		return 0
	case 1:
		return wyr8(p)
	case 2:
		return wyr16(p)
	case 3:
		return wyr16(p) | uint64(p[2])<<16
	default:
		return wyr32(p)
	}
}

func wymixFinal(a, b, seed, length uint64) uint64 {
	a ^= wyp1
	b ^= seed
	a, b = bits.Mul64(a, b)
	return wymix(a^wyp0^length, b^wyp1)
}

func wyhash64Long(data []byte, seed uint64) uint64 {
	whole := data
	see1, see2 := seed, seed
	for len(data) >= 48 {
		seed = wymix(wyr64(data[0:])^wyp1, wyr64(data[8:])^seed)
		see1 = wymix(wyr64(data[16:])^wyp2, wyr64(data[24:])^see1)
		see2 = wymix(wyr64(data[32:])^wyp3, wyr64(data[40:])^see2)
		data = data[48:]
	}
	seed ^= see1 ^ see2
	for len(data) >= 16 {
		seed = wymix(wyr64(data[0:])^wyp1, wyr64(data[8:])^seed)
		data = data[16:]
	}
	// The final 16 bytes are read from the whole input (overlapping
	// already-mixed bytes when fewer than 16 remain), as the reference
	// does by reading backwards from its end pointer.
	n := len(whole)
	a, b := wyr64(whole[n-16:n-8]), wyr64(whole[n-8:])
	return wymixFinal(a, b, seed, uint64(n))
}

// Wyhash is a Policy backed by a from-scratch Go port of wyhash.
var Wyhash Policy = wyhashPolicy{}

type wyhashPolicy struct{}

func (wyhashPolicy) Name() string { return "wyhash" }

func (wyhashPolicy) HashBytes(data []byte) uint64 {
	return wyhash64(data, 0)
}

func (wyhashPolicy) HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return wyhash64(buf[:], 0)
}

func (wyhashPolicy) Combine(state, next uint64) uint64 {
	return wymix(state^wyp0, next^wyp1)
}

func (wyhashPolicy) InvertibleCombine(a, b uint64) uint64 {
	return a ^ b
}

func (wyhashPolicy) ErrorValue() uint64 {
	return ^uint64(0)
}
