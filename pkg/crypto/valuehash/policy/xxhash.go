package policy

import (
	"encoding/binary"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// XXH3 is a Policy backed by github.com/zeebo/xxh3, a Go
// implementation of XXH3-64 (not the older, algorithmically
// incompatible XXH64 that github.com/cespare/xxhash/v2 implements).
// It is the fastest of the three built-in policies on most amd64
// hardware.
var XXH3 Policy = xxh3Policy{}

type xxh3Policy struct{}

func (xxh3Policy) Name() string { return "xxh3" }

func (xxh3Policy) HashBytes(data []byte) uint64 {
	return xxh3.Hash(data)
}

func (xxh3Policy) HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxh3.Hash(buf[:])
}

func (xxh3Policy) Combine(state, next uint64) uint64 {
	// Mirrors boost::hash_combine's mixing shape: add the golden-ratio
	// constant to next, XOR it into state, then rotate, so that
	// Combine(a, b) != Combine(b, a) for almost all a != b. No XXH3
	// avalanche is applied here.
	state ^= next + 0x9e3779b97f4a7c15
	state = bits.RotateLeft64(state, 31)
	return state
}

func (xxh3Policy) InvertibleCombine(a, b uint64) uint64 {
	return a ^ b
}

func (xxh3Policy) ErrorValue() uint64 {
	return ^uint64(0)
}
