package policy

import (
	"encoding/binary"
	"hash/maphash"
)

// Martinus is a Policy named for the robin-hood-hashing/unordered_dense
// author's hashing approach: a single seed, chosen at random when the
// process starts and shared by the whole process, so the same bytes
// hash identically within one process but not across processes or runs
// (hash/maphash itself makes no cross-process guarantee). No
// third-party Go port of that exact mixer exists in this module's
// dependency set, so this policy is built on the standard library's
// hash/maphash, which serves the same "fast, seeded, not
// collision-resistant" niche.
var Martinus Policy = martinusPolicy{seed: maphash.MakeSeed()}

type martinusPolicy struct {
	seed maphash.Seed
}

func (p martinusPolicy) Name() string { return "martinus" }

func (p martinusPolicy) HashBytes(data []byte) uint64 {
	return maphash.Bytes(p.seed, data)
}

func (p martinusPolicy) HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return maphash.Bytes(p.seed, buf[:])
}

func (p martinusPolicy) Combine(state, next uint64) uint64 {
	state += next
	state *= 0xff51afd7ed558ccd
	state ^= state >> 33
	return state
}

func (p martinusPolicy) InvertibleCombine(a, b uint64) uint64 {
	return a ^ b
}

func (p martinusPolicy) ErrorValue() uint64 {
	return ^uint64(0)
}
