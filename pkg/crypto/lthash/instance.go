// Package lthash implements LtHash, a homomorphic multiset hash: the
// checksum of the union of two disjoint sets equals the packed
// element-wise sum of their individual checksums, so membership can be
// added or removed from a running checksum without recomputing it from
// the whole set, and the checksum of two sets can be combined by
// adding their checksums directly.
//
// Three canonical sizings are provided, matching the three sizings
// found to be secure in the literature this type is drawn from:
// Hash16 (1024 16-bit elements, 2048-byte checksum), Hash20 (1008
// 20-bit elements packed with one padding bit per element, 2688-byte
// checksum), and Hash32 (1024 32-bit elements, 4096-byte checksum).
// Each keeps an internal BLAKE2Xb key that maps an object to a
// checksum-sized digest before folding it into the checksum with
// pkg/crypto/lthash/mathengine.
package lthash

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	"sethash.dev/pkg/crypto/blake2xb"
	"sethash.dev/pkg/crypto/lthash/mathengine"
	"sethash.dev/pkg/crypto/wipe"
)

// instance holds the state shared by Hash16, Hash20, and Hash32. It is
// unexported: the three public types each wrap one, and their methods
// take and return the concrete public type so that, for instance,
// CombineAdd can never be called across two different element widths
// -- the compiler rejects it, rather than a runtime check.
type instance struct {
	params      mathengine.Params
	checksumLen int
	backend     mathengine.Backend

	keyLen int
	key    [blake2xb.MaxKeySize]byte

	checksum []byte
}

func elementsPerWord(p mathengine.Params) int {
	if p.NeedsPadding {
		return 64 / (p.BitsPerElement + 1)
	}
	return 64 / p.BitsPerElement
}

func newInstance(params mathengine.Params, elementCount int, backend mathengine.Backend) *instance {
	epw := elementsPerWord(params)
	if elementCount%epw != 0 {
		panic(fmt.Sprintf("lthash: element count %d is not a multiple of %d elements per word", elementCount, epw))
	}
	checksumLen := (elementCount / epw) * 8
	return &instance{
		params:      params,
		checksumLen: checksumLen,
		backend:     backend,
		checksum:    make([]byte, checksumLen),
	}
}

func (in *instance) setKey(key []byte) error {
	if len(key) < blake2xb.MinKeySize || len(key) > blake2xb.MaxKeySize {
		return wrapf(ErrInvalidKeySize, "got %d bytes, want %d..%d", len(key), blake2xb.MinKeySize, blake2xb.MaxKeySize)
	}
	in.clearKey()
	copy(in.key[:], key)
	in.keyLen = len(key)
	return nil
}

func (in *instance) clearKey() {
	wipe.Bytes(in.key[:])
	in.keyLen = 0
}

func (in *instance) keyBytes() []byte {
	return in.key[:in.keyLen]
}

func (in *instance) keyEqualBytes(other []byte) bool {
	return bytes.Equal(in.keyBytes(), other)
}

func (in *instance) setChecksum(checksum []byte) error {
	if len(checksum) != in.checksumLen {
		return wrapf(ErrInvalidChecksum, "got %d bytes, want %d", len(checksum), in.checksumLen)
	}
	if in.params.NeedsPadding && !in.backend.CheckPadding(checksum, in.params) {
		return wrapf(ErrInvalidChecksum, "non-zero padding bit in checksum")
	}
	copy(in.checksum, checksum)
	return nil
}

func (in *instance) clearChecksum() {
	for i := range in.checksum {
		in.checksum[i] = 0
	}
}

func (in *instance) checksumEqual(other []byte) bool {
	return bytes.Equal(in.checksum, other)
}

func (in *instance) checksumEqualConstantTime(other []byte) bool {
	if len(other) != len(in.checksum) {
		return false
	}
	return subtle.ConstantTimeCompare(in.checksum, other) == 1
}

// digest maps obj to a checksum-sized, key-dependent digest and clears
// its padding bits (if any), ready to be folded into a checksum with
// the math engine.
func (in *instance) digest(obj []byte) ([]byte, error) {
	h := make([]byte, in.checksumLen)
	if err := blake2xb.HashSingle(obj, h, in.keyBytes(), nil, nil); err != nil {
		return nil, err
	}
	if in.params.NeedsPadding {
		in.backend.ClearPadding(h, in.params)
	}
	return h, nil
}

func (in *instance) add(obj []byte) error {
	h, err := in.digest(obj)
	if err != nil {
		return err
	}
	in.backend.Add(in.checksum, in.checksum, h, in.params)
	return nil
}

func (in *instance) remove(obj []byte) error {
	h, err := in.digest(obj)
	if err != nil {
		return err
	}
	in.backend.Sub(in.checksum, in.checksum, h, in.params)
	return nil
}

func (in *instance) combineAdd(other *instance) error {
	if !in.keyEqualBytes(other.keyBytes()) {
		return ErrKeyMismatch
	}
	in.backend.Add(in.checksum, in.checksum, other.checksum, in.params)
	return nil
}

func (in *instance) combineRemove(other *instance) error {
	if !in.keyEqualBytes(other.keyBytes()) {
		return ErrKeyMismatch
	}
	in.backend.Sub(in.checksum, in.checksum, other.checksum, in.params)
	return nil
}

func (in *instance) clone() *instance {
	c := &instance{
		params:      in.params,
		checksumLen: in.checksumLen,
		backend:     in.backend,
		keyLen:      in.keyLen,
		checksum:    append([]byte(nil), in.checksum...),
	}
	copy(c.key[:], in.key[:])
	return c
}
