package lthash

import "sethash.dev/pkg/crypto/lthash/mathengine"

// ElementCount32 is the number of 32-bit elements packed into a
// Hash32 checksum (4096 bytes).
const ElementCount32 = 1024

// Hash32 is the 32-bit-element LtHash sizing, offering the largest
// security margin of the three at the cost of the largest checksum.
type Hash32 struct{ in *instance }

// NewHash32 creates an unkeyed, zero-checksum Hash32 using the
// CPU-appropriate math-engine backend. Call SetKey before Add/Remove.
func NewHash32() *Hash32 {
	return NewHash32WithBackend(mathengine.DetectBackend())
}

// NewHash32WithBackend is NewHash32 with an explicit math-engine
// backend, primarily for testing backend agreement.
func NewHash32WithBackend(backend mathengine.Backend) *Hash32 {
	return &Hash32{in: newInstance(mathengine.Bits32, ElementCount32, backend)}
}

// NewHash32WithChecksum creates a Hash32 seeded from an existing
// checksum. It returns ErrInvalidChecksum if checksum is not exactly
// 4096 bytes.
func NewHash32WithChecksum(checksum []byte) (*Hash32, error) {
	h := NewHash32()
	if err := h.in.setChecksum(checksum); err != nil {
		return nil, err
	}
	return h, nil
}

// SetKey installs the BLAKE2Xb key used to digest objects passed to
// Add/Remove.
func (h *Hash32) SetKey(key []byte) error { return h.in.setKey(key) }

// ClearKey wipes the installed key from memory and forgets it.
func (h *Hash32) ClearKey() { h.in.clearKey() }

// KeyEqual reports whether h and other share the same key.
func (h *Hash32) KeyEqual(other *Hash32) bool { return h.in.keyEqualBytes(other.in.keyBytes()) }

// KeyEqualBytes reports whether h's key equals key.
func (h *Hash32) KeyEqualBytes(key []byte) bool { return h.in.keyEqualBytes(key) }

// SetChecksum overwrites h's checksum. It returns ErrInvalidChecksum
// if checksum is not exactly 4096 bytes.
func (h *Hash32) SetChecksum(checksum []byte) error { return h.in.setChecksum(checksum) }

// ClearChecksum resets h's checksum to all zeroes.
func (h *Hash32) ClearChecksum() { h.in.clearChecksum() }

// Checksum returns h's current checksum. The returned slice aliases
// h's internal state and must not be retained across further mutation.
func (h *Hash32) Checksum() []byte { return h.in.checksum }

// ChecksumEqual reports whether h and other have equal checksums.
func (h *Hash32) ChecksumEqual(other *Hash32) bool { return h.in.checksumEqual(other.in.checksum) }

// ChecksumEqualBytes reports whether h's checksum equals checksum.
func (h *Hash32) ChecksumEqualBytes(checksum []byte) bool { return h.in.checksumEqual(checksum) }

// ChecksumEqualConstantTime is ChecksumEqual using a constant-time
// comparison.
func (h *Hash32) ChecksumEqualConstantTime(other *Hash32) bool {
	return h.in.checksumEqualConstantTime(other.in.checksum)
}

// Add folds obj into h's checksum.
func (h *Hash32) Add(obj []byte) error { return h.in.add(obj) }

// Remove folds obj out of h's checksum.
func (h *Hash32) Remove(obj []byte) error { return h.in.remove(obj) }

// CombineAdd adds other's checksum into h's. h and other must share a
// key; otherwise CombineAdd returns ErrKeyMismatch.
func (h *Hash32) CombineAdd(other *Hash32) error { return h.in.combineAdd(other.in) }

// CombineRemove is the inverse of CombineAdd.
func (h *Hash32) CombineRemove(other *Hash32) error { return h.in.combineRemove(other.in) }

// Equal reports whether h and other have equal checksums.
func (h *Hash32) Equal(other *Hash32) bool { return h.ChecksumEqual(other) }

// Clone returns a deep copy of h, including its key.
func (h *Hash32) Clone() *Hash32 { return &Hash32{in: h.in.clone()} }

// Zeroize wipes h's key from memory.
func (h *Hash32) Zeroize() { h.in.clearKey() }
