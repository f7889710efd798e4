package lthash

import "sethash.dev/pkg/crypto/lthash/mathengine"

// ElementCount20 is the number of 20-bit elements packed into a
// Hash20 checksum (2688 bytes). Each 64-bit word holds three 20-bit
// elements plus one padding bit per element, so Hash20's element
// count must be a multiple of 3, not a power of two.
const ElementCount20 = 1008

// Hash20 is the 20-bit-element, padded LtHash sizing. It is the
// sizing used where the checksum must be as compact as possible while
// still resisting the attacks a 16-bit element width is vulnerable to.
type Hash20 struct{ in *instance }

// NewHash20 creates an unkeyed, zero-checksum Hash20 using the
// CPU-appropriate math-engine backend. Call SetKey before Add/Remove.
func NewHash20() *Hash20 {
	return NewHash20WithBackend(mathengine.DetectBackend())
}

// NewHash20WithBackend is NewHash20 with an explicit math-engine
// backend, primarily for testing backend agreement.
func NewHash20WithBackend(backend mathengine.Backend) *Hash20 {
	return &Hash20{in: newInstance(mathengine.Bits20, ElementCount20, backend)}
}

// NewHash20WithChecksum creates a Hash20 seeded from an existing
// checksum. It returns ErrInvalidChecksum if checksum is not exactly
// 2688 bytes or has a non-zero padding bit.
func NewHash20WithChecksum(checksum []byte) (*Hash20, error) {
	h := NewHash20()
	if err := h.in.setChecksum(checksum); err != nil {
		return nil, err
	}
	return h, nil
}

// SetKey installs the BLAKE2Xb key used to digest objects passed to
// Add/Remove.
func (h *Hash20) SetKey(key []byte) error { return h.in.setKey(key) }

// ClearKey wipes the installed key from memory and forgets it.
func (h *Hash20) ClearKey() { h.in.clearKey() }

// KeyEqual reports whether h and other share the same key.
func (h *Hash20) KeyEqual(other *Hash20) bool { return h.in.keyEqualBytes(other.in.keyBytes()) }

// KeyEqualBytes reports whether h's key equals key.
func (h *Hash20) KeyEqualBytes(key []byte) bool { return h.in.keyEqualBytes(key) }

// SetChecksum overwrites h's checksum. It returns ErrInvalidChecksum
// if checksum is not exactly 2688 bytes or has a non-zero padding bit.
func (h *Hash20) SetChecksum(checksum []byte) error { return h.in.setChecksum(checksum) }

// ClearChecksum resets h's checksum to all zeroes.
func (h *Hash20) ClearChecksum() { h.in.clearChecksum() }

// Checksum returns h's current checksum. The returned slice aliases
// h's internal state and must not be retained across further mutation.
func (h *Hash20) Checksum() []byte { return h.in.checksum }

// ChecksumEqual reports whether h and other have equal checksums.
func (h *Hash20) ChecksumEqual(other *Hash20) bool { return h.in.checksumEqual(other.in.checksum) }

// ChecksumEqualBytes reports whether h's checksum equals checksum.
func (h *Hash20) ChecksumEqualBytes(checksum []byte) bool { return h.in.checksumEqual(checksum) }

// ChecksumEqualConstantTime is ChecksumEqual using a constant-time
// comparison.
func (h *Hash20) ChecksumEqualConstantTime(other *Hash20) bool {
	return h.in.checksumEqualConstantTime(other.in.checksum)
}

// Add folds obj into h's checksum.
func (h *Hash20) Add(obj []byte) error { return h.in.add(obj) }

// Remove folds obj out of h's checksum.
func (h *Hash20) Remove(obj []byte) error { return h.in.remove(obj) }

// CombineAdd adds other's checksum into h's. h and other must share a
// key; otherwise CombineAdd returns ErrKeyMismatch.
func (h *Hash20) CombineAdd(other *Hash20) error { return h.in.combineAdd(other.in) }

// CombineRemove is the inverse of CombineAdd.
func (h *Hash20) CombineRemove(other *Hash20) error { return h.in.combineRemove(other.in) }

// Equal reports whether h and other have equal checksums.
func (h *Hash20) Equal(other *Hash20) bool { return h.ChecksumEqual(other) }

// Clone returns a deep copy of h, including its key.
func (h *Hash20) Clone() *Hash20 { return &Hash20{in: h.in.clone()} }

// Zeroize wipes h's key from memory.
func (h *Hash20) Zeroize() { h.in.clearKey() }
