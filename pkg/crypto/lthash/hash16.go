package lthash

import "sethash.dev/pkg/crypto/lthash/mathengine"

// ElementCount16 is the number of 16-bit elements packed into a
// Hash16 checksum (2048 bytes).
const ElementCount16 = 1024

// Hash16 is the 16-bit-element LtHash sizing.
type Hash16 struct{ in *instance }

// NewHash16 creates an unkeyed, zero-checksum Hash16 using the
// CPU-appropriate math-engine backend. Call SetKey before Add/Remove.
func NewHash16() *Hash16 {
	return NewHash16WithBackend(mathengine.DetectBackend())
}

// NewHash16WithBackend is NewHash16 with an explicit math-engine
// backend, primarily for testing backend agreement.
func NewHash16WithBackend(backend mathengine.Backend) *Hash16 {
	return &Hash16{in: newInstance(mathengine.Bits16, ElementCount16, backend)}
}

// NewHash16WithChecksum creates a Hash16 seeded from an existing
// checksum, e.g. one deserialised from storage. It returns
// ErrInvalidChecksum if checksum is not exactly 2048 bytes.
func NewHash16WithChecksum(checksum []byte) (*Hash16, error) {
	h := NewHash16()
	if err := h.in.setChecksum(checksum); err != nil {
		return nil, err
	}
	return h, nil
}

// SetKey installs the BLAKE2Xb key used to digest objects passed to
// Add/Remove. The key must be 16..64 bytes long; until a key is set,
// Add/Remove digest objects with unkeyed BLAKE2Xb. Changing the key
// after objects have already been added makes the checksum
// unrelatable to any key.
func (h *Hash16) SetKey(key []byte) error { return h.in.setKey(key) }

// ClearKey wipes the installed key from memory and forgets it.
func (h *Hash16) ClearKey() { h.in.clearKey() }

// KeyEqual reports whether h and other share the same key.
func (h *Hash16) KeyEqual(other *Hash16) bool { return h.in.keyEqualBytes(other.in.keyBytes()) }

// KeyEqualBytes reports whether h's key equals key.
func (h *Hash16) KeyEqualBytes(key []byte) bool { return h.in.keyEqualBytes(key) }

// SetChecksum overwrites h's checksum. It returns ErrInvalidChecksum
// if checksum is not exactly 2048 bytes.
func (h *Hash16) SetChecksum(checksum []byte) error { return h.in.setChecksum(checksum) }

// ClearChecksum resets h's checksum to all zeroes, the identity
// element of LtHash's group operation.
func (h *Hash16) ClearChecksum() { h.in.clearChecksum() }

// Checksum returns h's current checksum. The returned slice aliases
// h's internal state and must not be retained across further mutation.
func (h *Hash16) Checksum() []byte { return h.in.checksum }

// ChecksumEqual reports whether h and other have equal checksums.
func (h *Hash16) ChecksumEqual(other *Hash16) bool { return h.in.checksumEqual(other.in.checksum) }

// ChecksumEqualBytes reports whether h's checksum equals checksum.
func (h *Hash16) ChecksumEqualBytes(checksum []byte) bool { return h.in.checksumEqual(checksum) }

// ChecksumEqualConstantTime is ChecksumEqual using a constant-time
// comparison, for callers comparing checksums derived from secrets.
func (h *Hash16) ChecksumEqualConstantTime(other *Hash16) bool {
	return h.in.checksumEqualConstantTime(other.in.checksum)
}

// Add folds obj into h's checksum.
func (h *Hash16) Add(obj []byte) error { return h.in.add(obj) }

// Remove folds obj out of h's checksum. Removing an object that was
// never added corrupts the checksum just as silently as the original
// multiset hash does; callers that need protection against that use
// ChecksumEqual/ChecksumEqualConstantTime against an independently
// tracked reference.
func (h *Hash16) Remove(obj []byte) error { return h.in.remove(obj) }

// CombineAdd adds other's checksum into h's, as if every object ever
// added to other had instead been added directly to h. h and other
// must share a key; otherwise CombineAdd returns ErrKeyMismatch.
func (h *Hash16) CombineAdd(other *Hash16) error { return h.in.combineAdd(other.in) }

// CombineRemove is the inverse of CombineAdd.
func (h *Hash16) CombineRemove(other *Hash16) error { return h.in.combineRemove(other.in) }

// Equal reports whether h and other have equal checksums.
func (h *Hash16) Equal(other *Hash16) bool { return h.ChecksumEqual(other) }

// Clone returns a deep copy of h, including its key.
func (h *Hash16) Clone() *Hash16 { return &Hash16{in: h.in.clone()} }

// Zeroize wipes h's key from memory. It does not clear the checksum,
// which is not sensitive on its own.
func (h *Hash16) Zeroize() { h.in.clearKey() }
