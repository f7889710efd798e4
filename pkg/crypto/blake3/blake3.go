// Package blake3 is a thin façade over github.com/zeebo/blake3,
// exposing the streaming and variable-length-output shapes this
// module's other packages need.
package blake3

import (
	"hash"

	"github.com/zeebo/blake3"
)

// Hasher streams data into a BLAKE3 digest. It implements hash.Hash
// for fixed-length output and additionally exposes SumVariable for
// variable-length output.
type Hasher struct {
	h *blake3.Hasher
}

var _ hash.Hash = (*Hasher)(nil)

// New creates an unkeyed streaming BLAKE3 hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New()}
}

// NewKeyed creates a keyed streaming BLAKE3 hasher. key must be
// exactly 32 bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &Hasher{h: h}, nil
}

func (h *Hasher) Write(p []byte) (int, error) { return h.h.Write(p) }
func (h *Hasher) Reset()                      { h.h.Reset() }
func (h *Hasher) Size() int                   { return 32 }
func (h *Hasher) BlockSize() int              { return 64 }

// Sum appends the 32-byte BLAKE3 digest to b and returns the result,
// satisfying hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	return h.h.Sum(b)
}

// SumVariable returns an n-byte BLAKE3 digest, reading from the
// underlying extendable-output reader. It does not reset or otherwise
// disturb the running hash.
func (h *Hasher) SumVariable(n int) []byte {
	out := make([]byte, n)
	d := h.h.Digest()
	_, _ = d.Read(out)
	return out
}

// Sum256 returns the unkeyed 32-byte BLAKE3 digest of data.
func Sum256(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// SumVariable returns an n-byte unkeyed BLAKE3 digest of data.
func SumVariable(data []byte, n int) []byte {
	h := New()
	_, _ = h.Write(data)
	return h.SumVariable(n)
}
