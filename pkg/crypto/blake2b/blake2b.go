// Package blake2b is a thin façade over golang.org/x/crypto/blake2b
// for the fixed-output-length hashing this module's other packages
// need, kept separate from pkg/crypto/blake2xb (which implements the
// extendable-output variant from scratch because x/crypto/blake2b
// doesn't expose the parameter-block control that needs).
package blake2b

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Hasher streams data into a BLAKE2b digest. It implements hash.Hash,
// so it composes with io.Writer-based pipelines the same way the
// standard library's hash implementations do.
type Hasher struct {
	hash.Hash
}

// New256 creates a streaming 256-bit BLAKE2b hasher, optionally keyed.
// A nil or empty key produces an unkeyed hash.
func New256(key []byte) (*Hasher, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return nil, err
	}
	return &Hasher{Hash: h}, nil
}

// New512 creates a streaming 512-bit BLAKE2b hasher, optionally keyed.
func New512(key []byte) (*Hasher, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return nil, err
	}
	return &Hasher{Hash: h}, nil
}

// Sum256 returns the unkeyed 256-bit BLAKE2b digest of data.
func Sum256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Sum512 returns the unkeyed 512-bit BLAKE2b digest of data.
func Sum512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
