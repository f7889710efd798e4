// Package blake2xb implements BLAKE2Xb, the extendable-output
// construction built on top of BLAKE2b described in the BLAKE2X paper
// (https://www.blake2.net/blake2x.pdf). It is the keyed hash that
// pkg/crypto/lthash uses internally to map one object to a
// checksum-sized digest.
//
// Unlike pkg/crypto/blake2b (a thin façade over
// golang.org/x/crypto/blake2b), this package implements the BLAKE2b
// compression function directly: BLAKE2X's tree-mode finalisation
// re-initialises the chain value from a parameter block that changes
// on every output block (node offset, digest length, fanout/depth),
// and the public golang.org/x/crypto/blake2b API has no hook for that.
package blake2xb

import (
	"io"

	"sethash.dev/pkg/crypto/wipe"
)

const (
	// MinKeySize and MaxKeySize bound a non-empty key, inherited from
	// BLAKE2b.
	MinKeySize = 16
	MaxKeySize = 64

	// MinOutputLength and MaxOutputLength bound a declared fixed
	// output length.
	MinOutputLength = 1
	MaxOutputLength = 0xFFFFFFFE

	// SaltSize and PersonalitySize are the fixed sizes of the
	// corresponding BLAKE2b parameter block fields.
	SaltSize        = 16
	PersonalitySize = 16
)

// OutputLength selects between a statically declared XOF output length
// and one that is only known once the caller calls Finish. This
// replaces the original "0 means unknown" magic constant with a sum
// type at the API boundary; the wire parameter block still encodes the
// 0xFFFFFFFF sentinel internally for interop.
type OutputLength struct {
	fixed bool
	n     uint32
}

// FixedOutputLength declares the XOF output length up front. New
// rejects n == 0 or n > MaxOutputLength.
func FixedOutputLength(n uint32) OutputLength {
	return OutputLength{fixed: true, n: n}
}

// DeferredOutputLength defers the output length declaration to
// Finish. It may only be supplied once, at Finish time.
var DeferredOutputLength = OutputLength{fixed: false}

// XOF is a single-use BLAKE2Xb instance: zero or more Write calls
// followed by exactly one Finish, which consumes it.
type XOF struct {
	param          paramBlock
	state          blake2bState
	outputLenKnown bool
	finished       bool
}

var _ io.Writer = (*XOF)(nil)

// New creates a BLAKE2Xb instance. key, salt, and personality are all
// optional; salt and personality are truncated/zero-padded to 16 bytes
// each (nil means "all zero", the default for both).
func New(outputLen OutputLength, key, salt, personality []byte) (*XOF, error) {
	if len(key) > 0 && (len(key) < MinKeySize || len(key) > MaxKeySize) {
		return nil, wrapf(ErrInvalidKeySize, "got %d bytes, want %d..%d", len(key), MinKeySize, MaxKeySize)
	}

	var xofLen uint32
	known := outputLen.fixed
	if known {
		if outputLen.n < MinOutputLength || outputLen.n > MaxOutputLength {
			return nil, wrapf(ErrInvalidOutputLength, "got %d, want %d..%d", outputLen.n, MinOutputLength, MaxOutputLength)
		}
		xofLen = outputLen.n
	} else {
		xofLen = unknownXOFDigestLen
	}

	var p paramBlock
	p.digestLen = 64
	p.keyLen = uint8(len(key))
	p.fanout = 1
	p.depth = 1
	p.xofDigestLen = xofLen
	copy(p.salt[:], salt)
	copy(p.personality[:], personality)

	x := &XOF{param: p, outputLenKnown: known}
	x.state.init(p.initialChainValue())

	if len(key) > 0 {
		var block [128]byte
		copy(block[:], key)
		x.state.write(block[:])
		wipe.Bytes(block[:])
	}

	return x, nil
}

// Write absorbs bytes into the running hash. It never fails; the error
// return exists only to satisfy io.Writer.
func (x *XOF) Write(p []byte) (int, error) {
	x.state.write(p)
	return len(p), nil
}

// Digest is Write without the io.Writer-shaped (n, error) return,
// for callers that don't need it.
func (x *XOF) Digest(p []byte) {
	x.state.write(p)
}

// Finish produces the XOF output into out, consuming the instance.
// Calling Finish a second time returns ErrAlreadyFinished.
func (x *XOF) Finish(out []byte) error {
	if x.finished {
		return ErrAlreadyFinished
	}
	x.finished = true

	if x.outputLenKnown && uint32(len(out)) != x.param.xofDigestLen {
		return wrapf(ErrOutputLengthMismatch, "got %d bytes, want %d", len(out), x.param.xofDigestLen)
	}

	h0 := x.state.finalize()

	x.param.keyLen = 0
	x.param.fanout = 0
	x.param.depth = 0
	x.param.leafLen = 64
	x.param.xofDigestLen = uint32(len(out))
	x.param.nodeDepth = 0
	x.param.innerLen = 64

	pos := 0
	remaining := len(out)
	for remaining > 0 {
		x.param.nodeOff = uint32(pos / 64)

		n := remaining
		if n > 64 {
			n = 64
		}
		x.param.digestLen = uint8(n)

		var block blake2bState
		block.init(x.param.initialChainValue())
		block.write(h0[:])
		h := block.finalize()
		copy(out[pos:pos+n], h[:n])

		pos += n
		remaining -= n
	}
	return nil
}

// HashSingle is a convenience combining New+Digest+Finish for a
// one-shot hash of data into a fixed-size out.
func HashSingle(data, out, key, salt, personality []byte) error {
	x, err := New(FixedOutputLength(uint32(len(out))), key, salt, personality)
	if err != nil {
		return err
	}
	x.Digest(data)
	return x.Finish(out)
}

// HashSingleDeferred is a convenience for a one-shot hash whose output
// length is only known at the call site, allocating the result.
func HashSingleDeferred(data []byte, outputLen uint32, key, salt, personality []byte) ([]byte, error) {
	x, err := New(DeferredOutputLength, key, salt, personality)
	if err != nil {
		return nil, err
	}
	x.Digest(data)
	out := make([]byte, outputLen)
	if err := x.Finish(out); err != nil {
		return nil, err
	}
	return out, nil
}

