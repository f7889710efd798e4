package lthash

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidKeySize is returned by SetKey when the supplied key's
	// length is outside [blake2xb.MinKeySize, blake2xb.MaxKeySize].
	ErrInvalidKeySize = errors.New("lthash: invalid key size")
	// ErrInvalidChecksum is returned by the New...WithChecksum
	// constructors and by SetChecksum when the supplied bytes have the
	// wrong length, or (for the 20-bit element width) have a non-zero
	// padding bit.
	ErrInvalidChecksum = errors.New("lthash: invalid checksum")
	// ErrKeyMismatch is returned by CombineAdd/CombineRemove when the
	// two instances do not share a key.
	ErrKeyMismatch = errors.New("lthash: key mismatch")
)

type wrappedError struct {
	sentinel error
	detail   string
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.sentinel, e.detail) }
func (e *wrappedError) Unwrap() error { return e.sentinel }
func (e *wrappedError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

func wrapf(sentinel error, format string, args ...any) error {
	return &wrappedError{sentinel: sentinel, detail: fmt.Sprintf(format, args...)}
}
