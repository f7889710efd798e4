package blake2xb

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidKeySize is returned when a supplied key is non-empty
	// but outside [MinKeySize, MaxKeySize].
	ErrInvalidKeySize = errors.New("blake2xb: invalid key size")
	// ErrInvalidOutputLength is returned when a declared fixed output
	// length is zero or exceeds MaxOutputLength.
	ErrInvalidOutputLength = errors.New("blake2xb: invalid output length")
	// ErrOutputLengthMismatch is returned by Finish when the supplied
	// buffer disagrees with a previously declared fixed output length.
	ErrOutputLengthMismatch = errors.New("blake2xb: output length mismatch")
	// ErrAlreadyFinished is returned by Finish when an earlier Finish
	// call has already consumed the XOF.
	ErrAlreadyFinished = errors.New("blake2xb: instance already finished")
)

// wrappedError pairs a sentinel with additional context while still
// satisfying errors.Is against the sentinel, and exposes a gRPC status
// so callers at an RPC boundary can propagate the failure directly,
// matching how the rest of this module's ambient stack surfaces
// validation errors.
type wrappedError struct {
	sentinel error
	detail   string
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.sentinel, e.detail)
}

func (e *wrappedError) Unwrap() error {
	return e.sentinel
}

func (e *wrappedError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

func wrapf(sentinel error, format string, args ...any) error {
	return &wrappedError{sentinel: sentinel, detail: fmt.Sprintf(format, args...)}
}
