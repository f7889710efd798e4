package mathengine

import "golang.org/x/sys/cpu"

// DetectBackend returns the widest backend the running CPU supports,
// checked once by the caller (typically an LtHash constructor) rather
// than per operation. amd64 and arm64 both guarantee a 128-bit SIMD
// baseline (SSE2 is mandatory for amd64; NEON is mandatory for arm64),
// so Vector128 is always at least as good a default as Scalar there;
// Vector256 is only selected when the host additionally reports AVX2.
func DetectBackend() Backend {
	if cpu.X86.HasAVX2 {
		return Vector256
	}
	return Vector128
}
