// Package wipe provides a memory-clear primitive for secret-bearing
// buffers (hash keys, key blocks) that the compiler is not permitted to
// optimise away, analogous to explicit_bzero/sodium_memzero.
package wipe

import "runtime"

// Bytes overwrites every byte of b with zero. The loop is written so
// that it cannot be elided by dead-store elimination: runtime.KeepAlive
// forces the compiler to treat b as observed after the writes, which in
// practice is sufficient to keep the zeroing in the compiled output
// since nothing further can prove the writes are unobservable.
//
// This is a best-effort guarantee, not a cryptographic one: Go provides
// no language-level equivalent of explicit_bzero, and the runtime may
// still relocate or copy b before this call (e.g. during a stack
// growth) leaving stale copies behind. Callers with stronger
// requirements should pin secret buffers off the Go heap.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
