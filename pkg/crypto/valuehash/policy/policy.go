// Package policy provides the pluggable non-cryptographic hash
// functions pkg/crypto/valuehash builds Hash and HashAny on top of.
// Unlike pkg/crypto/lthash and pkg/crypto/blake2xb, these are speed,
// not security, primitives: suitable for hash tables and
// deduplication, not for anything where an adversary chooses inputs.
package policy

// Policy is the strategy valuehash.Hash dispatches every primitive
// value and byte slice through. Implementations must be safe for
// concurrent use: a Policy is typically a package-level singleton
// shared across goroutines.
type Policy interface {
	// Name identifies the policy, e.g. for metrics labels.
	Name() string
	// HashBytes returns the base hash of a raw byte slice.
	HashBytes(data []byte) uint64
	// HashUint64 returns the base hash of a single fixed-width value,
	// used for fundamental numeric and bool fields without going
	// through HashBytes's slice-oriented path.
	HashUint64(v uint64) uint64
	// Combine folds next into the running state in an order-dependent
	// way, for hashing ordered aggregates (structs, slices, tuples).
	Combine(state, next uint64) uint64
	// InvertibleCombine folds a and b together order-independently
	// (a XOR-based combiner is its own inverse), for hashing
	// unordered aggregates (sets, maps) where element order must not
	// affect the result. Because it's XOR-based, combining the same
	// value with itself an even number of times cancels out; callers
	// hashing multisets must account for that collapse themselves.
	InvertibleCombine(a, b uint64) uint64
	// ErrorValue is the sentinel hash returned by valuehash.Hash when
	// a Policy has no other way to signal that hashing failed (for
	// example, HashAny given an unregistered, unsupported type).
	ErrorValue() uint64
}
