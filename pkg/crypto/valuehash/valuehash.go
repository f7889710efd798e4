// Package valuehash maps arbitrary Go values to a single uint64
// digest under a selectable pkg/crypto/valuehash/policy.Policy,
// dispatching by the value's reflected shape: primitives hash
// directly, contiguous byte-like data hashes as bytes, ordered
// containers and structs fold their elements/fields in order, and
// unordered containers fold via the policy's order-independent
// combiner. It's built for hash tables and deduplication keys, not
// for anything security-sensitive -- see policy.Policy's doc comment.
package valuehash

import (
	"math"
	"reflect"
	"sync"

	"sethash.dev/pkg/crypto/valuehash/policy"
)

// Policy re-exports policy.Policy so callers that only need the
// interface, not the built-in implementations, can import just this
// package.
type Policy = policy.Policy

// Addressable is implemented by smart-pointer-shaped types that should
// hash by the address they hold rather than by their pointee's value.
type Addressable interface {
	Addressable() uintptr
}

// Variant is implemented by sum-type-shaped structs: Variant reports
// which alternative is active (tag), its value, and whether the value
// is present at all (ok == false hashes as policy.Policy.ErrorValue()).
type Variant interface {
	Variant() (tag int, value any, ok bool)
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]func(any, Policy) uint64{}
)

// Register installs a custom hashing rule for T, overriding the
// reflection-based default for every future Hash/HashAny call on a T.
// The rule receives the active Policy so it stays consistent across
// policy changes.
func Register[T any](fn func(T, Policy) uint64) {
	var zero T
	t := reflect.TypeOf(zero)
	wrapped := func(v any, p Policy) uint64 { return fn(v.(T), p) }
	registryMu.Lock()
	registry[t] = wrapped
	registryMu.Unlock()
}

// Hash hashes value under p.
func Hash[T any](value T, p Policy) uint64 {
	return HashAny(value, p)
}

// HashAny is Hash for interface-typed callers that don't have a
// concrete T at the call site.
func HashAny(value any, p Policy) uint64 {
	if value == nil {
		return p.ErrorValue()
	}

	registryMu.RLock()
	fn, ok := registry[reflect.TypeOf(value)]
	registryMu.RUnlock()
	if ok {
		return fn(value, p)
	}

	if v, ok := value.(Variant); ok {
		return hashVariant(v, p)
	}
	if a, ok := value.(Addressable); ok {
		return p.HashUint64(uint64(a.Addressable()))
	}

	return hashReflect(reflect.ValueOf(value), p)
}

func hashVariant(v Variant, p Policy) uint64 {
	tag, value, ok := v.Variant()
	if !ok {
		return p.ErrorValue()
	}
	return p.Combine(p.HashUint64(uint64(tag)), HashAny(value, p))
}

func hashReflect(v reflect.Value, p Policy) uint64 {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return p.HashUint64(1)
		}
		return p.HashUint64(0)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.HashUint64(uint64(v.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.HashUint64(v.Uint())

	case reflect.Float32, reflect.Float64:
		return p.HashUint64(math.Float64bits(v.Float()))

	case reflect.String:
		return p.HashBytes([]byte(v.String()))

	case reflect.Ptr:
		// Pointers hash by the address they hold, never by dereferencing
		// the pointee -- a nil pointer is just address zero, not an
		// error. Addressable-implementing types get this same treatment
		// one level up in HashAny, before hashReflect is ever reached.
		return p.HashUint64(uint64(v.Pointer()))

	case reflect.Interface:
		if v.IsNil() {
			return p.ErrorValue()
		}
		return HashAny(v.Interface(), p)

	case reflect.Slice, reflect.Array:
		if isByteLike(v.Type().Elem()) {
			return p.HashBytes(toBytes(v))
		}
		return hashOrdered(v, p)

	case reflect.Map:
		return hashUnordered(v, p)

	case reflect.Struct:
		return hashStruct(v, p)

	default:
		return p.ErrorValue()
	}
}

func isByteLike(elem reflect.Type) bool {
	return elem.Kind() == reflect.Uint8
}

func toBytes(v reflect.Value) []byte {
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return b
}

// hashOrdered, hashUnordered and hashStruct all recurse through HashAny
// rather than hashReflect directly, so that a Register-ed type, an
// Addressable smart pointer, or a Variant nested inside a container or
// struct field gets exactly the same dispatch a top-level value would --
// matching the original's single dice_hash(...) recursion point for
// container elements, tuple members and struct fields alike.
func hashOrdered(v reflect.Value, p Policy) uint64 {
	state := p.HashUint64(uint64(v.Len()))
	for i := 0; i < v.Len(); i++ {
		state = p.Combine(state, HashAny(v.Index(i).Interface(), p))
	}
	return state
}

func hashUnordered(v reflect.Value, p Policy) uint64 {
	var state uint64
	iter := v.MapRange()
	for iter.Next() {
		entry := p.Combine(HashAny(iter.Key().Interface(), p), HashAny(iter.Value().Interface(), p))
		state = p.InvertibleCombine(state, entry)
	}
	return state
}

func hashStruct(v reflect.Value, p Policy) uint64 {
	var state uint64
	for _, f := range reflect.VisibleFields(v.Type()) {
		if !f.IsExported() {
			continue
		}
		state = p.Combine(state, HashAny(v.FieldByIndex(f.Index).Interface(), p))
	}
	return state
}
