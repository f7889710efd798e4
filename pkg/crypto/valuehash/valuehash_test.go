package valuehash_test

import (
	"testing"

	"sethash.dev/pkg/crypto/valuehash"
	"sethash.dev/pkg/crypto/valuehash/policy"
	"sethash.dev/pkg/crypto/valuehash/policy/policytest"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allPolicies = []policy.Policy{policy.Martinus, policy.XXH3, policy.Wyhash}

func TestHash_DeterministicAcrossPolicies(t *testing.T) {
	for _, p := range allPolicies {
		require.Equal(t, valuehash.Hash("hello", p), valuehash.Hash("hello", p), p.Name())
	}
}

func TestHash_DifferentValuesDifferentHashesUsually(t *testing.T) {
	for _, p := range allPolicies {
		require.NotEqual(t, valuehash.Hash("hello", p), valuehash.Hash("world", p), p.Name())
		require.NotEqual(t, valuehash.Hash(1, p), valuehash.Hash(2, p), p.Name())
	}
}

func TestHash_SliceIsOrderSensitive(t *testing.T) {
	for _, p := range allPolicies {
		a := valuehash.Hash([]int{1, 2, 3}, p)
		b := valuehash.Hash([]int{3, 2, 1}, p)
		require.NotEqual(t, a, b, p.Name())
	}
}

func TestHash_ByteSliceAndStringWithSameContentsMatchFamily(t *testing.T) {
	// Not required to be equal across kinds, but each must be stable.
	for _, p := range allPolicies {
		require.Equal(t, valuehash.Hash([]byte("abc"), p), valuehash.Hash([]byte("abc"), p), p.Name())
	}
}

func TestHash_MapIsOrderIndependent(t *testing.T) {
	for _, p := range allPolicies {
		m1 := map[string]int{"a": 1, "b": 2, "c": 3}
		m2 := map[string]int{"c": 3, "b": 2, "a": 1}
		require.Equal(t, valuehash.Hash(m1, p), valuehash.Hash(m2, p), p.Name())
	}
}

type point struct {
	X, Y int
}

func TestHash_StructHashesFieldsInOrder(t *testing.T) {
	for _, p := range allPolicies {
		a := valuehash.Hash(point{X: 1, Y: 2}, p)
		b := valuehash.Hash(point{X: 2, Y: 1}, p)
		require.NotEqual(t, a, b, p.Name())
	}
}

func TestHash_PointerHashesAddressNotPointee(t *testing.T) {
	for _, p := range allPolicies {
		v := point{X: 1, Y: 2}
		w := point{X: 1, Y: 2}
		require.NotEqual(t, valuehash.Hash(v, p), valuehash.Hash(&v, p), p.Name())
		require.NotEqual(t, valuehash.Hash(&v, p), valuehash.Hash(&w, p), p.Name())
		require.Equal(t, valuehash.Hash(&v, p), valuehash.Hash(&v, p), p.Name())
	}
}

func TestHashAny_NilReturnsErrorValue(t *testing.T) {
	for _, p := range allPolicies {
		require.Equal(t, p.ErrorValue(), valuehash.HashAny(nil, p), p.Name())
	}
}

type addr struct{ a uintptr }

func (a addr) Addressable() uintptr { return a.a }

func TestHash_AddressableHashesAddressNotPointee(t *testing.T) {
	for _, p := range allPolicies {
		require.Equal(t, valuehash.Hash(addr{a: 0x1000}, p), valuehash.Hash(addr{a: 0x1000}, p), p.Name())
		require.NotEqual(t, valuehash.Hash(addr{a: 0x1000}, p), valuehash.Hash(addr{a: 0x2000}, p), p.Name())
	}
}

type taggedVariant struct {
	tag int
	val any
	ok  bool
}

func (v taggedVariant) Variant() (int, any, bool) { return v.tag, v.val, v.ok }

func TestHash_VariantHashesActiveAlternative(t *testing.T) {
	for _, p := range allPolicies {
		a := valuehash.Hash(taggedVariant{tag: 1, val: "x", ok: true}, p)
		b := valuehash.Hash(taggedVariant{tag: 2, val: "x", ok: true}, p)
		require.NotEqual(t, a, b, p.Name())

		missing := valuehash.Hash(taggedVariant{ok: false}, p)
		require.Equal(t, p.ErrorValue(), missing, p.Name())
	}
}

type customID struct{ n int }

func TestRegister_OverridesDefaultDispatch(t *testing.T) {
	valuehash.Register(func(c customID, p policy.Policy) uint64 {
		return p.HashUint64(uint64(c.n) * 7)
	})

	for _, p := range allPolicies {
		require.Equal(t, p.HashUint64(uint64(42)*7), valuehash.Hash(customID{n: 42}, p), p.Name())
	}
}

type addrHolder struct {
	Tag string
	Ptr addr
}

func TestHash_AddressableNestedInStructIsDispatched(t *testing.T) {
	for _, p := range allPolicies {
		a := valuehash.Hash(addrHolder{Tag: "x", Ptr: addr{a: 0x1000}}, p)
		b := valuehash.Hash(addrHolder{Tag: "x", Ptr: addr{a: 0x2000}}, p)
		require.NotEqual(t, a, b, p.Name())

		// The Ptr field's contribution must be its Addressable() value,
		// not addr's own (unexported, so invisible to reflection anyway)
		// field contents -- confirm it matches the struct's other field
		// held constant while only the address varies.
		sameAddr := valuehash.Hash(addrHolder{Tag: "x", Ptr: addr{a: 0x1000}}, p)
		require.Equal(t, a, sameAddr, p.Name())
	}
}

func TestHash_AddressableNestedInSliceAndMapIsDispatched(t *testing.T) {
	for _, p := range allPolicies {
		s1 := []addr{{a: 0x1000}, {a: 0x2000}}
		s2 := []addr{{a: 0x1000}, {a: 0x3000}}
		require.NotEqual(t, valuehash.Hash(s1, p), valuehash.Hash(s2, p), p.Name())

		m1 := map[string]addr{"k": {a: 0x1000}}
		m2 := map[string]addr{"k": {a: 0x2000}}
		require.NotEqual(t, valuehash.Hash(m1, p), valuehash.Hash(m2, p), p.Name())
	}
}

type variantHolder struct {
	Items []taggedVariant
}

func TestHash_VariantNestedInSliceIsDispatched(t *testing.T) {
	for _, p := range allPolicies {
		a := valuehash.Hash(variantHolder{Items: []taggedVariant{{tag: 1, val: "x", ok: true}}}, p)
		b := valuehash.Hash(variantHolder{Items: []taggedVariant{{tag: 2, val: "x", ok: true}}}, p)
		require.NotEqual(t, a, b, p.Name())
	}
}

type customIDHolder struct {
	ID customID
}

func TestRegister_OverridesDispatchWhenNestedInStructAndSlice(t *testing.T) {
	valuehash.Register(func(c customID, p policy.Policy) uint64 {
		return p.HashUint64(uint64(c.n) * 7)
	})

	for _, p := range allPolicies {
		require.Equal(t, p.Combine(0, p.HashUint64(uint64(42)*7)), valuehash.Hash(customIDHolder{ID: customID{n: 42}}, p), p.Name())

		ids := []customID{{n: 1}, {n: 2}}
		expected := p.Combine(p.Combine(p.HashUint64(2), p.HashUint64(1*7)), p.HashUint64(2*7))
		require.Equal(t, expected, valuehash.Hash(ids, p), p.Name())
	}
}

func TestHash_UsesMockPolicyMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := policytest.NewMockPolicy(ctrl)

	mock.EXPECT().HashBytes([]byte("abc")).Return(uint64(123))

	require.Equal(t, uint64(123), valuehash.Hash("abc", mock))
}
