package lthash_test

import (
	"testing"

	"sethash.dev/pkg/crypto/lthash"
	"sethash.dev/pkg/crypto/lthash/lthashtest"
	"sethash.dev/pkg/crypto/lthash/mathengine"

	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestHash16_EmptyChecksumIsZero(t *testing.T) {
	h := lthash.NewHash16()
	require.NoError(t, h.SetKey([]byte(testKey)))
	require.Equal(t, make([]byte, 2048), h.Checksum())
}

func TestHash16_AddThenRemoveIsIdentity(t *testing.T) {
	g := lthashtest.New(1)
	h := lthash.NewHash16()
	require.NoError(t, h.SetKey(g.Key(32)))

	zero := append([]byte(nil), h.Checksum()...)
	obj := g.Object(64)

	require.NoError(t, h.Add(obj))
	require.False(t, h.ChecksumEqualBytes(zero))

	require.NoError(t, h.Remove(obj))
	require.True(t, h.ChecksumEqualBytes(zero))
}

func TestHash16_AddIsOrderIndependent(t *testing.T) {
	g := lthashtest.New(2)
	key := g.Key(32)
	objs := g.Objects(20, 8, 128)

	a := lthash.NewHash16()
	require.NoError(t, a.SetKey(key))
	for _, o := range objs {
		require.NoError(t, a.Add(o))
	}

	b := lthash.NewHash16()
	require.NoError(t, b.SetKey(key))
	for _, i := range g.Permutation(len(objs)) {
		require.NoError(t, b.Add(objs[i]))
	}

	require.True(t, a.Equal(b))
}

func TestHash16_CombineAddEqualsUnionOfSingletons(t *testing.T) {
	g := lthashtest.New(3)
	key := g.Key(32)
	objs := g.Objects(10, 8, 64)

	whole := lthash.NewHash16()
	require.NoError(t, whole.SetKey(key))
	for _, o := range objs {
		require.NoError(t, whole.Add(o))
	}

	combined := lthash.NewHash16()
	require.NoError(t, combined.SetKey(key))
	for _, o := range objs {
		single := lthash.NewHash16()
		require.NoError(t, single.SetKey(key))
		require.NoError(t, single.Add(o))
		require.NoError(t, combined.CombineAdd(single))
	}

	require.True(t, whole.Equal(combined))
}

func TestHash16_CombineAddRequiresMatchingKey(t *testing.T) {
	g := lthashtest.New(4)
	a := lthash.NewHash16()
	require.NoError(t, a.SetKey(g.Key(32)))
	b := lthash.NewHash16()
	require.NoError(t, b.SetKey(g.Key(32)))

	err := a.CombineAdd(b)
	require.ErrorIs(t, err, lthash.ErrKeyMismatch)
}

func TestHash16_CombineRemoveIsInverseOfCombineAdd(t *testing.T) {
	g := lthashtest.New(5)
	key := g.Key(32)

	a := lthash.NewHash16()
	require.NoError(t, a.SetKey(key))
	require.NoError(t, a.Add(g.Object(16)))
	original := a.Clone()

	b := lthash.NewHash16()
	require.NoError(t, b.SetKey(key))
	require.NoError(t, b.Add(g.Object(16)))

	require.NoError(t, a.CombineAdd(b))
	require.NoError(t, a.CombineRemove(b))
	require.True(t, a.Equal(original))
}

func TestHash16_BackendsAgreeEndToEnd(t *testing.T) {
	g := lthashtest.New(6)
	key := g.Key(32)
	objs := g.Objects(15, 8, 64)

	backends := []mathengine.Backend{mathengine.Scalar, mathengine.Vector128, mathengine.Vector256}
	var reference []byte
	for i, backend := range backends {
		h := lthash.NewHash16WithBackend(backend)
		require.NoError(t, h.SetKey(key))
		for _, o := range objs {
			require.NoError(t, h.Add(o))
		}
		if i == 0 {
			reference = append([]byte(nil), h.Checksum()...)
		} else {
			require.True(t, h.ChecksumEqualBytes(reference), "backend %s disagrees", backend.Name())
		}
	}
}

func TestHash16_SetChecksumRejectsWrongLength(t *testing.T) {
	_, err := lthash.NewHash16WithChecksum(make([]byte, 10))
	require.ErrorIs(t, err, lthash.ErrInvalidChecksum)
}

func TestHash16_SetKeyRejectsOutOfRangeLengths(t *testing.T) {
	h := lthash.NewHash16()
	require.ErrorIs(t, h.SetKey(make([]byte, 15)), lthash.ErrInvalidKeySize)
	require.ErrorIs(t, h.SetKey(make([]byte, 65)), lthash.ErrInvalidKeySize)
	require.NoError(t, h.SetKey(make([]byte, 16)))
	require.NoError(t, h.SetKey(make([]byte, 64)))
}

func TestHash16_ZeroizeClearsKey(t *testing.T) {
	g := lthashtest.New(7)
	h := lthash.NewHash16()
	key := g.Key(32)
	require.NoError(t, h.SetKey(key))
	require.True(t, h.KeyEqualBytes(key))

	h.Zeroize()
	require.False(t, h.KeyEqualBytes(key))
	require.True(t, h.KeyEqualBytes(nil))
}

func TestHash20_ChecksumHasNoPaddingBits(t *testing.T) {
	g := lthashtest.New(8)
	h := lthash.NewHash20()
	require.NoError(t, h.SetKey(g.Key(32)))
	for _, o := range g.Objects(25, 8, 64) {
		require.NoError(t, h.Add(o))
	}
	require.True(t, mathengine.Scalar.CheckPadding(h.Checksum(), mathengine.Bits20))
}

func TestHash20_SetChecksumRejectsNonZeroPadding(t *testing.T) {
	bad := make([]byte, lthash.ElementCount20/3*8)
	bad[2] |= 0x10 // bit 20 of word 0: the padding bit right after its first 20-bit data group
	_, err := lthash.NewHash20WithChecksum(bad)
	require.ErrorIs(t, err, lthash.ErrInvalidChecksum)
}

func TestHash32_AddThenRemoveIsIdentity(t *testing.T) {
	g := lthashtest.New(9)
	h := lthash.NewHash32()
	require.NoError(t, h.SetKey(g.Key(40)))

	zero := append([]byte(nil), h.Checksum()...)
	obj := g.Object(100)

	require.NoError(t, h.Add(obj))
	require.NoError(t, h.Remove(obj))
	require.True(t, h.ChecksumEqualBytes(zero))
}

func TestHash32_DifferentKeysProduceDifferentChecksums(t *testing.T) {
	g := lthashtest.New(10)
	obj := g.Object(64)

	a := lthash.NewHash32()
	require.NoError(t, a.SetKey(g.Key(32)))
	require.NoError(t, a.Add(obj))

	b := lthash.NewHash32()
	require.NoError(t, b.SetKey(g.Key(32)))
	require.NoError(t, b.Add(obj))

	require.False(t, a.Equal(b))
}

func TestHash32_ChecksumEqualConstantTime(t *testing.T) {
	g := lthashtest.New(11)
	key := g.Key(32)
	obj := g.Object(64)

	a := lthash.NewHash32()
	require.NoError(t, a.SetKey(key))
	require.NoError(t, a.Add(obj))

	b := a.Clone()
	require.True(t, a.ChecksumEqualConstantTime(b))

	require.NoError(t, b.Add(g.Object(64)))
	require.False(t, a.ChecksumEqualConstantTime(b))
}
