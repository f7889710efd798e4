package blake2b_test

import (
	"testing"

	"sethash.dev/pkg/crypto/blake2b"

	"github.com/stretchr/testify/require"
)

func TestSum256Deterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	require.Equal(t, blake2b.Sum256(data), blake2b.Sum256(data))
}

func TestNew256MatchesSum256(t *testing.T) {
	data := []byte("the quick brown fox")
	h, err := blake2b.New256(nil)
	require.NoError(t, err)
	_, err = h.Write(data)
	require.NoError(t, err)
	sum := blake2b.Sum256(data)
	require.Equal(t, sum[:], h.Sum(nil))
}

func TestNew256KeyedDiffersFromUnkeyed(t *testing.T) {
	data := []byte("the quick brown fox")
	keyed, err := blake2b.New256([]byte("0123456789abcdef"))
	require.NoError(t, err)
	_, err = keyed.Write(data)
	require.NoError(t, err)

	unkeyed := blake2b.Sum256(data)
	require.NotEqual(t, unkeyed[:], keyed.Sum(nil))
}

func TestNew512ProducesSixtyFourBytes(t *testing.T) {
	h, err := blake2b.New512(nil)
	require.NoError(t, err)
	_, err = h.Write([]byte("data"))
	require.NoError(t, err)
	require.Len(t, h.Sum(nil), 64)
}
