package blake3_test

import (
	"testing"

	"sethash.dev/pkg/crypto/blake3"

	"github.com/stretchr/testify/require"
)

func TestSum256Deterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	require.Equal(t, blake3.Sum256(data), blake3.Sum256(data))
}

func TestNewMatchesSum256(t *testing.T) {
	data := []byte("the quick brown fox")
	h := blake3.New()
	_, err := h.Write(data)
	require.NoError(t, err)
	sum := blake3.Sum256(data)
	require.Equal(t, sum[:], h.Sum(nil))
}

func TestSumVariableLength(t *testing.T) {
	out := blake3.SumVariable([]byte("data"), 100)
	require.Len(t, out, 100)
}

func TestSumVariablePrefixMatchesShorterRequest(t *testing.T) {
	long := blake3.SumVariable([]byte("data"), 64)
	short := blake3.SumVariable([]byte("data"), 32)
	require.Equal(t, long[:32], short)
}

func TestNewKeyedRequiresThirtyTwoByteKey(t *testing.T) {
	_, err := blake3.NewKeyed(make([]byte, 16))
	require.Error(t, err)

	h, err := blake3.NewKeyed(make([]byte, 32))
	require.NoError(t, err)
	require.NotNil(t, h)
}
