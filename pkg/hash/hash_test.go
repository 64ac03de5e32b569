package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	h := NewSHA256Hasher("salt")

	first, err := h.Hash("token")
	require.NoError(t, err)
	second, err := h.Hash("token")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)

	other, err := NewSHA256Hasher("pepper").Hash("token")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
