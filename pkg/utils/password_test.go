package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("my-password")
	require.NoError(t, err)
	assert.NotEqual(t, "my-password", hash)

	assert.True(t, CheckPasswordHash("my-password", hash))
	assert.False(t, CheckPasswordHash("other-password", hash))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("my-password")
	require.NoError(t, err)
	second, err := HashPassword("my-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
