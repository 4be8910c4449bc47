package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "rahasia123", hash, "hash must not be the plaintext")

	assert.True(t, VerifyPassword(hash, "rahasia123"))
	assert.False(t, VerifyPassword(hash, "salah"))
	assert.False(t, VerifyPassword("", "rahasia123"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("sama", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("sama", bcrypt.MinCost)
	require.NoError(t, err)
	// bcrypt salts every hash, so equal inputs never collide.
	assert.NotEqual(t, h1, h2)
}
