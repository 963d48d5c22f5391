package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("p1-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "p1-secret", hash, "hash must not be the plaintext")

	assert.True(t, CheckPassword("p1-secret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_IndependentSalts(t *testing.T) {
	// The login and withdrawal secrets may coincide; their stored hashes
	// still must not.
	h1, err := HashPassword("same-secret")
	require.NoError(t, err)
	h2, err := HashPassword("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("same-secret", h1))
	assert.True(t, CheckPassword("same-secret", h2))
}
