package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	// Same input, different digests: stored hashes cannot be compared
	// for equality to detect shared passwords.
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, "pw123", h1)
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(h, "pw123"))
	assert.False(t, VerifyPassword(h, "pw124"))
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "pw123"), "malformed hash reports false, not an error")
	assert.False(t, VerifyPassword("", "pw123"))
}
