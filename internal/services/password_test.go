package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	passwords := []string{"hunter2", "correct horse battery staple", "päss wörd"}

	for _, p := range passwords {
		hash, err := HashPassword(p)
		require.NoError(t, err)

		assert.NotEqual(t, p, hash, "hash must never equal the plaintext")
		assert.True(t, CheckPassword(p, hash))
		assert.False(t, CheckPassword(p+"x", hash))
	}
}

func TestHashPasswordIsRandomized(t *testing.T) {
	a, err := HashPassword("same input")
	require.NoError(t, err)
	b, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "bcrypt salts must differ between calls")
}
