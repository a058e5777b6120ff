package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oviedoj/userbase-be/internal/auth"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "Typical password",
			password: "secret1",
		},
		{
			name:     "Long password",
			password: "a-much-longer-password-with-punctuation!#%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := auth.HashPassword(tt.password)
			require.NoError(t, err)

			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, auth.ComparePassword(tt.password, hash))
		})
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	// Same plaintext must yield a different hash each call.
	assert.NotEqual(t, first, second)
	assert.True(t, auth.ComparePassword("secret1", first))
	assert.True(t, auth.ComparePassword("secret1", second))
}

func TestComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Matching password",
			password: "secret1",
			hash:     hash,
			want:     true,
		},
		{
			name:     "Wrong password",
			password: "secret2",
			hash:     hash,
			want:     false,
		},
		{
			name:     "Garbage hash",
			password: "secret1",
			hash:     "not-a-bcrypt-hash",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.ComparePassword(tt.password, tt.hash))
		})
	}
}
