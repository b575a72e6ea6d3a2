package password_test

import (
	"strings"
	"testing"

	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt of "password" at cost 10
const knownHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		err      error
	}{
		{name: "default admin password", password: "hotel123"},
		{name: "special characters", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode", password: "kata-sandi-rahasia-ü"},
		{name: "exactly the bcrypt limit", password: strings.Repeat("a", password.MaxLength)},
		{name: "empty", password: "", err: password.ErrEmptyPassword},
		{name: "over the bcrypt limit", password: strings.Repeat("a", password.MaxLength+1), err: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("hotel123")
	require.NoError(t, err)

	second, err := password.Hash("hotel123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("hotel123", first))
	assert.NoError(t, password.Verify("hotel123", second))
}

func TestFromConfig(t *testing.T) {
	t.Run("configured hash is used as is", func(t *testing.T) {
		hash, err := password.FromConfig("ignored", knownHash)

		require.NoError(t, err)
		assert.Equal(t, knownHash, hash)
		assert.NoError(t, password.Verify("password", hash))
		assert.ErrorIs(t, password.Verify("ignored", hash), password.ErrInvalidPassword)
	})

	t.Run("plain password is hashed", func(t *testing.T) {
		hash, err := password.FromConfig("hotel123", "")

		require.NoError(t, err)
		assert.NoError(t, password.Verify("hotel123", hash))
	})

	t.Run("malformed hash is rejected", func(t *testing.T) {
		hash, err := password.FromConfig("hotel123", "not-a-bcrypt-hash")

		require.ErrorIs(t, err, password.ErrMalformedHash)
		assert.Empty(t, hash)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := password.FromConfig("", "")

		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
		err      error
	}{
		{name: "match", password: "password", hash: knownHash},
		{name: "wrong password", password: "hotel123", hash: knownHash, err: password.ErrInvalidPassword},
		{name: "case matters", password: "Password", hash: knownHash, err: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: knownHash, err: password.ErrInvalidPassword},
		{name: "empty hash", password: "password", hash: "", err: password.ErrInvalidPassword},
		{name: "garbage hash", password: "password", hash: "invalid_hash", err: password.ErrVerifyingPassword},
		{name: "truncated hash", password: "password", hash: knownHash[:10], err: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.err == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.err)
		})
	}
}
