package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("super_secret_123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_secret_123", hash)

	assert.True(t, CheckPasswordHash("super_secret_123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}
