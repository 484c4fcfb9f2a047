package auth

import (
	"testing"
	"time"

	"evently_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-123", "user@test.com", "provider")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "provider", claims.Role)
	assert.Equal(t, "evently", claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, 60)
	token, err := GenerateToken("user-123", "user@test.com", "user")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.JWT.Secret = "a-different-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, 60)

	claims := Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
