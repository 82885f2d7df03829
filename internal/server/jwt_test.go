package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/identity-verifier/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateToken("verifier-client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "verifier-client", claims.ClientID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateTokenErrors(t *testing.T) {
	service := newTestJWTService()

	t.Run("empty token", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 1})
		token, err := other.GenerateToken("verifier-client")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now()
		claims := &Claims{
			ClientID: "verifier-client",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none token with the same claims shape
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{ClientID: "verifier-client"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}
