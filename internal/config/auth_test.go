package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults expiration to 24 hours", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")

		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("rejects non-numeric expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("rejects zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestNewCredentialConfig(t *testing.T) {
	t.Run("defaults cost to 12", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "")
		cfg, err := NewCredentialConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("rejects cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "9")
		_, err := NewCredentialConfig()
		assert.Error(t, err)

		t.Setenv("BCRYPT_COST", "15")
		_, err = NewCredentialConfig()
		assert.Error(t, err)
	})
}

func TestHashAndVerifySecret(t *testing.T) {
	cfg := &CredentialConfig{BcryptCost: 10}

	hash, err := cfg.HashSecret("client-secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifySecret("client-secret", hash))
	assert.False(t, cfg.VerifySecret("wrong-secret", hash))
}

func TestVerifySecretWithPepper(t *testing.T) {
	peppered := &CredentialConfig{BcryptCost: 10, Pepper: "pepper"}
	plain := &CredentialConfig{BcryptCost: 10}

	hash, err := peppered.HashSecret("client-secret")
	require.NoError(t, err)

	assert.True(t, peppered.VerifySecret("client-secret", hash))
	assert.False(t, plain.VerifySecret("client-secret", hash), "hash is bound to the pepper")
}
