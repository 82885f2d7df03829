// Package config provides authentication configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24" // default
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}

// CredentialConfig holds configuration for service credential hashing and
// verification.
type CredentialConfig struct {
	BcryptCost int
	Pepper     string // optional global secret for additional security
}

// NewCredentialConfig creates a new credential configuration from environment
// variables. It reads BCRYPT_COST (default: 12) and optionally
// CREDENTIAL_PEPPER.
func NewCredentialConfig() (*CredentialConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &CredentialConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("CREDENTIAL_PEPPER"), // empty if not set
	}, nil
}

// HashSecret hashes a client secret using bcrypt (with optional pepper).
func (c *CredentialConfig) HashSecret(secret string) (string, error) {
	input := secret
	if c.Pepper != "" {
		input = secret + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hash), nil
}

// VerifySecret verifies a client secret against a stored hash (with optional
// pepper).
func (c *CredentialConfig) VerifySecret(secret, storedHash string) bool {
	input := secret
	if c.Pepper != "" {
		input = secret + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input))
	return err == nil
}
