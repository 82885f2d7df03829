// Package server provides the HTTP REST API for the identity verifier.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/identity-verifier/internal/config"
)

// TokenRequest represents the request body for /auth/token.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// TokenResponse represents the response for /auth/token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// AuthHandler issues JWT tokens to calling services that present valid
// client credentials.
type AuthHandler struct {
	clients     map[string]string // client ID -> bcrypt secret hash
	credentials *config.CredentialConfig
	jwtService  *JWTService
	validator   *validator.Validate
	expiresIn   int
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(clients map[string]string, credentials *config.CredentialConfig, jwtService *JWTService, expirationHours int) *AuthHandler {
	return &AuthHandler{
		clients:     clients,
		credentials: credentials,
		jwtService:  jwtService,
		validator:   validator.New(),
		expiresIn:   expirationHours * 3600,
	}
}

// IssueToken handles client credential token requests.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	storedHash, ok := h.clients[req.ClientID]
	if !ok || !h.credentials.VerifySecret(req.ClientSecret, storedHash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.expiresIn,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
