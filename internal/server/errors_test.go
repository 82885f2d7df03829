package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/profile"
	"github.com/jonathan/identity-verifier/internal/reconcile"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"validation error", &ErrValidation{Field: "user_id", Message: "required"}, http.StatusBadRequest},
		{"profile not found", &profile.NotFoundError{UserID: "u1"}, http.StatusNotFound},
		{"field type error", &reconcile.FieldTypeError{Field: "name"}, http.StatusUnprocessableEntity},
		{"parse error", &extraction.ParseError{Message: "no JSON object"}, http.StatusUnprocessableEntity},
		{"api call error", &extraction.APICallError{Message: "gemini unavailable"}, http.StatusBadGateway},
		{"wrapped error keeps mapping", fmt.Errorf("lookup: %w", &profile.NotFoundError{UserID: "u1"}), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
