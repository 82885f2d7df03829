// Package server provides the HTTP REST API for the identity verifier.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/profile"
	"github.com/jonathan/identity-verifier/internal/reconcile"
)

// ErrInvalidCredentials indicates invalid client credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid client ID or secret"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound  *profile.NotFoundError
		fieldType *reconcile.FieldTypeError
		parseErr  *extraction.ParseError
		apiErr    *extraction.APICallError
	)

	switch {
	case errors.As(err, new(*ErrInvalidCredentials)):
		return http.StatusUnauthorized
	case errors.As(err, new(*ErrValidation)):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &fieldType):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
