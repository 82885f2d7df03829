package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	clientID string
}

func (s *stubClaims) GetClientID() string { return s.clientID }

type stubValidator struct {
	clientID string
	err      error
}

func (s *stubValidator) ValidateToken(string) (ClientIDGetter, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &stubClaims{clientID: s.clientID}, nil
}

func TestAuthMiddleware(t *testing.T) {
	handler := AuthMiddleware(&stubValidator{clientID: "verifier-client"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, err := GetClientID(r)
			require.NoError(t, err)
			assert.Equal(t, "verifier-client", clientID)
			w.WriteHeader(http.StatusOK)
		}),
	)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid bearer token", "Bearer good-token", http.StatusOK},
		{"lowercase bearer prefix", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", "good-token", http.StatusUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/verify", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	handler := AuthMiddleware(&stubValidator{err: errors.New("token expired")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for invalid tokens")
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/verify", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetClientIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetClientID(req)
	assert.Error(t, err)
}
