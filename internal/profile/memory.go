package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/identity-verifier/internal/types"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu            sync.RWMutex
	applications  map[string]map[string]any
	verifications []*Verification
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		applications: make(map[string]map[string]any),
	}
}

// PutApplication stores a raw application record for a user.
func (s *MemoryStore) PutApplication(userID string, raw map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[userID] = raw
}

// GetProfile returns the standardized profile for a user.
func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (types.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.applications[userID]
	if !ok {
		return nil, &NotFoundError{UserID: userID}
	}
	return standardize(raw), nil
}

// SaveVerification records a verification outcome, assigning an ID and
// timestamp if unset.
func (s *MemoryStore) SaveVerification(ctx context.Context, v *Verification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	s.verifications = append(s.verifications, v)
	return nil
}

// ListVerifications returns the most recent verifications for a user,
// newest first.
func (s *MemoryStore) ListVerifications(ctx context.Context, userID string, limit int) ([]Verification, error) {
	if limit == 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Verification
	for i := len(s.verifications) - 1; i >= 0 && len(out) < limit; i-- {
		if s.verifications[i].UserID == userID {
			out = append(out, *s.verifications[i])
		}
	}
	return out, nil
}
