package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/identity-verifier/internal/types"
)

// PostgresStore is a Store backed by a PostgreSQL connection pool.
// Application records live in an applications table with a JSONB data
// column; verification outcomes go to a verifications table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetProfile loads the raw application record for a user and standardizes
// it into the canonical profile fields.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (types.ProfileRecord, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM applications WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{UserID: userID}
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode application %s: %w", userID, err)
	}
	return standardize(raw), nil
}

// SaveVerification stores a verification outcome and fills in its ID and
// timestamp if unset.
func (s *PostgresStore) SaveVerification(ctx context.Context, v *Verification) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	report, err := json.Marshal(v.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO verifications (id, user_id, document_type, document_number, report, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.UserID, v.DocumentType, v.DocumentNumber, report, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}
	return nil
}

// ListVerifications retrieves recent verifications for a user
func (s *PostgresStore) ListVerifications(ctx context.Context, userID string, limit int) ([]Verification, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, document_type, document_number, report, created_at
		 FROM verifications WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	defer rows.Close()

	var out []Verification
	for rows.Next() {
		var v Verification
		var report []byte
		if err := rows.Scan(&v.ID, &v.UserID, &v.DocumentType, &v.DocumentNumber, &report, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan verification: %w", err)
		}
		if len(report) > 0 {
			if err := json.Unmarshal(report, &v.Report); err != nil {
				return nil, fmt.Errorf("failed to decode report %s: %w", v.ID, err)
			}
		}
		out = append(out, v)
	}
	return out, nil
}
