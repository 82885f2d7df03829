// Package profile provides access to trusted applicant profiles and
// persistence of verification outcomes.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/identity-verifier/internal/types"
)

// Store is the profile data access interface. GetProfile returns the
// standardized profile record for a user; SaveVerification persists a
// completed verdict report.
type Store interface {
	GetProfile(ctx context.Context, userID string) (types.ProfileRecord, error)
	SaveVerification(ctx context.Context, v *Verification) error
	ListVerifications(ctx context.Context, userID string, limit int) ([]Verification, error)
}

// Verification is a persisted verification outcome.
type Verification struct {
	ID             uuid.UUID            `json:"id"`
	UserID         string               `json:"user_id"`
	DocumentType   string               `json:"document_type,omitempty"`
	DocumentNumber string               `json:"document_number,omitempty"`
	Report         *types.VerdictReport `json:"report"`
	CreatedAt      time.Time            `json:"created_at"`
}

// NotFoundError indicates no profile exists for a user.
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.UserID)
}

// fieldFallbacks maps each canonical profile field to the source keys that
// may carry it, in preference order. Application records come from multiple
// intake forms with inconsistent key naming.
var fieldFallbacks = map[string][]string{
	"name":            {"name", "fullName"},
	"father_name":     {"father_name", "fatherName", "father"},
	"mother_name":     {"mother_name", "motherName", "mother"},
	"date_of_birth":   {"date_of_birth", "dob", "birthDate"},
	"contact":         {"contact", "phone", "mobile", "phoneNumber"},
	"address":         {"address", "fullAddress", "residentialAddress"},
	"category":        {"category", "casteCategory", "caste"},
	"previous_school": {"previous_school", "previousSchool", "previousSchool_College"},
	"year_of_passing": {"year_of_passing", "passingYear", "YearOfPassing"},
	"marks":           {"marks", "grades", "percentage", "Marks_Grade"},
}

// standardize builds a canonical profile record from a raw application
// record, resolving each canonical field through its fallback keys. Fields
// with no source key present get an empty string so they still count in
// reconciliation.
func standardize(raw map[string]any) types.ProfileRecord {
	record := make(types.ProfileRecord, len(fieldFallbacks))
	for field, sources := range fieldFallbacks {
		record[field] = ""
		for _, source := range sources {
			if v, ok := raw[source]; ok {
				record[field] = v
				break
			}
		}
	}
	return record
}
