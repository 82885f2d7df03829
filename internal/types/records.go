// Package types provides type definitions for structured data used throughout the identity-verifier system.
package types

// ProfileRecord is the trusted profile fetched from the profile store,
// keyed by canonical field name. Values are scalars; nil and empty string
// are equivalent for comparison purposes.
type ProfileRecord map[string]any

// ExtractedRecord is the raw structured output of the document extraction
// pipeline: an arbitrarily nested mapping whose leaves are strings or
// single-element lists of strings.
type ExtractedRecord map[string]any

// FieldComparisonResult holds the comparison outcome for a single field.
type FieldComparisonResult struct {
	ProfileValue   string `json:"profile_value"`
	ExtractedValue string `json:"extracted_value"`
	Similarity     int    `json:"similarity"`
	Match          bool   `json:"match"`
}

// VerdictReport is the aggregate outcome of reconciling a profile against
// an extracted record. Created fresh per comparison; never persisted by the
// engine itself.
type VerdictReport struct {
	Verdict         string                           `json:"verdict"`
	SimilarityScore float64                          `json:"similarity_score"`
	MatchedFields   int                              `json:"matched_fields"`
	TotalFields     int                              `json:"total_fields"`
	DocumentType    string                           `json:"document_type,omitempty"`
	Details         map[string]FieldComparisonResult `json:"details"`
}

// Verdict values for VerdictReport.Verdict.
const (
	VerdictCorrect   = "correct"
	VerdictIncorrect = "incorrect"
)
