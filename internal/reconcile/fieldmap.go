package reconcile

import (
	"sort"
	"strings"
)

// FieldMap maps a canonical profile field name to the ordered list of alias
// labels that may denote that field on a given document. Alias order is
// search order for the alias matching strategy.
type FieldMap map[string][]string

// Tables holds per-document-type field maps plus a fallback map used when the
// document type is absent or unrecognized. Tables is a plain value passed to
// the engine at construction time; concurrent comparisons with different
// tables never interfere.
type Tables struct {
	byType   map[string]FieldMap
	fallback FieldMap
}

// NewTables builds a Tables from per-type field maps and a fallback map.
func NewTables(byType map[string]FieldMap, fallback FieldMap) *Tables {
	return &Tables{byType: byType, fallback: fallback}
}

// Known reports whether a document type has its own field map.
func (t *Tables) Known(docType string) bool {
	_, ok := t.byType[strings.ToLower(docType)]
	return ok
}

// Fields returns the canonical fields of a document type's map in sorted
// order, or nil when the type is unknown. For unknown types the caller
// compares the profile's own fields instead.
func (t *Tables) Fields(docType string) []string {
	fm, ok := t.byType[strings.ToLower(docType)]
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(fm))
	for f := range fm {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Aliases returns the alias list for a canonical field under the given
// document type, falling back to the default map for unknown types. A field
// with no mapping entry yields nil; the matcher still falls back to substring
// search on the field name itself.
func (t *Tables) Aliases(docType, field string) []string {
	fm, ok := t.byType[strings.ToLower(docType)]
	if !ok {
		fm = t.fallback
	}
	return fm[field]
}

// DefaultTables returns the hand-curated field maps for the supported Indian
// document types plus the default map applied to unrecognized documents.
func DefaultTables() *Tables {
	return NewTables(
		map[string]FieldMap{
			"aadhaar": {
				"name":           {"Name", "Full Name", "Holder's Name"},
				"father_name":    {"father_name", "fatherName", "father", "Father", "Father's Name", "F/O", "S/O"},
				"date_of_birth":  {"DOB", "Date of Birth", "Year of Birth"},
				"contact":        {"Mobile", "Phone", "Contact Number", "Mobile:", "Phone Number", "Phone Numbers", "Contact", "contact"},
				"address":        {"Address", "Residential Address"},
				"aadhaar_number": {"Aadhar No", "UID", "Unique ID", "Aadhaar Number", "Aadhaar No", "Aadhaar", "aadhaar"},
			},
			"passport": {
				"name":            {"Name", "Full Name", "Holder's Name"},
				"father_name":     {"father_name", "fatherName", "father", "Father", "Father's Name", "F/O", "S/O"},
				"date_of_birth":   {"DOB", "Date of Birth"},
				"passport_number": {"Passport No", "Document Number"},
				"nationality":     {"Nationality"},
				"place_of_birth":  {"Place of Birth"},
			},
			"pan": {
				"name":          {"Name", "Full Name", "Holder's Name"},
				"father_name":   {"father_name", "fatherName", "father", "Father", "Father's Name", "F/O", "S/O"},
				"date_of_birth": {"DOB", "Date of Birth"},
				"pan_number":    {"PAN", "PAN Number", "PAN No", "Permanent Account Number"},
			},
			"bonafide": {
				"name":        {"Name", "Student Name"},
				"father_name": {"father_name", "fatherName", "father", "Father", "Father's Name", "F/O", "S/O"},
				"university":  {"University", "University Name"},
				"college":     {"College", "College Name", "Institution"},
				"course":      {"Course", "Degree"},
				"year":        {"Year", "Academic Year"},
			},
		},
		FieldMap{
			"name":            {"Name", "Full Name", "Holder's Name", "Student Name"},
			"father_name":     {"father_name", "fatherName", "father", "Father", "Father's Name", "F/O", "S/O"},
			"mother_name":     {"Mother", "Mother Name", "Mother's Name", "D/O"},
			"date_of_birth":   {"DOB", "Date of Birth", "Birth Date", "Date of Issue", "dob"},
			"contact":         {"Mobile", "Phone", "Contact Number", "Mobile:"},
			"address":         {"Address", "Residential Address"},
			"category":        {"Category", "Caste", "Caste Category"},
			"previous_school": {"School", "College", "Institution"},
			"year_of_passing": {"Year of Passing", "Passing Year"},
			"marks":           {"Grade", "Marks", "Percentage"},
		},
	)
}
