package extraction

import (
	"strings"
	"time"

	"github.com/jonathan/identity-verifier/internal/types"
)

// keyMapping maps lower-cased full flattened paths (section_field) of the
// extraction output to canonical profile field names.
var keyMapping = map[string]string{
	"personal information_full name":            "name",
	"personal information_father's name":        "father_name",
	"personal information_mother's name":        "mother_name",
	"personal information_date of birth":        "date_of_birth",
	"personal information_gender":               "gender",
	"personal information_nationality":          "nationality",
	"personal information_religion":             "religion",
	"personal information_caste / category":     "category",
	"personal information_marital status":       "marital_status",
	"personal information_identification marks": "id_marks",
	"contact information_phone number(s)":       "contact",
	"contact information_email address(es)":     "email",
	"contact information_full address":          "full_address",
	"document identifiers_aadhaar number":       "aadhaar_number",
	"document identifiers_pan number":           "pan_number",
}

// CanonicalDetails maps the well-known section paths of an extracted record
// onto canonical profile field names. Paths outside the mapping are dropped;
// single-element lists collapse to their contained value; a recognizable
// dd/mm/yyyy date of birth is rewritten to ISO form up front. The result is
// a flat record suitable for direct reconciliation.
func CanonicalDetails(raw types.ExtractedRecord) types.ExtractedRecord {
	flat := make(map[string]any)
	flattenPaths(raw, "", flat)

	canonical := make(types.ExtractedRecord)
	for path, value := range flat {
		field, ok := keyMapping[strings.ToLower(path)]
		if !ok {
			continue
		}
		if list, isList := value.([]any); isList {
			if len(list) == 0 {
				continue
			}
			value = list[0]
		}
		canonical[field] = value
	}

	if dob, ok := canonical["date_of_birth"].(string); ok {
		if t, err := time.Parse("2/1/2006", dob); err == nil {
			canonical["date_of_birth"] = t.Format("2006-01-02")
		}
	}
	return canonical
}

// flattenPaths flattens a nested record keyed by the full path joined with
// underscores, unlike the reconciliation flattener which keeps leaf keys
// only.
func flattenPaths(data map[string]any, parent string, out map[string]any) {
	for key, value := range data {
		path := key
		if parent != "" {
			path = parent + "_" + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenPaths(nested, path, out)
			continue
		}
		out[path] = value
	}
}
