package reconcile

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/identity-verifier/internal/types"
)

// DefaultThreshold is applied to both the per-field and aggregate decisions
// when Options leaves them unset.
const DefaultThreshold = 60

// Options configures an Engine. Zero-value fields fall back to defaults:
// DefaultTables, the alias resolver, threshold 60 for both knobs, and the
// KeepLast collision policy.
type Options struct {
	Tables *Tables
	// Resolver selects the matching strategy for extracted values.
	Resolver Resolver
	// FieldThreshold is the minimum similarity for a single field to match.
	// Values <= 0 select DefaultThreshold; a cutoff of 0, which would match
	// every field, is not expressible.
	FieldThreshold int
	// VerdictThreshold is the minimum aggregate score for a "correct" verdict.
	// Kept separate from FieldThreshold even though most deployments set both
	// to the same value. Values <= 0 select DefaultThreshold.
	VerdictThreshold int
	Collision        CollisionPolicy
}

// Engine reconciles profile records against extracted document records.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	tables           *Tables
	resolver         Resolver
	fieldThreshold   int
	verdictThreshold int
	collision        CollisionPolicy
}

// NewEngine builds an Engine from Options, applying defaults for unset fields.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		tables:           opts.Tables,
		resolver:         opts.Resolver,
		fieldThreshold:   opts.FieldThreshold,
		verdictThreshold: opts.VerdictThreshold,
		collision:        opts.Collision,
	}
	if e.tables == nil {
		e.tables = DefaultTables()
	}
	if e.resolver == nil {
		e.resolver = AliasResolver{}
	}
	if e.fieldThreshold <= 0 {
		e.fieldThreshold = DefaultThreshold
	}
	if e.verdictThreshold <= 0 {
		e.verdictThreshold = DefaultThreshold
	}
	return e
}

// Compare reconciles a profile against an extracted record and returns the
// verdict report. The document type selects a field table; unrecognized or
// empty types fall back to comparing the profile's own fields. Malformed
// values never error: they degrade to non-matches. The only error is a
// profile value that is neither a scalar nor nil.
func (e *Engine) Compare(profile types.ProfileRecord, extracted types.ExtractedRecord, docType string) (*types.VerdictReport, error) {
	docType = strings.ToLower(strings.TrimSpace(docType))

	normalized, err := normalizeProfile(profile)
	if err != nil {
		return nil, err
	}
	flat := Flatten(extracted, e.collision)

	var fields []string
	if e.tables.Known(docType) {
		fields = e.tables.Fields(docType)
	} else {
		fields = make([]string, 0, len(normalized))
		for f := range normalized {
			fields = append(fields, f)
		}
		sort.Strings(fields)
	}

	details := make(map[string]types.FieldComparisonResult, len(fields))
	matched := 0
	total := 0

	for _, field := range fields {
		profileValue, ok := normalized[field]
		if !ok {
			// Absent profile fields are skipped entirely and never count
			// toward the denominator.
			continue
		}
		total++

		extractedValue := e.resolver.Resolve(field, e.tables.Aliases(docType, field), flat)
		cleanProfile := CleanText(profileValue, field)
		cleanExtracted := CleanText(extractedValue, field)

		// An empty profile field can never be matched, regardless of what
		// the document carries.
		if cleanProfile == "" {
			details[field] = types.FieldComparisonResult{
				ProfileValue:   profileValue,
				ExtractedValue: extractedValue,
			}
			continue
		}

		var similarity int
		if isDateField(field) {
			// Dates are all-or-nothing: a one-day difference is a total
			// mismatch, never a fuzzy partial score.
			if cleanProfile == cleanExtracted {
				similarity = 100
			}
		} else {
			similarity = TokenSortRatio(cleanProfile, cleanExtracted)
		}

		isMatch := similarity >= e.fieldThreshold
		if isMatch {
			matched++
		}
		details[field] = types.FieldComparisonResult{
			ProfileValue:   profileValue,
			ExtractedValue: extractedValue,
			Similarity:     similarity,
			Match:          isMatch,
		}
	}

	score := 0.0
	if total > 0 {
		score = round2(float64(matched) / float64(total) * 100)
	}
	verdict := types.VerdictIncorrect
	if score >= float64(e.verdictThreshold) {
		verdict = types.VerdictCorrect
	}

	return &types.VerdictReport{
		Verdict:         verdict,
		SimilarityScore: score,
		MatchedFields:   matched,
		TotalFields:     total,
		DocumentType:    docType,
		Details:         details,
	}, nil
}

// normalizeProfile stringifies every profile scalar: nil becomes the empty
// string, numbers and booleans their literal representation. Nested values
// fail fast with a FieldTypeError.
func normalizeProfile(profile types.ProfileRecord) (map[string]string, error) {
	normalized := make(map[string]string, len(profile))
	for key, value := range profile {
		switch v := value.(type) {
		case nil:
			normalized[key] = ""
		case string:
			normalized[key] = strings.TrimSpace(v)
		case bool:
			normalized[key] = strconv.FormatBool(v)
		case int:
			normalized[key] = strconv.Itoa(v)
		case int64:
			normalized[key] = strconv.FormatInt(v, 10)
		case float64:
			normalized[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, &FieldTypeError{Field: key, Value: value}
		}
	}
	return normalized, nil
}

func isDateField(field string) bool {
	f := strings.ToLower(field)
	return strings.Contains(f, "date") || strings.Contains(f, "dob")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
