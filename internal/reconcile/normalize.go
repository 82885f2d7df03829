// Package reconcile implements the field reconciliation and verdict engine:
// it compares a trusted profile record against the noisy structured output of
// document extraction and produces per-field match results plus an aggregate
// verdict. All computations are pure; the package holds no mutable state.
package reconcile

import (
	"strings"
	"time"
	"unicode"
)

// dateLayouts lists the accepted date formats in match order. Non-padded
// layouts accept both padded and unpadded day/month components.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006/1/2",
	"2006-1-2",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-January-2006",
	"2006.1.2",
	"2.1.2006",
}

// CleanText normalizes a raw field value for comparison, dispatching on the
// field name: date fields get date normalization, phone fields get digit
// extraction, name fields get title stripping, everything else is
// lower-cased. Empty input normalizes to the empty string.
func CleanText(text, fieldName string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	field := strings.ToLower(fieldName)
	switch {
	case strings.Contains(field, "date") || strings.Contains(field, "dob"):
		return NormalizeDate(text)
	case strings.Contains(field, "phone") || strings.Contains(field, "contact"):
		return NormalizePhone(text)
	case strings.Contains(field, "name"):
		return NormalizeName(text)
	}
	return strings.ToLower(text)
}

// NormalizeDate converts a date string in any accepted format to YYYY-MM-DD.
// If no format matches, the trimmed input is returned unchanged so that
// downstream comparison simply fails to match instead of erroring.
func NormalizeDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return dateStr
}

// NormalizePhone strips every non-digit character and keeps the last 10
// digits, dropping country codes and separators. Inputs with fewer than 10
// digits are returned as their bare digit string.
func NormalizePhone(phoneStr string) string {
	var digits strings.Builder
	for _, r := range phoneStr {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if len(s) >= 10 {
		return s[len(s)-10:]
	}
	return s
}

// NormalizeName strips non-letter characters and drops short all-caps tokens
// (honorifics and initials such as "MR" or "DR"), then lower-cases the result.
func NormalizeName(nameStr string) string {
	var cleaned strings.Builder
	for _, r := range nameStr {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			cleaned.WriteRune(r)
		}
	}

	var kept []string
	for _, word := range strings.Fields(cleaned.String()) {
		if isAllUpper(word) && len(word) < 5 {
			continue
		}
		kept = append(kept, word)
	}
	return strings.ToLower(strings.Join(kept, " "))
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
