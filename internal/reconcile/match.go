package reconcile

import "strings"

// Resolver picks the best extracted value for one canonical profile field.
// Implementations must be deterministic: identical inputs always yield the
// same value.
type Resolver interface {
	Resolve(field string, aliases []string, extracted *Flat) string
}

// AliasResolver is the primary matching strategy: each alias is scanned as a
// case-insensitive substring of every extracted key, in alias order then key
// order; if no alias matches, keys containing the canonical field name itself
// are tried. An empty result means no extracted value, not an error.
type AliasResolver struct{}

// Resolve implements Resolver.
func (AliasResolver) Resolve(field string, aliases []string, extracted *Flat) string {
	for _, alias := range aliases {
		needle := strings.ToLower(alias)
		for _, key := range extracted.Keys() {
			if !strings.Contains(strings.ToLower(key), needle) {
				continue
			}
			v, _ := extracted.Get(key)
			if s := scalarString(v); s != "" {
				return s
			}
		}
	}

	// Fallback: the canonical field name itself as substring.
	needle := strings.ToLower(field)
	for _, key := range extracted.Keys() {
		if !strings.Contains(strings.ToLower(key), needle) {
			continue
		}
		v, _ := extracted.Get(key)
		if s := scalarString(v); s != "" {
			return s
		}
	}
	return ""
}

// ScoredResolver is the similarity-driven alternative strategy: it builds a
// candidate key set from the canonical field name, its aliases, and any
// extracted key containing the field name, then keeps the candidate whose key
// is most similar to the field name. Ties resolve to the earliest candidate.
type ScoredResolver struct{}

// Resolve implements Resolver.
func (ScoredResolver) Resolve(field string, aliases []string, extracted *Flat) string {
	candidates := make([]string, 0, len(aliases)+2)
	seen := make(map[string]bool)
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			candidates = append(candidates, c)
		}
	}

	add(field)
	for _, alias := range aliases {
		add(alias)
	}
	needle := strings.ToLower(field)
	for _, key := range extracted.Keys() {
		if strings.Contains(strings.ToLower(key), needle) {
			add(key)
		}
	}

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		v, ok := extracted.Get(candidate)
		if !ok {
			continue
		}
		s := scalarString(v)
		if s == "" {
			continue
		}
		if score := Ratio(field, candidate); score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

// scalarString coerces an extracted leaf value to a trimmed string. Lists
// collapse to their first element per the extraction pipeline contract;
// non-string leaves yield the empty string.
func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []any:
		if len(val) == 0 {
			return ""
		}
		return scalarString(val[0])
	case []string:
		if len(val) == 0 {
			return ""
		}
		return strings.TrimSpace(val[0])
	}
	return ""
}
