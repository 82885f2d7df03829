package reconcile

import "sort"

// CollisionPolicy controls what happens when two distinct nested paths
// collapse to the same leaf key during flattening.
type CollisionPolicy int

// Collision policies for Flatten.
const (
	// KeepLast overwrites the earlier value with the later one. This is the
	// compatible default.
	KeepLast CollisionPolicy = iota
	// KeepFirst keeps the earliest value and ignores later collisions.
	KeepFirst
	// KeepAll collects colliding values into a list, in traversal order.
	KeepAll
)

// Flat is a single-level view of a nested record, keyed by leaf name only.
// It preserves first-seen key order so that matcher tie-breaks are
// reproducible across runs.
type Flat struct {
	keys   []string
	values map[string]any
}

// Keys returns the leaf keys in first-seen traversal order.
func (f *Flat) Keys() []string { return f.keys }

// Get returns the value stored under a leaf key.
func (f *Flat) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of distinct leaf keys.
func (f *Flat) Len() int { return len(f.keys) }

func (f *Flat) set(key string, value any, policy CollisionPolicy) {
	prev, exists := f.values[key]
	if !exists {
		f.keys = append(f.keys, key)
		f.values[key] = value
		return
	}
	switch policy {
	case KeepFirst:
		// earlier value wins
	case KeepAll:
		if list, ok := prev.([]any); ok {
			f.values[key] = append(list, value)
		} else {
			f.values[key] = []any{prev, value}
		}
	default:
		f.values[key] = value
	}
}

// Flatten collapses an arbitrarily nested record into a Flat keyed by the
// last path segment of each leaf. Non-map values, including lists, are
// stored as-is. Sibling keys are traversed in sorted order so that the
// collision policy resolves deterministically regardless of map iteration.
func Flatten(data map[string]any, policy CollisionPolicy) *Flat {
	flat := &Flat{values: make(map[string]any)}
	flattenInto(flat, data, policy)
	return flat
}

func flattenInto(flat *Flat, data map[string]any, policy CollisionPolicy) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if nested, ok := data[k].(map[string]any); ok {
			flattenInto(flat, nested, policy)
			continue
		}
		flat.set(k, data[k], policy)
	}
}
