package reconcile

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio returns a 0-100 similarity score between two strings based on
// Levenshtein edit distance over the longer string. Identical strings score
// 100. Used to score candidate keys in the scored matching strategy.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 - (100*dist)/longest
}

// TokenSortRatio returns a word-order-insensitive 0-100 similarity score:
// both strings are tokenized, their tokens sorted and rejoined, and the
// results compared with a normalized indel similarity. Two strings
// containing the same words in a different order score exactly 100;
// completely disjoint strings score 0.
func TokenSortRatio(a, b string) int {
	return indelRatio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// indelRatio is the normalized insert/delete similarity:
// (lenA + lenB - indelDistance) / (lenA + lenB), scaled to 0-100 and rounded.
// The indel distance is derived from the longest common subsequence.
func indelRatio(a, b string) int {
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	dist := total - 2*lcsLength(ra, rb)
	return int(math.Round(float64(total-dist) / float64(total) * 100))
}

// lcsLength computes the longest common subsequence length with a rolling
// single-row DP.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev + 1
			} else if row[j-1] > row[j] {
				row[j] = row[j-1]
			}
			prev = cur
		}
	}
	return row[len(b)]
}
