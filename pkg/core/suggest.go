package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name by edit distance. Matches
// further away than roughly a third of the candidate's length are rejected so
// unrelated names do not produce noisy hints.
func Suggest(name string, candidates []string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		c := strings.ToLower(cand)
		if strings.HasPrefix(c, token) && len(token) >= 2 {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(token, c)
		if dist > suggestLimit(len(c)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 8:
		return 2
	default:
		return n / 3
	}
}
