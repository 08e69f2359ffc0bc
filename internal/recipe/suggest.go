package recipe

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the name closest to query, or "" when nothing is close
// enough to be a plausible typo. Exact case-insensitive matches win.
func Suggest(names []string, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, name := range names {
		n := strings.ToLower(name)
		if n == q {
			return name
		}
		dist := levenshtein.ComputeDistance(q, n)
		if dist > distanceLimit(len(n)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}

// Find resolves a user-typed name: exact match first, then case-insensitive.
func Find(names []string, query string) (string, bool) {
	for _, name := range names {
		if name == query {
			return name, true
		}
	}
	for _, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(query)) {
			return name, true
		}
	}
	return "", false
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
