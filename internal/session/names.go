package session

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// similarName returns the first existing name whose case-insensitive edit
// distance from name is under 40% of the longer name. Exact matches are not
// reported.
func similarName(name string, existing []string) (string, bool) {
	lower := strings.ToLower(name)
	for _, n := range existing {
		if n == name {
			continue
		}
		other := strings.ToLower(n)
		maxlen := max(len([]rune(lower)), len([]rune(other)))
		if maxlen == 0 {
			continue
		}
		dist := levenshtein.ComputeDistance(lower, other)
		if float64(dist)/float64(maxlen) < 0.4 {
			return n, true
		}
	}
	return "", false
}
