package validate

import "strings"

// Required reports whether value is non-empty after trimming. The external
// contract only checks presence; anything beyond that is the caller's
// problem.
func Required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
