package constants

import "strings"

// CanonicalBool maps the boolean tokens that branching model outputs use in
// practice (English and German, plus numeric flags) onto a bool.
func CanonicalBool(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	switch normalized {
	case "true", "yes", "ja", "1":
		return true, true
	case "false", "no", "nein", "0":
		return false, true
	}
	return false, false
}
