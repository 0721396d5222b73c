package constants

import "strings"

// StopOperator is the comparison applied by a stop-condition predicate.
type StopOperator string

const (
	OpEquals    StopOperator = "eq"
	OpNotEquals StopOperator = "neq"
	OpContains  StopOperator = "contains"
	OpPrefix    StopOperator = "prefix"
	OpAbsent    StopOperator = "absent"
)

var allOperators = []StopOperator{
	OpEquals,
	OpNotEquals,
	OpContains,
	OpPrefix,
	OpAbsent,
}

// StopOperators holds the allowed operator strings for stop-condition JSON.
func StopOperators() []string {
	result := make([]string, len(allOperators))
	for i, op := range allOperators {
		result[i] = string(op)
	}
	return result
}

// CanonicalOperator maps legacy admin-UI spellings onto the stable operator set.
func CanonicalOperator(input string) (StopOperator, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]StopOperator{
		"==":          OpEquals,
		"equals":      OpEquals,
		"!=":          OpNotEquals,
		"not_equals":  OpNotEquals,
		"includes":    OpContains,
		"starts_with": OpPrefix,
		"missing":     OpAbsent,
	}

	if op, ok := synonyms[normalized]; ok {
		return op, true
	}
	for _, op := range allOperators {
		if normalized == string(op) {
			return op, true
		}
	}
	return "", false
}
