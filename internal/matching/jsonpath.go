package matching

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// MatchJSONPath evaluates JSONPath conditions against a parsed JSON body.
// Every condition must hold for the match to succeed. A condition value of
// the form {"exists": bool} asserts presence or absence of the path rather
// than a concrete value.
//
// Returns false if the body is nil or any condition fails.
func MatchJSONPath(conditions map[string]any, body any) bool {
	if len(conditions) == 0 {
		return true
	}
	if body == nil {
		return false
	}
	for path, expected := range conditions {
		if !matchSingleJSONPath(path, expected, body) {
			return false
		}
	}
	return true
}

// matchSingleJSONPath evaluates a single JSONPath condition.
func matchSingleJSONPath(path string, expected, data any) bool {
	x, err := jp.ParseString(path)
	if err != nil {
		// Invalid JSONPath expression - treat as no match
		return false
	}

	results := x.Get(data)

	if len(results) == 0 {
		// Nothing found: only an exists:false check is satisfied
		if isExistenceCheck(expected) {
			return !existsValue(expected)
		}
		return false
	}

	if isExistenceCheck(expected) {
		return existsValue(expected)
	}

	// Wildcard paths may return multiple results; any match suffices
	for _, result := range results {
		if ValueEqual(Canonicalize(result), Canonicalize(expected)) {
			return true
		}
	}
	return false
}

// isExistenceCheck determines if the expected value is an existence check:
// a map with a single "exists" key containing a boolean.
func isExistenceCheck(expected any) bool {
	m, ok := expected.(map[string]any)
	if !ok {
		return false
	}
	_, hasExists := m["exists"]
	return hasExists && len(m) == 1
}

// existsValue extracts the boolean from an existence check.
func existsValue(expected any) bool {
	m, ok := expected.(map[string]any)
	if !ok {
		return false
	}
	b, ok := m["exists"].(bool)
	return ok && b
}

// ValidateJSONPath validates a JSONPath expression at construction time.
func ValidateJSONPath(path string) error {
	if _, err := jp.ParseString(path); err != nil {
		return fmt.Errorf("invalid JSONPath expression %q: %w", path, err)
	}
	return nil
}
