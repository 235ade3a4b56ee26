package stub

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stubtrip/stubtrip/internal/matching"
)

// jsonPathMatcher matches requests by JSONPath conditions over the parsed
// JSON body.
type jsonPathMatcher struct {
	conditions map[string]any
}

// BodyJSONPath creates a Matcher that evaluates JSONPath conditions against
// the request body. Every condition must hold. A condition value of
// map[string]any{"exists": true} (or false) asserts presence or absence of
// the path instead of a concrete value.
//
// Example:
//
//	stub.BodyJSONPath(map[string]any{
//	    "$.user.name": "alice",
//	    "$.token":     map[string]any{"exists": true},
//	})
//
// Requests without a JSON body never match.
func BodyJSONPath(conditions map[string]any) Matcher {
	return &jsonPathMatcher{conditions: conditions}
}

func (m *jsonPathMatcher) Matches(d *RequestDescriptor) bool {
	return matching.MatchJSONPath(m.conditions, d.Body)
}

func (m *jsonPathMatcher) String() string {
	paths := make([]string, 0, len(m.conditions))
	for p := range m.conditions {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = fmt.Sprintf("%s=%v", p, m.conditions[p])
	}
	return "jsonpath " + strings.Join(parts, " ")
}
