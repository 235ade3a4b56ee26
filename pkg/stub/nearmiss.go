package stub

import (
	"fmt"
	"strings"

	"github.com/stubtrip/stubtrip/internal/matching"
)

// explainer is implemented by matchers that can break a failed match down
// into a per-field explanation. Used only to enrich NoMatchError output.
type explainer interface {
	explain(d *RequestDescriptor) (reason string, partial bool)
}

// fieldResult records whether a single matcher field matched the request.
type fieldResult struct {
	field    string
	matched  bool
	expected string
	actual   string
}

// explain evaluates every field the route specifies without
// short-circuiting and formats the outcome. partial is true when at least
// one specified field matched; routes that matched nothing are not
// interesting as near misses.
func (r *Route) explain(d *RequestDescriptor) (string, bool) {
	var fields []fieldResult

	fields = append(fields, fieldResult{
		field:    "path",
		matched:  matching.MatchPath(r.Path, d.Path),
		expected: matching.NormalizePath(r.Path),
		actual:   d.Path,
	})

	if r.Method != "" {
		fields = append(fields, fieldResult{
			field:    "method",
			matched:  matching.MatchMethod(r.Method, d.Method),
			expected: strings.ToUpper(r.Method),
			actual:   d.Method,
		})
	}

	if r.Query != nil {
		fields = append(fields, fieldResult{
			field:    "query",
			matched:  matching.MatchQuery(r.Query, d.Query),
			expected: fmt.Sprintf("%v", r.Query),
			actual:   d.Query.Encode(),
		})
	}

	if r.Body != nil {
		matched := d.Body != nil && matching.MatchBody(r.Body, d.Body)
		actual := "(no body)"
		if d.Body != nil {
			actual = fmt.Sprintf("%v", d.Body)
		}
		fields = append(fields, fieldResult{
			field:    "body",
			matched:  matched,
			expected: fmt.Sprintf("%v", r.Body),
			actual:   actual,
		})
	}

	return explainFields(fields), anyMatched(fields)
}

// explainFields creates a human-readable explanation of why a matcher
// partially matched but ultimately failed.
func explainFields(fields []fieldResult) string {
	var matched []string
	var firstMiss *fieldResult

	for i := range fields {
		if fields[i].matched {
			matched = append(matched, fields[i].field)
		} else if firstMiss == nil {
			firstMiss = &fields[i]
		}
	}

	if firstMiss == nil {
		return "all specified fields matched"
	}

	miss := fmt.Sprintf("%s expected %q, got %q", firstMiss.field, firstMiss.expected, firstMiss.actual)
	if len(matched) == 0 {
		return miss
	}
	return joinFields(matched) + " matched, but " + miss
}

func anyMatched(fields []fieldResult) bool {
	for _, f := range fields {
		if f.matched {
			return true
		}
	}
	return false
}

// joinFields joins field names with commas and "and".
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
	}
}
