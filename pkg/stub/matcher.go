package stub

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stubtrip/stubtrip/internal/matching"
)

// Matcher is a predicate over a request descriptor. Implementations must be
// pure and safe to call repeatedly. String renders the matcher's
// discriminating fields for failure diagnostics.
type Matcher interface {
	Matches(d *RequestDescriptor) bool
	String() string
}

// Route matches requests declaratively by path, and optionally by method,
// query parameters, and body.
type Route struct {
	// Path is the expected request path. Normalized to begin with "/";
	// matching is exact on the full path ("/users" does not match
	// "/users/123").
	Path string

	// Method, when non-empty, must equal the request method
	// case-insensitively.
	Method string

	// Query, when non-nil, must exactly equal the request's query
	// parameter set: extra or missing keys on either side fail the match.
	Query map[string]string

	// Body, when non-nil, must deeply equal the parsed request body.
	// Maps compare order-independent, slices order-sensitive.
	Body any
}

// Path creates a Route matching the given path. Use the With* methods to
// narrow the match:
//
//	stub.Path("/items").WithMethod("POST").WithQuery("active", "true")
func Path(path string) *Route {
	return &Route{Path: path}
}

// WithMethod restricts the route to a single HTTP method.
func (r *Route) WithMethod(method string) *Route {
	r.Method = method
	return r
}

// WithQuery adds a required query parameter. The first call switches the
// route to exact query-set matching: the request must carry exactly the
// parameters added here, no more and no fewer.
func (r *Route) WithQuery(key, value string) *Route {
	if r.Query == nil {
		r.Query = make(map[string]string)
	}
	r.Query[key] = value
	return r
}

// WithBody requires the request body to deeply equal the given value.
func (r *Route) WithBody(body any) *Route {
	r.Body = body
	return r
}

// Matches reports whether the descriptor satisfies every field the route
// specifies.
func (r *Route) Matches(d *RequestDescriptor) bool {
	if !matching.MatchPath(r.Path, d.Path) {
		return false
	}
	if !matching.MatchMethod(r.Method, d.Method) {
		return false
	}
	if r.Query != nil && !matching.MatchQuery(r.Query, d.Query) {
		return false
	}
	if r.Body != nil {
		if d.Body == nil {
			return false
		}
		if !matching.MatchBody(r.Body, d.Body) {
			return false
		}
	}
	return true
}

// String renders the route's discriminating fields.
func (r *Route) String() string {
	var b strings.Builder
	b.WriteString("route ")
	if r.Method != "" {
		b.WriteString(strings.ToUpper(r.Method))
		b.WriteString(" ")
	}
	b.WriteString(matching.NormalizePath(r.Path))
	if r.Query != nil {
		keys := make([]string, 0, len(r.Query))
		for k := range r.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + r.Query[k]
		}
		b.WriteString("?")
		b.WriteString(strings.Join(pairs, "&"))
	}
	if r.Body != nil {
		fmt.Fprintf(&b, " body=%v", r.Body)
	}
	return b.String()
}

// MatcherFunc adapts a predicate function into a Matcher. It is the escape
// hatch for matching on arbitrary request properties.
type MatcherFunc func(d *RequestDescriptor) bool

// Matches delegates to the wrapped predicate.
func (f MatcherFunc) Matches(d *RequestDescriptor) bool {
	return f(d)
}

// String returns an opaque marker; predicates carry no inspectable fields.
func (f MatcherFunc) String() string {
	return "custom predicate"
}
