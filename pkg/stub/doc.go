// Package stub implements a request-matching and response-stubbing registry
// for intercepting outbound HTTP calls in tests.
//
// A Registry holds an ordered list of (Matcher, Reply) pairs. On each
// incoming request it scans the registrations in reverse order (the stub
// registered last is consulted first) and the first matcher that accepts
// the request descriptor produces the response. Later registrations
// therefore silently override earlier ones, which lets an individual test
// shadow stubs installed in shared setup without any removal API.
//
// Matchers form a closed set: Route for declarative method/path/query/body
// matching, MatcherFunc for arbitrary predicates, plus the Expr and
// BodyJSONPath escape hatches. Replies form a closed set as well: JSON,
// JSONFrom, Text, Bytes, and BuilderFunc for fully custom responses.
//
// When no stub matches, Fetch fails with a *NoMatchError listing the
// request method, the request path, and every registered matcher, so the
// failure is actionable without a debugger.
//
// A Registry is intended for single-test use: register stubs, run the code
// under test with the registry wired in as the client transport (see
// package transport), and discard it. Registration is not synchronized for
// concurrent use against the same instance.
package stub
