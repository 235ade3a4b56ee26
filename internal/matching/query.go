package matching

import "net/url"

// MatchQueryParam reports whether a single query parameter carries the
// expected value. Multi-valued parameters compare on their first value.
func MatchQueryParam(name, expected string, params url.Values) bool {
	return params.Get(name) == expected
}

// MatchQuery reports whether the request's query parameters exactly equal
// the expected set. Extra or missing keys on either side fail the match.
func MatchQuery(expected map[string]string, params url.Values) bool {
	if len(expected) != len(params) {
		return false
	}
	for name, value := range expected {
		if _, ok := params[name]; !ok {
			return false
		}
		if !MatchQueryParam(name, value, params) {
			return false
		}
	}
	return true
}
