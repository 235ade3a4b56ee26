package matching

import "strings"

// NormalizePath ensures a path begins with "/" and carries no query string.
// An empty path normalizes to "/".
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// MatchPath reports whether the request path equals the expected path.
// Both sides are normalized first. Matching is exact on the full path:
// "/users" does not match "/users/123".
func MatchPath(expected, actual string) bool {
	return NormalizePath(expected) == NormalizePath(actual)
}

// MatchMethod reports whether the request method matches, case-insensitively.
// An empty expected method matches any method.
func MatchMethod(expected, actual string) bool {
	if expected == "" {
		return true
	}
	return strings.EqualFold(expected, actual)
}
