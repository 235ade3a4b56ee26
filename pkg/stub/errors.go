package stub

import (
	"fmt"
	"strings"
)

// NoMatchError is returned by Fetch when no registered stub matches the
// request. It carries everything needed to diagnose the miss without a
// debugger: the request method and path, the diagnostic string of every
// registered matcher in registration order, and near-miss explanations for
// matchers that matched some but not all of their fields.
type NoMatchError struct {
	// Method is the unmatched request's HTTP method.
	Method string

	// Path is the unmatched request's path.
	Path string

	// Registered lists every registered matcher's diagnostic string, in
	// registration order.
	Registered []string

	// NearMisses explains, per partially-matching stub, which fields
	// matched and which did not.
	NearMisses []string
}

// Error formats the failure with the full registration listing.
func (e *NoMatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no stub matched %s %s", e.Method, e.Path)

	if len(e.Registered) == 0 {
		b.WriteString(" (no stubs registered)")
		return b.String()
	}

	b.WriteString("\nregistered stubs:")
	for i, m := range e.Registered {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, m)
	}

	if len(e.NearMisses) > 0 {
		b.WriteString("\nnear misses:")
		for _, nm := range e.NearMisses {
			fmt.Fprintf(&b, "\n  - %s", nm)
		}
	}

	return b.String()
}
