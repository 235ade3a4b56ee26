// Package matching provides the request matching primitives used by the
// stub registry.
//
// It implements the comparison semantics for each matcher field:
//
//   - Path matching: normalized, exact segment equality (no prefix matching)
//   - Method matching: case-insensitive verification
//   - Query parameter matching: exact key/value set equality
//   - Body matching: deep equality where maps compare order-independent and
//     slices compare order-sensitive
//   - JSONPath matching: condition evaluation over parsed JSON bodies
//
// All functions are pure and safe for concurrent use.
package matching
