package matching

import "encoding/json"

// MatchBody reports whether the request body deeply equals the expected
// value. Both sides are canonicalized through a JSON round trip first, so
// Go-typed values (map[string]int, custom structs) compare against the
// float64/map[string]any shapes a decoded request body carries.
//
// Maps compare order-independent; slices compare order-sensitive. A nil
// expected value never reaches this function (an unset matcher body skips
// body matching entirely); an absent request body against a set expectation
// is a mismatch.
func MatchBody(expected, actual any) bool {
	return ValueEqual(Canonicalize(expected), Canonicalize(actual))
}

// Canonicalize converts a value to its JSON-decoded shape: maps become
// map[string]any, slices []any, numbers float64. Values that cannot be
// marshaled are returned unchanged.
func Canonicalize(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

// ValueEqual compares two canonicalized values for deep equality.
// Supports comparing:
//   - maps (key order irrelevant, recursive)
//   - slices (element order matters, recursive)
//   - numbers (compared as float64)
//   - strings, booleans, null
func ValueEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !ValueEqual(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	// Numeric comparison (JSON numbers decode to float64, but a value that
	// skipped canonicalization may still carry a Go integer type)
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}

	return a == b
}

// toFloat64 attempts to convert a value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}
